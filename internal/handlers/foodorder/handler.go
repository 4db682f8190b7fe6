package foodorder

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotelfin/infras/otel"
	"hotelfin/internal/domains/foodorder/model"
	"hotelfin/internal/domains/foodorder/model/dto"
	"hotelfin/internal/domains/foodorder/service"
	"hotelfin/shared/constant"
	gDto "hotelfin/shared/dto"
	"hotelfin/shared/validator"
	"hotelfin/transport/http/response"
)

const requestParamOrderDate = "orderDate"

type Handler struct {
	service service.FoodOrder
	otel    otel.Otel
}

func New(service service.FoodOrder, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/food-orders", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateFoodOrder)
		routerGroup.Get("/", handler.GetFoodOrders)
		routerGroup.Delete("/{id}", handler.DeleteFoodOrder)
	})
}

func (handler *Handler) CreateFoodOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFoodOrder")
	defer scope.End()

	req := dto.CreateFoodOrderRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create food order")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Food order created successfully")

	response.WithJSON(writer, http.StatusCreated, dto.CreateFoodOrderResponse{
		Message: "Food order added successfully!",
		ID:      id,
	})
}

// GetFoodOrders keeps the historical wire contract: an empty result is a 404
// with a message body, unlike the other list endpoints.
func (handler *Handler) GetFoodOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFoodOrders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if orderDate := r.URL.Query().Get(requestParamOrderDate); orderDate != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldOrderDate,
			Operator: gDto.FilterOperatorDateEq,
			Value:    orderDate,
			Table:    model.TableName,
		})
	}

	orders, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get food orders")

		response.WithError(w, err)

		return
	}

	if len(orders.FoodOrders) == 0 {
		response.WithMessage(w, http.StatusNotFound, "No food orders found.")

		return
	}

	scope.AddEvent("Food orders retrieved successfully")

	response.WithJSON(w, http.StatusOK, orders)
}

func (handler *Handler) DeleteFoodOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFoodOrder")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete food order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Food order deleted successfully")

	response.WithMessage(w, http.StatusOK, "Food order deleted successfully!")
}
