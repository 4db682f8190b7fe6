package supply

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotelfin/infras/otel"
	"hotelfin/internal/domains/supply/model"
	"hotelfin/internal/domains/supply/model/dto"
	"hotelfin/internal/domains/supply/service"
	"hotelfin/shared/constant"
	gDto "hotelfin/shared/dto"
	"hotelfin/shared/failure"
	"hotelfin/shared/validator"
	"hotelfin/transport/http/response"
)

const requestParamSupplyDate = "supplyDate"

type Handler struct {
	service service.Supply
	otel    otel.Otel
}

func New(service service.Supply, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/supplies", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSupply)
		routerGroup.Get("/", handler.GetSupplies)
		routerGroup.Delete("/{id}", handler.DeleteSupply)
	})
}

func (handler *Handler) CreateSupply(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSupply")
	defer scope.End()

	req := dto.CreateSupplyRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create supply")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Supply created successfully")

	response.WithJSON(writer, http.StatusCreated, dto.CreateSupplyResponse{
		Message: "Supply successfully added.",
		ID:      id,
	})
}

func (handler *Handler) GetSupplies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSupplies")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if supplyDate := r.URL.Query().Get(requestParamSupplyDate); supplyDate != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSupplyDate,
			Operator: gDto.FilterOperatorDateEq,
			Value:    supplyDate,
			Table:    model.TableName,
		})
	}

	supplies, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get supplies")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Supplies retrieved successfully")

	response.WithJSON(w, http.StatusOK, supplies)
}

func (handler *Handler) DeleteSupply(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSupply")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if id == "" {
		response.WithError(w, failure.BadRequestFromString("Supply ID is required."))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete supply")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Supply deleted successfully")

	response.WithMessage(w, http.StatusOK, "Supply successfully deleted.")
}
