package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotelfin/infras/otel"
	"hotelfin/internal/domains/booking/model"
	"hotelfin/internal/domains/booking/model/dto"
	"hotelfin/internal/domains/booking/service"
	"hotelfin/shared/constant"
	gDto "hotelfin/shared/dto"
	"hotelfin/shared/validator"
	"hotelfin/transport/http/response"
)

const requestParamBookingDate = "bookingDate"

type Handler struct {
	service service.RoomBooking
	otel    otel.Otel
}

func New(service service.RoomBooking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoomBooking)
		routerGroup.Get("/", handler.GetRoomBookings)
		routerGroup.Delete("/{id}", handler.DeleteRoomBooking)
	})
}

func (handler *Handler) CreateRoomBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomBooking")
	defer scope.End()

	req := dto.CreateRoomBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room booking created successfully")

	response.WithJSON(writer, http.StatusCreated, dto.CreateRoomBookingResponse{
		Message: "Room was booked successfully!",
		ID:      id,
	})
}

func (handler *Handler) GetRoomBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if bookingDate := r.URL.Query().Get(requestParamBookingDate); bookingDate != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingDate,
			Operator: gDto.FilterOperatorDateEq,
			Value:    bookingDate,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

func (handler *Handler) DeleteRoomBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room booking deleted successfully")

	response.WithMessage(w, http.StatusOK, "Room booking deleted successfully!")
}
