package salary

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotelfin/infras/otel"
	"hotelfin/internal/domains/salary/model"
	"hotelfin/internal/domains/salary/model/dto"
	"hotelfin/internal/domains/salary/service"
	"hotelfin/shared/constant"
	gDto "hotelfin/shared/dto"
	"hotelfin/shared/failure"
	"hotelfin/shared/validator"
	"hotelfin/transport/http/response"
)

const requestParamDate = "date"

type Handler struct {
	service service.Salary
	otel    otel.Otel
}

func New(service service.Salary, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/salaries", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSalary)
		routerGroup.Get("/", handler.GetSalaries)
		routerGroup.Delete("/{id}", handler.DeleteSalary)
	})
}

// CreateSalary records a salary payment. At most one payment per employee is
// accepted within any trailing 24-hour window.
func (handler *Handler) CreateSalary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSalary")
	defer scope.End()

	req := dto.CreateSalaryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create salary record")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Salary record created successfully")

	response.WithJSON(writer, http.StatusCreated, dto.CreateSalaryResponse{
		Message: "Salary record was created successfully!",
		ID:      id,
	})
}

func (handler *Handler) GetSalaries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSalaries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if date := r.URL.Query().Get(requestParamDate); date != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorDateEq,
			Value:    date,
			Table:    model.TableName,
		})
	}

	salaries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get salaries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Salaries retrieved successfully")

	response.WithJSON(w, http.StatusOK, salaries)
}

func (handler *Handler) DeleteSalary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSalary")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	if id == "" {
		response.WithError(w, failure.BadRequestFromString("Salary id is required."))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete salary record")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Salary record deleted successfully")

	response.WithMessage(w, http.StatusOK, "Salary record deleted successfully!")
}
