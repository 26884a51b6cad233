package apartment

import (
	"net/http"

	"rental/infras/otel"
	"rental/internal/domains/apartment/model"
	"rental/internal/domains/apartment/model/dto"
	"rental/internal/domains/apartment/service"
	"rental/shared"
	"rental/shared/constant"
	gDto "rental/shared/dto"
	"rental/shared/validator"
	"rental/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Apartment
	otel    otel.Otel
}

func New(service service.Apartment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the catalogue routes on a router already scoped to /apartments.
func (handler *Handler) Router(router chi.Router, admin chi.Middlewares) {
	router.Get("/", handler.GetApartments)
	router.Get("/{id}", handler.GetApartmentByID)

	router.With(admin...).Post("/", handler.CreateApartment)
	router.With(admin...).Patch("/{id}", handler.UpdateApartment)
	router.With(admin...).Delete("/{id}", handler.DeleteApartment)
}

// CreateApartment handles the creation of a new apartment.
// @Summary Create a new apartment
// @Description Create a new apartment listing. Images are managed through the gallery routes.
// @Tags Apartment
// @Accept json
// @Produce json
// @Param request body dto.CreateApartmentRequest true "Apartment"
// @Success 201 {object} response.Data[string] "Apartment ID"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/apartments [post]
// @Security BearerAuth
func (handler *Handler) CreateApartment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateApartment")
	defer scope.End()

	req := dto.CreateApartmentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create apartment")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Apartment created by user " + user)

	response.WithJSON(writer, http.StatusCreated, id)
}

// GetApartments retrieves apartments based on query parameters.
// @Summary Get all apartments
// @Description Retrieve apartments with optional filtering and pagination.
// @Tags Apartment
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param guests query integer false "Minimum capacity"
// @Success 200 {object} response.Data[dto.GetApartmentsResponse] "List of apartments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/apartments [get]
func (handler *Handler) GetApartments(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetApartments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	if queryParams.SortBy == constant.Empty {
		queryParams.SortBy = model.FieldPricePerNight
		queryParams.SortDir = gDto.SortDirAsc
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := request.URL.Query().Get(model.FieldName); name != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if guests, err := shared.ConvertStringToInt(request.URL.Query().Get("guests")); err == nil && guests > 0 {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCapacity,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    guests,
			Table:    model.TableName,
		})
	}

	apartments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get apartments")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, apartments)
}

// GetApartmentByID retrieves an apartment by its ID.
// @Summary Get an apartment by ID
// @Tags Apartment
// @Accept json
// @Produce json
// @Param id path string true "Apartment ID"
// @Success 200 {object} response.Data[dto.ApartmentResponse] "Apartment details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/apartments/{id} [get]
func (handler *Handler) GetApartmentByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetApartmentByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if err := validator.ValidateVar(constant.RequestParamID, id, "uuid"); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	apartment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get apartment")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, apartment)
}

// UpdateApartment updates an existing apartment by its ID.
// @Summary Update an apartment by ID
// @Tags Apartment
// @Accept json
// @Produce json
// @Param id path string true "Apartment ID"
// @Param request body dto.UpdateApartmentRequest true "Fields to change"
// @Success 200 {object} response.Message "Apartment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/apartments/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateApartment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateApartment")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if err := validator.ValidateVar(constant.RequestParamID, id, "uuid"); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.UpdateApartmentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update apartment")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Apartment updated by user " + user)

	response.WithMessage(writer, http.StatusOK, "Apartment updated successfully")
}

// DeleteApartment deletes an apartment that has no reservations.
// @Summary Delete an apartment by ID
// @Tags Apartment
// @Accept json
// @Produce json
// @Param id path string true "Apartment ID"
// @Success 200 {object} response.Message "Apartment deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Apartment still has reservations"
// @Failure 500 {object} response.Error
// @Router /v1/apartments/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteApartment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteApartment")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if err := validator.ValidateVar(constant.RequestParamID, id, "uuid"); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete apartment")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Apartment deleted by user " + user)

	response.WithMessage(writer, http.StatusOK, "Apartment deleted successfully")
}
