package inquiry

import (
	"net/http"

	"rental/infras/otel"
	"rental/internal/domains/inquiry/model"
	"rental/internal/domains/inquiry/model/dto"
	"rental/internal/domains/inquiry/service"
	"rental/shared/constant"
	gDto "rental/shared/dto"
	"rental/shared/validator"
	"rental/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inquiry
	otel    otel.Otel
}

func New(service service.Inquiry, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, admin chi.Middlewares) {
	router.Route("/inquiries", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateInquiry)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(admin...)

			adminGroup.Get("/", handler.GetInquiries)
			adminGroup.Get("/{id}", handler.GetInquiryByID)
			adminGroup.Delete("/{id}", handler.DeleteInquiry)
		})
	})
}

// CreateInquiry accepts a contact message from a visitor.
// @Summary Send an inquiry
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param request body dto.CreateInquiryRequest true "Inquiry"
// @Success 201 {object} response.Data[dto.InquiryResponse] "Inquiry received"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries [post]
func (handler *Handler) CreateInquiry(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateInquiry")
	defer scope.End()

	req := dto.CreateInquiryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid inquiry request")

		response.WithError(writer, err)

		return
	}

	inquiry, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create inquiry")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Inquiry received " + inquiry.ID)

	response.WithJSON(writer, http.StatusCreated, inquiry)
}

// GetInquiries lists inquiries, newest first unless sort_by is given.
// @Summary Get all inquiries
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param email query string false "Filter by sender email"
// @Success 200 {object} response.Data[dto.GetInquiriesResponse] "List of inquiries"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries [get]
// @Security BearerAuth
func (handler *Handler) GetInquiries(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	if queryParams.SortBy == constant.Empty {
		queryParams.SortBy = model.FieldCreatedAt
		queryParams.SortDir = gDto.SortDirDesc
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if email := request.URL.Query().Get(model.FieldEmail); email != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    email,
			Table:    model.TableName,
		})
	}

	inquiries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiries")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, inquiries)
}

// GetInquiryByID retrieves one inquiry.
// @Summary Get an inquiry by ID
// @Tags Inquiry
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.Data[dto.InquiryResponse] "Inquiry"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetInquiryByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiryByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if err := validator.ValidateVar(constant.RequestParamID, id, "uuid"); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	inquiry, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get inquiry")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, inquiry)
}

// DeleteInquiry removes an inquiry once it has been handled.
// @Summary Delete an inquiry
// @Tags Inquiry
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.Message "Inquiry deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteInquiry(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteInquiry")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if err := validator.ValidateVar(constant.RequestParamID, id, "uuid"); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete inquiry")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inquiry deleted by user " + user)

	response.WithMessage(writer, http.StatusOK, "Inquiry deleted successfully")
}
