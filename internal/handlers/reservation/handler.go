package reservation

import (
	"net/http"

	"rental/infras/otel"
	"rental/internal/domains/reservation/model"
	"rental/internal/domains/reservation/model/dto"
	"rental/internal/domains/reservation/service"
	"rental/shared/constant"
	gDto "rental/shared/dto"
	"rental/shared/validator"
	"rental/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, admin chi.Middlewares) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(admin...)

			adminGroup.Get("/", handler.GetReservations)
			adminGroup.Get("/{id}", handler.GetReservationByID)
			adminGroup.Patch("/{id}/status", handler.UpdateReservationStatus)
			adminGroup.Patch("/{id}/dates", handler.UpdateReservationDates)
			adminGroup.Delete("/{id}", handler.DeleteReservation)
		})
	})
}

// AvailabilityRouter registers the calendar routes on a router scoped to /apartments.
func (handler *Handler) AvailabilityRouter(router chi.Router) {
	router.Get("/{id}/availability", handler.GetAvailability)
	router.Get("/{id}/availability/check", handler.CheckAvailability)
}

// CreateReservation books a stay for a guest.
// @Summary Create a reservation
// @Description Book an apartment for [check_in, check_out). The stay is rejected with 409 when any night is already held by a pending or confirmed reservation.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Reservation created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error "Apartment not found"
// @Failure 409 {object} response.Error "Dates unavailable"
// @Failure 503 {object} response.Error "Store unavailable, retry later"
// @Router /v1/reservations [post]
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid reservation request")

		response.WithError(writer, err)

		return
	}

	reservation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("apartmentID", req.ApartmentID).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation created " + reservation.ID)

	response.WithJSON(writer, http.StatusCreated, reservation)
}

// GetReservations lists reservations, newest first.
// @Summary Get all reservations
// @Tags Reservation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param apartment_id query string false "Filter by apartment"
// @Param status query string false "Filter by status" Enums(pending, confirmed, cancelled)
// @Param guest_email query string false "Filter by guest email"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	query := request.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if apartmentID := query.Get(model.FieldApartmentID); apartmentID != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldApartmentID,
			Operator: gDto.FilterOperatorEq,
			Value:    apartmentID,
			Table:    model.TableName,
		})
	}

	if status := query.Get(model.FieldStatus); model.IsValidStatus(status) {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if email := query.Get(model.FieldGuestEmail); email != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldGuestEmail,
			Operator: gDto.FilterOperatorLike,
			Value:    email,
			Table:    model.TableName,
		})
	}

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, reservations)
}

// GetReservationByID retrieves a reservation.
// @Summary Get a reservation by ID
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if err := validator.ValidateVar(constant.RequestParamID, id, "uuid"); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get reservation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, reservation)
}

// UpdateReservationStatus confirms or cancels a reservation.
// @Summary Update reservation status
// @Description Allowed transitions are pending to confirmed, pending to cancelled and confirmed to cancelled.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Message "Reservation status updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Invalid transition"
// @Failure 503 {object} response.Error
// @Router /v1/reservations/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReservationStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservationStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if err := validator.ValidateVar(constant.RequestParamID, id, "uuid"); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}
	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update reservation status")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation " + id + " set to " + req.Status + " by user " + user)

	response.WithMessage(writer, http.StatusOK, "Reservation status updated")
}

// UpdateReservationDates moves a reservation.
// @Summary Update reservation dates
// @Description Active reservations are re-checked against the apartment's other active reservations. A zero total_price recomputes the price.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateDatesRequest true "New dates"
// @Success 200 {object} response.Message "Reservation dates updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Dates unavailable"
// @Failure 503 {object} response.Error
// @Router /v1/reservations/{id}/dates [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReservationDates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservationDates")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if err := validator.ValidateVar(constant.RequestParamID, id, "uuid"); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}
	req := dto.UpdateDatesRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateDates(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update reservation dates")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Reservation dates updated")
}

// DeleteReservation removes a reservation.
// @Summary Delete a reservation by ID
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message "Reservation deleted"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservation")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if err := validator.ValidateVar(constant.RequestParamID, id, "uuid"); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete reservation")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation " + id + " deleted by user " + user)

	response.WithMessage(writer, http.StatusOK, "Reservation deleted")
}

// GetAvailability returns the booking calendar of an apartment.
// @Summary Get apartment availability
// @Description Dates before disabled_before and every date in disabled_dates cannot be picked as a night. The answer is advisory.
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Apartment ID"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability calendar"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/apartments/{id}/availability [get]
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if err := validator.ValidateVar(constant.RequestParamID, id, "uuid"); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	calendar, err := handler.service.Availability(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("apartmentID", id).Msg("failed to get availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, calendar)
}

// CheckAvailability tells whether a stay could be booked right now.
// @Summary Check a stay
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Apartment ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.CheckAvailabilityResponse] "Availability and price"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/apartments/{id}/availability/check [get]
func (handler *Handler) CheckAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	if err := validator.ValidateVar(constant.RequestParamID, id, "uuid"); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}
	req := dto.CheckAvailabilityRequest{
		CheckIn:  request.URL.Query().Get(constant.RequestParamCheckIn),
		CheckOut: request.URL.Query().Get(constant.RequestParamCheckOut),
	}

	res, err := handler.service.Check(ctx, id, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
