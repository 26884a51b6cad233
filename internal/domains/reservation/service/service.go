package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService,Listings=MockListings

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"rental/config"
	"rental/infras/metrics"
	"rental/infras/otel"
	"rental/infras/postgres"
	apartmentDto "rental/internal/domains/apartment/model/dto"
	notification "rental/internal/domains/notification/service"
	"rental/internal/domains/reservation/availability"
	"rental/internal/domains/reservation/model"
	"rental/internal/domains/reservation/model/dto"
	"rental/internal/domains/reservation/repository"
	"rental/shared"
	"rental/shared/cache"
	"rental/shared/constant"
	"rental/shared/daterange"
	gDto "rental/shared/dto"
	gModel "rental/shared/model"
	"rental/shared/failure"
	"rental/shared/timezone"
	"rental/shared/validator"

	"github.com/cenkalti/backoff/v5"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	conflictSourceCheck      = "check"
	conflictSourceConstraint = "constraint"

	operationCreate       = "create"
	operationUpdateStatus = "update_status"
	operationUpdateDates  = "update_dates"

	// availabilityMaxTTL bounds, in seconds, how long a cached calendar can lag behind bookings.
	availabilityMaxTTL = 60
)

var (
	cacheGetReservation    = shared.BuildCacheKey(constant.CacheKeyReservations, "get")
	cacheGetAllReservation = shared.BuildCacheKey(constant.CacheKeyReservations, "gets")
	cacheCountReservation  = shared.BuildCacheKey(constant.CacheKeyReservations, "count")
	cacheAvailability      = shared.BuildCacheKey(constant.CacheKeyReservations, constant.CacheKeyAvailability)
)

var (
	// ErrDatesUnavailable is the expected outcome of booking dates an active reservation holds.
	ErrDatesUnavailable = errors.New("these dates are no longer available, please pick another range")
	// ErrStoreUnavailable is returned once transient store faults outlast the retry budget.
	ErrStoreUnavailable    = errors.New("reservations are temporarily unavailable, please try again later")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidTransition   = errors.New("invalid reservation status transition")
)

// Listings is what reservations need from the apartment catalogue.
type Listings interface {
	Get(ctx context.Context, id string) (apartmentDto.ApartmentResponse, error)
	PricePerNight(ctx context.Context, id string) (int, error)
}

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) error
	UpdateDates(ctx context.Context, id string, req dto.UpdateDatesRequest) error
	Delete(ctx context.Context, id string) error
	Availability(ctx context.Context, apartmentID string) (dto.AvailabilityResponse, error)
	Check(ctx context.Context, apartmentID string, req dto.CheckAvailabilityRequest) (dto.CheckAvailabilityResponse, error)
	// Flush waits for the notifications and cache invalidations started by earlier calls.
	Flush(ctx context.Context) error
}

type serviceImpl struct {
	repo     repository.Reservation
	listings Listings
	notifier notification.Notifier
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	metrics  *metrics.Metrics

	calendars   singleflight.Group
	generations sync.Map
	background  sync.WaitGroup
	today       func() time.Time
}

func New(
	repo repository.Reservation,
	listings Listings,
	notifier notification.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	metrics *metrics.Metrics,
) Reservation {
	return &serviceImpl{
		repo:     repo,
		listings: listings,
		notifier: notifier,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		metrics:  metrics,
		today:    timezone.Today,
	}
}

// Create books a stay. The conflict lookup and the insert share one serializable transaction,
// so of two overlapping requests at most one commits.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	stay, err := s.parseStay(req.CheckIn, req.CheckOut, s.today())
	if err != nil {
		return res, err
	}

	apartment, err := s.listings.Get(ctx, req.ApartmentID)
	if err != nil {
		return res, fmt.Errorf("failed to get apartment: %w", err)
	}

	if apartment.Capacity > 0 && req.Guests > apartment.Capacity {
		return res, failure.Validation("too many guests", map[string]string{
			"guests": fmt.Sprintf("guests must be at most %d", apartment.Capacity),
		})
	}

	reservation := req.ToModel(stay, apartment.PricePerNight)

	scope.SetAttributes(map[string]any{
		"apartment.id": reservation.ApartmentID,
		"check_in":     reservation.CheckIn,
		"check_out":    reservation.CheckOut,
	})

	started := time.Now()

	err = s.retry(ctx, operationCreate, func() error {
		return s.repo.WithSerializableTx(ctx, func(tx *sqlx.Tx) error {
			conflict, err := s.repo.FindConflictingTx(ctx, tx, reservation.ApartmentID, stay, constant.Empty)
			if err != nil {
				return err
			}

			if conflict.ID != constant.Empty {
				log.Info().
					Str("apartmentID", reservation.ApartmentID).
					Str("conflictID", conflict.ID).
					Stringer("stay", stay).
					Msg("reservation rejected, dates taken")

				return ErrDatesUnavailable
			}

			return s.repo.InsertTx(ctx, tx, reservation)
		})
	})

	s.metrics.BookingTxDuration.Observe(time.Since(started).Seconds())

	if err != nil {
		return res, s.storeError(operationCreate, err)
	}

	s.metrics.ReservationsCreated.Inc()

	log.Info().
		Str("reservationID", reservation.ID).
		Str("apartmentID", reservation.ApartmentID).
		Stringer("stay", stay).
		Int("totalPrice", reservation.TotalPrice).
		Msg("reservation created")

	s.notify(ctx, reservation, apartment)
	s.invalidate(ctx, reservation.ApartmentID, constant.Empty)

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if params.SortBy == constant.Empty {
		params.SortBy = constant.DefaultValueSortBy
		params.SortDir = constant.DefaultValueSortDir
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, params, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.count(ctx, params, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, gDto.QueryParams{}, filter)

	var total int
	if cacheErr := s.cache.Get(ctx, cacheKey, &total); cacheErr == nil {
		return total, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	reservation, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("reservationID", id).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.Wrap(http.StatusNotFound, ErrReservationNotFound)
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

// UpdateStatus moves a reservation along pending -> confirmed -> cancelled. Setting the current
// status again is a no-op and nothing leaves cancelled, so no transition ever occupies new dates.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var apartmentID string

	err = s.retry(ctx, operationUpdateStatus, func() error {
		return s.repo.WithSerializableTx(ctx, func(tx *sqlx.Tx) error {
			current, err := s.repo.GetTx(ctx, tx, id)
			if err != nil {
				return err
			}

			if current.ID == constant.Empty {
				return failure.Wrap(http.StatusNotFound, ErrReservationNotFound)
			}

			apartmentID = current.ApartmentID

			if current.Status == req.Status {
				return nil
			}

			if !model.CanTransition(current.Status, req.Status) {
				return failure.Wrap(http.StatusConflict, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current.Status, req.Status))
			}

			return s.repo.UpdateTx(ctx, tx, gModel.Touch(map[string]any{
				model.FieldStatus: req.Status,
			}, user, timezone.Now()), id)
		})
	})
	if err != nil {
		return s.storeError(operationUpdateStatus, err)
	}

	log.Info().Str("reservationID", id).Str("status", req.Status).Str("by", user).Msg("reservation status updated")

	s.invalidate(ctx, apartmentID, id)

	return nil
}

// UpdateDates moves an existing reservation. Active reservations are re-checked against every
// other active reservation of the apartment inside the same transaction. Past dates are allowed.
func (s *serviceImpl) UpdateDates(ctx context.Context, id string, req dto.UpdateDatesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.UpdateDates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	stay, err := s.parseStay(req.CheckIn, req.CheckOut, time.Time{})
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var apartmentID string

	err = s.retry(ctx, operationUpdateDates, func() error {
		return s.repo.WithSerializableTx(ctx, func(tx *sqlx.Tx) error {
			current, err := s.repo.GetTx(ctx, tx, id)
			if err != nil {
				return err
			}

			if current.ID == constant.Empty {
				return failure.Wrap(http.StatusNotFound, ErrReservationNotFound)
			}

			apartmentID = current.ApartmentID

			if current.IsActive() {
				conflict, err := s.repo.FindConflictingTx(ctx, tx, current.ApartmentID, stay, current.ID)
				if err != nil {
					return err
				}

				if conflict.ID != constant.Empty {
					return ErrDatesUnavailable
				}
			}

			totalPrice := req.TotalPrice
			if totalPrice == 0 {
				price, err := s.listings.PricePerNight(ctx, current.ApartmentID)
				if err != nil {
					return fmt.Errorf("failed to price reservation: %w", err)
				}

				totalPrice = stay.Nights() * price
			}

			return s.repo.UpdateTx(ctx, tx, gModel.Touch(map[string]any{
				model.FieldCheckIn:    stay.CheckIn,
				model.FieldCheckOut:   stay.CheckOut,
				model.FieldTotalPrice: totalPrice,
			}, user, timezone.Now()), id)
		})
	})
	if err != nil {
		return s.storeError(operationUpdateDates, err)
	}

	log.Info().Str("reservationID", id).Stringer("stay", stay).Str("by", user).Msg("reservation dates updated")

	s.invalidate(ctx, apartmentID, id)

	return nil
}

// Delete removes a reservation whatever its status.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.Wrap(http.StatusNotFound, ErrReservationNotFound)
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("reservationID", id).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	if affected == 0 {
		return failure.Wrap(http.StatusNotFound, ErrReservationNotFound)
	}

	s.invalidate(ctx, current.ApartmentID, id)

	return nil
}

// Availability returns the calendar of an apartment. It is a cached snapshot for date pickers
// and is never consulted when booking.
func (s *serviceImpl) Availability(ctx context.Context, apartmentID string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	today := s.today()
	cacheKey := shared.BuildCacheKey(cacheAvailability, apartmentID)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		s.metrics.AvailabilityCacheHits.WithLabelValues("hit").Inc()
		res.DisabledBefore = today.Format(constant.DateOnlyFormat)

		return res, nil
	}

	s.metrics.AvailabilityCacheHits.WithLabelValues("miss").Inc()

	if _, err = s.listings.Get(ctx, apartmentID); err != nil {
		return res, fmt.Errorf("failed to get apartment: %w", err)
	}

	generation := s.generation(apartmentID)
	seen := generation.Load()

	loaded, err, deduped := s.calendars.Do(apartmentID, func() (any, error) {
		reservations, err := s.repo.FindActiveByApartment(context.WithoutCancel(ctx), apartmentID)
		if err != nil {
			return dto.AvailabilityResponse{}, err
		}

		calendar := availability.NewCalendar(reservations, today)

		calendarRes := dto.AvailabilityResponse{}
		calendarRes.FromDates(apartmentID, calendar.DisabledBefore, calendar.DisabledDates)

		return calendarRes, nil
	})
	if err != nil {
		log.Error().Err(err).Str("apartmentID", apartmentID).Msg("failed to load availability")

		return res, s.readError(err)
	}

	res, _ = loaded.(dto.AvailabilityResponse)

	if !deduped {
		calendar := res

		s.background.Add(1)

		go func() {
			defer s.background.Done()

			// A reservation changed while the calendar was loading, so the snapshot may miss it.
			if generation.Load() != seen {
				log.Debug().Str("apartmentID", apartmentID).Msg("availability changed while loading, not caching")

				return
			}

			if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, calendar, s.availabilityTTL()); err != nil {
				log.Error().Err(err).Msg("failed to save availability to cache")
			}
		}()
	}

	return res, nil
}

// generation counts the availability invalidations of an apartment.
func (s *serviceImpl) generation(apartmentID string) *atomic.Uint64 {
	counter, _ := s.generations.LoadOrStore(apartmentID, new(atomic.Uint64))

	return counter.(*atomic.Uint64)
}

func (s *serviceImpl) availabilityTTL() int {
	if s.cfg.Cache.TTL > 0 {
		return min(s.cfg.Cache.TTL, availabilityMaxTTL)
	}

	return availabilityMaxTTL
}

// Check answers whether a stay could be booked right now. The answer is advisory.
func (s *serviceImpl) Check(ctx context.Context, apartmentID string, req dto.CheckAvailabilityRequest) (res dto.CheckAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Check")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	stay, err := s.parseStay(req.CheckIn, req.CheckOut, s.today())
	if err != nil {
		return res, err
	}

	apartment, err := s.listings.Get(ctx, apartmentID)
	if err != nil {
		return res, fmt.Errorf("failed to get apartment: %w", err)
	}

	reservations, err := s.repo.FindActiveByApartment(ctx, apartmentID)
	if err != nil {
		log.Error().Err(err).Str("apartmentID", apartmentID).Msg("failed to load reservations")

		return res, s.readError(err)
	}

	_, conflict := availability.NewIndex(reservations).Conflict(stay, constant.Empty)

	res = dto.CheckAvailabilityResponse{
		ApartmentID: apartmentID,
		CheckIn:     stay.CheckIn.Format(constant.DateOnlyFormat),
		CheckOut:    stay.CheckOut.Format(constant.DateOnlyFormat),
		Nights:      stay.Nights(),
		Available:   !conflict,
		TotalPrice:  stay.Nights() * apartment.PricePerNight,
	}

	return res, nil
}

func (s *serviceImpl) Flush(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		s.background.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for reservation background work: %w", ctx.Err())
	}
}

// parseStay validates the dates of a stay. A zero today allows stays in the past.
func (s *serviceImpl) parseStay(checkIn, checkOut string, today time.Time) (daterange.Range, error) {
	stay, err := daterange.Parse(checkIn, checkOut)
	if err != nil {
		return stay, failure.Validation("invalid stay dates", map[string]string{
			constant.RequestParamCheckIn: err.Error(),
		})
	}

	if err = availability.CheckRange(stay, today, s.cfg.MaxStay()); err != nil {
		field := constant.RequestParamCheckOut
		if errors.Is(err, daterange.ErrPastRange) {
			field = constant.RequestParamCheckIn
		}

		return stay, failure.Validation("invalid stay dates", map[string]string{field: err.Error()})
	}

	return stay, nil
}

// retry runs fn again while it fails with a transient store fault. Any other error, conflicts
// included, ends the loop at once.
func (s *serviceImpl) retry(ctx context.Context, operation string, fn func() error) error {
	attempts, initial, maximum := s.cfg.RetryPolicy()

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = initial
	policy.MaxInterval = maximum

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := fn()
		if err != nil && !postgres.IsRetryable(err) {
			return struct{}{}, backoff.Permanent(err)
		}

		return struct{}{}, err
	},
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(attempts),
		backoff.WithNotify(func(err error, wait time.Duration) {
			s.metrics.StoreRetries.WithLabelValues(operation).Inc()

			log.Warn().Err(err).Str("operation", operation).Dur("wait", wait).Msg("retrying reservation transaction")
		}),
	)

	return err
}

// storeError turns the outcome of a reservation transaction into the error the caller sees.
// Store faults are never reported as a conflict.
func (s *serviceImpl) storeError(operation string, err error) error {
	switch {
	case errors.Is(err, ErrDatesUnavailable):
		s.metrics.ReservationConflicts.WithLabelValues(conflictSourceCheck).Inc()

		return failure.Wrap(http.StatusConflict, ErrDatesUnavailable)
	case errors.Is(err, repository.ErrOverlap):
		s.metrics.ReservationConflicts.WithLabelValues(conflictSourceConstraint).Inc()

		return failure.Wrap(http.StatusConflict, ErrDatesUnavailable)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s reservation: %w", operation, err)
	case postgres.IsRetryable(err):
		s.metrics.StoreUnavailable.Inc()
		log.Error().Err(err).Str("operation", operation).Msg("reservation store unavailable after retries")

		return failure.Wrap(http.StatusServiceUnavailable, ErrStoreUnavailable)
	default:
		return fmt.Errorf("failed to %s reservation: %w", operation, err)
	}
}

func (s *serviceImpl) readError(err error) error {
	if errors.Is(err, postgres.ErrUnavailable) {
		return failure.Wrap(http.StatusServiceUnavailable, ErrStoreUnavailable)
	}

	return fmt.Errorf("failed to read reservations: %w", err)
}

// notify publishes the created event without holding up the response. A failure is counted
// and logged, the reservation stands.
func (s *serviceImpl) notify(ctx context.Context, reservation model.Reservation, apartment apartmentDto.ApartmentResponse) {
	s.background.Add(1)

	go func() {
		defer s.background.Done()

		c := context.WithoutCancel(ctx)

		if err := s.notifier.ReservationCreated(c, reservation, apartment); err != nil {
			s.metrics.NotificationFailures.Inc()

			log.Warn().Err(err).Str("reservationID", reservation.ID).Msg("reservation saved but notification failed")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, apartmentID, reservationID string) {
	if apartmentID != constant.Empty {
		s.generation(apartmentID).Add(1)
	}

	s.background.Add(1)

	go func() {
		defer s.background.Done()

		c := context.WithoutCancel(ctx)

		if apartmentID != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheAvailability, apartmentID)); err != nil {
				log.Error().Err(err).Msg("failed to delete availability cache")
			}
		}

		if reservationID != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, reservationID)); err != nil {
				log.Error().Err(err).Msg("failed to delete reservation cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}
