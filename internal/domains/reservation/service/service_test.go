package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"rental/config"
	"rental/infras/metrics"
	"rental/infras/otel/mocks"
	"rental/infras/postgres"
	apartmentDto "rental/internal/domains/apartment/model/dto"
	notificationMocks "rental/internal/domains/notification/mocks"
	"rental/internal/domains/reservation/model"
	"rental/internal/domains/reservation/model/dto"
	reservationMocks "rental/internal/domains/reservation/mocks"
	"rental/internal/domains/reservation/service"
	cacheMocks "rental/shared/cache/mocks"
	"rental/shared/constant"
	gDto "rental/shared/dto"
	"rental/shared/failure"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

const apartmentID = "7f0c1a52-8d3e-4b8e-9a51-0d1f3c2b4a10"

var errCacheMiss = errors.New("redis: nil")

type fixture struct {
	store    *memoryStore
	listings *reservationMocks.MockListings
	notifier *notificationMocks.MockNotifier
	cache    *cacheMocks.MockRedisCache
	metrics  *metrics.Metrics
	cfg      *config.Config
	svc      service.Reservation

	mu    sync.Mutex
	saved []string
}

func setup(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		store:    newMemoryStore(),
		listings: reservationMocks.NewMockListings(ctrl),
		notifier: notificationMocks.NewMockNotifier(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		metrics:  metrics.New(),
		cfg:      &config.Config{},
	}

	f.cfg.Booking.MaxAttempts = 3
	f.cfg.Booking.InitialBackoffMs = 1
	f.cfg.Booking.MaxBackoffMs = 2

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, _ any, _ int) error {
			f.mu.Lock()
			defer f.mu.Unlock()

			f.saved = append(f.saved, key)

			return nil
		}).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.listings.EXPECT().Get(gomock.Any(), apartmentID).Return(apartmentDto.ApartmentResponse{
		ID:            apartmentID,
		Name:          "Villa Sol",
		PricePerNight: 50,
		Capacity:      4,
	}, nil).AnyTimes()
	f.listings.EXPECT().PricePerNight(gomock.Any(), apartmentID).Return(50, nil).AnyTimes()

	f.svc = service.New(f.store, f.listings, f.notifier, f.cfg, f.cache, mocks.NewOtel(), f.metrics)
	service.SetToday(f.svc, func() time.Time {
		return time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	})

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		assert.NoError(t, f.svc.Flush(ctx))
	})

	return f
}

func (f *fixture) savedKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.saved...)
}

func (f *fixture) cacheMiss() {
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).AnyTimes()
}

func (f *fixture) notifyOK() {
	f.notifier.EXPECT().ReservationCreated(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func request(checkIn, checkOut string) dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		ApartmentID: apartmentID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		GuestName:   "Ana Horvat",
		GuestEmail:  "Ana@Example.com",
		Guests:      2,
	}
}

func stored(id, checkIn, checkOut, status string) model.Reservation {
	in, _ := time.Parse(time.DateOnly, checkIn)
	out, _ := time.Parse(time.DateOnly, checkOut)

	return model.Reservation{
		ID:          id,
		ApartmentID: apartmentID,
		CheckIn:     in,
		CheckOut:    out,
		Status:      status,
		GuestName:   "Existing Guest",
		GuestEmail:  "guest@example.com",
		Guests:      1,
	}
}

func TestCreate_BookingScenario(t *testing.T) {
	f := setup(t)
	f.cacheMiss()
	f.notifyOK()

	ctx := context.Background()

	first, err := f.svc.Create(ctx, request("2025-10-01", "2025-10-04"))
	require.NoError(t, err)
	assert.Equal(t, constant.ReservationStatusPending, first.Status)
	assert.Equal(t, 3, first.Nights)
	assert.Equal(t, 150, first.TotalPrice)
	assert.Equal(t, "ana@example.com", first.GuestEmail)

	_, err = f.svc.Create(ctx, request("2025-10-03", "2025-10-06"))
	require.ErrorIs(t, err, service.ErrDatesUnavailable)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	turnover, err := f.svc.Create(ctx, request("2025-10-04", "2025-10-07"))
	require.NoError(t, err)
	assert.Equal(t, 150, turnover.TotalPrice)

	require.NoError(t, f.svc.UpdateStatus(ctx, first.ID, dto.UpdateStatusRequest{Status: constant.ReservationStatusCancelled}))

	rebooked, err := f.svc.Create(ctx, request("2025-10-02", "2025-10-04"))
	require.NoError(t, err)
	assert.Equal(t, 100, rebooked.TotalPrice)

	assert.Equal(t, 3, f.store.size())
	assert.Equal(t, constant.ReservationStatusCancelled, f.store.get(first.ID).Status)
	assert.InDelta(t, 3, testutil.ToFloat64(f.metrics.ReservationsCreated), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.ReservationConflicts.WithLabelValues("check")), 0)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   dto.CreateReservationRequest
		field string
	}{
		{
			name: "invalid email",
			req: func() dto.CreateReservationRequest {
				req := request("2025-10-01", "2025-10-04")
				req.GuestEmail = "not-an-email"

				return req
			}(),
			field: "guest_email",
		},
		{
			name:  "check out equals check in",
			req:   request("2025-10-01", "2025-10-01"),
			field: constant.RequestParamCheckOut,
		},
		{
			name:  "check out before check in",
			req:   request("2025-10-04", "2025-10-01"),
			field: constant.RequestParamCheckOut,
		},
		{
			name:  "check in before today",
			req:   request("2025-08-30", "2025-09-02"),
			field: constant.RequestParamCheckIn,
		},
		{
			name:  "stay longer than a year",
			req:   request("2025-10-01", "9999-12-31"),
			field: constant.RequestParamCheckOut,
		},
		{
			name:  "malformed date",
			req:   request("2025-13-01", "2025-10-04"),
			field: constant.RequestParamCheckIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)

			_, err := f.svc.Create(context.Background(), tt.req)

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Contains(t, failure.GetFields(err), tt.field)
			assert.Zero(t, f.store.attempts())
		})
	}

	t.Run("more guests than the apartment sleeps", func(t *testing.T) {
		f := setup(t)

		req := request("2025-10-01", "2025-10-04")
		req.Guests = 6

		_, err := f.svc.Create(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, failure.GetFields(err), "guests")
		assert.Zero(t, f.store.attempts())
	})

	t.Run("unknown apartment", func(t *testing.T) {
		f := setup(t)

		req := request("2025-10-01", "2025-10-04")
		req.ApartmentID = "0b7e5f0e-2d59-4c55-8f4f-2a0a3c9c0e11"

		f.listings.EXPECT().Get(gomock.Any(), req.ApartmentID).
			Return(apartmentDto.ApartmentResponse{}, failure.Wrap(http.StatusNotFound, errors.New("apartment not found")))

		_, err := f.svc.Create(context.Background(), req)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Zero(t, f.store.attempts())
	})
}

func TestCreate_ConcurrentOverlapping(t *testing.T) {
	f := setup(t)
	f.notifyOK()

	var succeeded, conflicted atomic.Int32

	g, ctx := errgroup.WithContext(context.Background())

	for range 10 {
		g.Go(func() error {
			_, err := f.svc.Create(ctx, request("2025-10-01", "2025-10-05"))

			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, service.ErrDatesUnavailable):
				conflicted.Add(1)
			default:
				return err
			}

			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(9), conflicted.Load())
	assert.Equal(t, 1, f.store.size())
}

func TestCreate_ConcurrentDisjoint(t *testing.T) {
	f := setup(t)
	f.notifyOK()

	stays := [][2]string{
		{"2025-10-01", "2025-10-03"},
		{"2025-10-03", "2025-10-05"},
		{"2025-10-05", "2025-10-07"},
		{"2025-10-07", "2025-10-09"},
	}

	g, ctx := errgroup.WithContext(context.Background())

	for _, stay := range stays {
		g.Go(func() error {
			_, err := f.svc.Create(ctx, request(stay[0], stay[1]))

			return err
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, len(stays), f.store.size())
}

func TestCreate_Retry(t *testing.T) {
	t.Run("serialization failure is retried", func(t *testing.T) {
		f := setup(t)
		f.notifyOK()
		f.store.txFailures = []error{postgres.ErrSerialization}

		res, err := f.svc.Create(context.Background(), request("2025-10-01", "2025-10-04"))

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, 2, f.store.attempts())
		assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.StoreRetries.WithLabelValues("create")), 0)
	})

	t.Run("exhausted retries are unavailable, never a conflict", func(t *testing.T) {
		f := setup(t)
		f.store.txFailures = []error{postgres.ErrUnavailable, postgres.ErrUnavailable, postgres.ErrUnavailable}

		_, err := f.svc.Create(context.Background(), request("2025-10-01", "2025-10-04"))

		require.ErrorIs(t, err, service.ErrStoreUnavailable)
		assert.NotErrorIs(t, err, service.ErrDatesUnavailable)
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
		assert.Equal(t, 3, f.store.attempts())
		assert.Zero(t, f.store.size())
		assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.StoreUnavailable), 0)
	})

	t.Run("conflict is not retried", func(t *testing.T) {
		f := setup(t)
		f.store.put(stored("r-1", "2025-10-01", "2025-10-04", constant.ReservationStatusConfirmed))

		_, err := f.svc.Create(context.Background(), request("2025-10-02", "2025-10-03"))

		require.ErrorIs(t, err, service.ErrDatesUnavailable)
		assert.Equal(t, 1, f.store.attempts())
	})

	t.Run("cancelled caller stops retrying", func(t *testing.T) {
		f := setup(t)
		f.store.txFailures = []error{postgres.ErrSerialization, postgres.ErrSerialization, postgres.ErrSerialization}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.svc.Create(ctx, request("2025-10-01", "2025-10-04"))

		require.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, service.ErrStoreUnavailable)
		assert.LessOrEqual(t, f.store.attempts(), 1)
		assert.Zero(t, f.store.size())
	})
}

func TestCreate_ConstraintBackstop(t *testing.T) {
	f := setup(t)
	f.store.put(stored("r-1", "2025-10-01", "2025-10-04", constant.ReservationStatusPending))
	f.store.skipCheck = true

	_, err := f.svc.Create(context.Background(), request("2025-10-03", "2025-10-05"))

	require.ErrorIs(t, err, service.ErrDatesUnavailable)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Equal(t, 1, f.store.size())
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.ReservationConflicts.WithLabelValues("constraint")), 0)
}

func TestCreate_CancelledDoesNotBlock(t *testing.T) {
	f := setup(t)
	f.notifyOK()
	f.store.put(stored("r-1", "2025-10-01", "2025-10-10", constant.ReservationStatusCancelled))

	_, err := f.svc.Create(context.Background(), request("2025-10-02", "2025-10-05"))

	require.NoError(t, err)
	assert.Equal(t, 2, f.store.size())
}

func TestCreate_NotificationFailureKeepsReservation(t *testing.T) {
	f := setup(t)

	f.notifier.EXPECT().
		ReservationCreated(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reservation model.Reservation, apartment apartmentDto.ApartmentResponse) error {
			assert.Equal(t, "Villa Sol", apartment.Name)
			assert.Equal(t, 150, reservation.TotalPrice)

			return errors.New("broker down")
		})

	res, err := f.svc.Create(context.Background(), request("2025-10-01", "2025-10-04"))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, f.svc.Flush(ctx))
	assert.Equal(t, res.ID, f.store.get(res.ID).ID)
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.NotificationFailures), 0)
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		code    int
		wantErr error
	}{
		{name: "pending to confirmed", current: constant.ReservationStatusPending, target: constant.ReservationStatusConfirmed},
		{name: "confirmed to cancelled", current: constant.ReservationStatusConfirmed, target: constant.ReservationStatusCancelled},
		{name: "same status is a no-op", current: constant.ReservationStatusConfirmed, target: constant.ReservationStatusConfirmed},
		{
			name:    "confirmed back to pending",
			current: constant.ReservationStatusConfirmed,
			target:  constant.ReservationStatusPending,
			code:    http.StatusConflict,
			wantErr: service.ErrInvalidTransition,
		},
		{
			name:    "cancelled cannot come back",
			current: constant.ReservationStatusCancelled,
			target:  constant.ReservationStatusConfirmed,
			code:    http.StatusConflict,
			wantErr: service.ErrInvalidTransition,
		},
		{name: "unknown status", current: constant.ReservationStatusPending, target: "archived", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			f.store.put(stored("r-1", "2025-10-01", "2025-10-04", tt.current))

			err := f.svc.UpdateStatus(context.Background(), "r-1", dto.UpdateStatusRequest{Status: tt.target})

			if tt.code == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.target, f.store.get("r-1").Status)

				return
			}

			assert.Equal(t, tt.code, failure.GetCode(err))
			assert.Equal(t, tt.current, f.store.get("r-1").Status)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	t.Run("not found", func(t *testing.T) {
		f := setup(t)

		err := f.svc.UpdateStatus(context.Background(), "missing", dto.UpdateStatusRequest{Status: constant.ReservationStatusConfirmed})

		require.ErrorIs(t, err, service.ErrReservationNotFound)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUpdateDates(t *testing.T) {
	t.Run("moves onto free dates and reprices", func(t *testing.T) {
		f := setup(t)
		f.store.put(stored("r-1", "2025-10-01", "2025-10-04", constant.ReservationStatusConfirmed))

		err := f.svc.UpdateDates(context.Background(), "r-1", dto.UpdateDatesRequest{CheckIn: "2025-10-02", CheckOut: "2025-10-07"})

		require.NoError(t, err)

		updated := f.store.get("r-1")
		assert.Equal(t, "2025-10-02", updated.CheckIn.Format(time.DateOnly))
		assert.Equal(t, 250, updated.TotalPrice)
	})

	t.Run("keeps an explicit price", func(t *testing.T) {
		f := setup(t)
		f.store.put(stored("r-1", "2025-10-01", "2025-10-04", constant.ReservationStatusPending))

		err := f.svc.UpdateDates(context.Background(), "r-1", dto.UpdateDatesRequest{CheckIn: "2025-10-01", CheckOut: "2025-10-03", TotalPrice: 90})

		require.NoError(t, err)
		assert.Equal(t, 90, f.store.get("r-1").TotalPrice)
	})

	t.Run("rejects dates held by another reservation", func(t *testing.T) {
		f := setup(t)
		f.store.put(stored("r-1", "2025-10-01", "2025-10-04", constant.ReservationStatusConfirmed))
		f.store.put(stored("r-2", "2025-10-06", "2025-10-09", constant.ReservationStatusPending))

		err := f.svc.UpdateDates(context.Background(), "r-1", dto.UpdateDatesRequest{CheckIn: "2025-10-03", CheckOut: "2025-10-07"})

		require.ErrorIs(t, err, service.ErrDatesUnavailable)
		assert.Equal(t, "2025-10-01", f.store.get("r-1").CheckIn.Format(time.DateOnly))
	})

	t.Run("cancelled reservation may sit on taken dates", func(t *testing.T) {
		f := setup(t)
		f.store.put(stored("r-1", "2025-10-01", "2025-10-04", constant.ReservationStatusCancelled))
		f.store.put(stored("r-2", "2025-10-06", "2025-10-09", constant.ReservationStatusPending))

		err := f.svc.UpdateDates(context.Background(), "r-1", dto.UpdateDatesRequest{CheckIn: "2025-10-06", CheckOut: "2025-10-08"})

		require.NoError(t, err)
	})

	t.Run("past dates are allowed for corrections", func(t *testing.T) {
		f := setup(t)
		f.store.put(stored("r-1", "2025-08-01", "2025-08-04", constant.ReservationStatusConfirmed))

		err := f.svc.UpdateDates(context.Background(), "r-1", dto.UpdateDatesRequest{CheckIn: "2025-08-01", CheckOut: "2025-08-05"})

		require.NoError(t, err)
	})

	t.Run("empty range", func(t *testing.T) {
		f := setup(t)

		err := f.svc.UpdateDates(context.Background(), "r-1", dto.UpdateDatesRequest{CheckIn: "2025-10-05", CheckOut: "2025-10-05"})

		assert.Contains(t, failure.GetFields(err), constant.RequestParamCheckOut)
		assert.Zero(t, f.store.attempts())
	})
}

func TestDelete(t *testing.T) {
	f := setup(t)
	f.store.put(stored("r-1", "2025-10-01", "2025-10-04", constant.ReservationStatusCancelled))

	require.NoError(t, f.svc.Delete(context.Background(), "r-1"))
	assert.Zero(t, f.store.size())

	err := f.svc.Delete(context.Background(), "r-1")
	assert.ErrorIs(t, err, service.ErrReservationNotFound)
}

func TestGet(t *testing.T) {
	f := setup(t)
	f.cacheMiss()
	f.store.put(stored("r-1", "2025-10-01", "2025-10-04", constant.ReservationStatusConfirmed))

	res, err := f.svc.Get(context.Background(), "r-1")
	require.NoError(t, err)
	assert.Equal(t, "2025-10-01", res.CheckIn)
	assert.Equal(t, 3, res.Nights)

	_, err = f.svc.Get(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestGetAll(t *testing.T) {
	f := setup(t)
	f.cacheMiss()
	f.store.put(stored("r-1", "2025-10-01", "2025-10-04", constant.ReservationStatusConfirmed))
	f.store.put(stored("r-2", "2025-10-05", "2025-10-06", constant.ReservationStatusPending))

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Reservations, 2)
}

func TestAvailability(t *testing.T) {
	t.Run("lists nights held by active reservations", func(t *testing.T) {
		f := setup(t)
		f.cacheMiss()
		f.store.put(stored("r-1", "2025-09-01", "2025-09-04", constant.ReservationStatusPending))
		f.store.put(stored("r-2", "2025-09-04", "2025-09-05", constant.ReservationStatusConfirmed))
		f.store.put(stored("r-3", "2025-09-10", "2025-09-12", constant.ReservationStatusCancelled))

		first, err := f.svc.Availability(context.Background(), apartmentID)
		require.NoError(t, err)

		assert.Equal(t, "2025-09-01", first.DisabledBefore)
		assert.Equal(t, []string{"2025-09-01", "2025-09-02", "2025-09-03", "2025-09-04"}, first.DisabledDates)

		second, err := f.svc.Availability(context.Background(), apartmentID)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.InDelta(t, 2, testutil.ToFloat64(f.metrics.AvailabilityCacheHits.WithLabelValues("miss")), 0)
	})

	t.Run("snapshot older than a booking is not cached", func(t *testing.T) {
		f := setup(t)
		f.cacheMiss()
		f.notifyOK()

		ctx := context.Background()
		key := "reservation:availability:" + apartmentID

		f.store.afterRead = func() {
			_, err := f.svc.Create(ctx, request("2025-10-01", "2025-10-03"))
			require.NoError(t, err)
		}

		stale, err := f.svc.Availability(ctx, apartmentID)
		require.NoError(t, err)
		assert.Empty(t, stale.DisabledDates)

		require.NoError(t, f.svc.Flush(ctx))
		assert.NotContains(t, f.savedKeys(), key)

		fresh, err := f.svc.Availability(ctx, apartmentID)
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-10-01", "2025-10-02"}, fresh.DisabledDates)

		require.NoError(t, f.svc.Flush(ctx))
		assert.Contains(t, f.savedKeys(), key)
	})

	t.Run("cached calendar gets today's lower bound", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "reservation:availability:"+apartmentID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.AvailabilityResponse)
				require.True(t, ok)

				*res = dto.AvailabilityResponse{
					ApartmentID:    apartmentID,
					DisabledBefore: "2025-08-15",
					DisabledDates:  []string{"2025-09-20"},
				}

				return nil
			})

		res, err := f.svc.Availability(context.Background(), apartmentID)

		require.NoError(t, err)
		assert.Equal(t, "2025-09-01", res.DisabledBefore)
		assert.Equal(t, []string{"2025-09-20"}, res.DisabledDates)
		assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.AvailabilityCacheHits.WithLabelValues("hit")), 0)
		assert.Zero(t, f.store.attempts())
	})
}

func TestCheck(t *testing.T) {
	f := setup(t)
	f.store.put(stored("r-1", "2025-10-01", "2025-10-04", constant.ReservationStatusConfirmed))

	tests := []struct {
		name      string
		checkIn   string
		checkOut  string
		available bool
		price     int
	}{
		{name: "overlapping", checkIn: "2025-10-03", checkOut: "2025-10-05", price: 100},
		{name: "check in on a check out day", checkIn: "2025-10-04", checkOut: "2025-10-07", available: true, price: 150},
		{name: "check out on a check in day", checkIn: "2025-09-28", checkOut: "2025-10-01", available: true, price: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.svc.Check(context.Background(), apartmentID, dto.CheckAvailabilityRequest{CheckIn: tt.checkIn, CheckOut: tt.checkOut})

			require.NoError(t, err)
			assert.Equal(t, tt.available, res.Available)
			assert.Equal(t, tt.price, res.TotalPrice)
		})
	}

	t.Run("past stay", func(t *testing.T) {
		_, err := f.svc.Check(context.Background(), apartmentID, dto.CheckAvailabilityRequest{CheckIn: "2025-08-01", CheckOut: "2025-08-03"})

		assert.Contains(t, failure.GetFields(err), constant.RequestParamCheckIn)
	})
}
