package service_test

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"rental/internal/domains/reservation/model"
	"rental/internal/domains/reservation/repository"
	"rental/shared/constant"
	"rental/shared/daterange"
	gDto "rental/shared/dto"

	"github.com/jmoiron/sqlx"
)

// memoryStore is an in-memory repository.Reservation. Transactions run one at a time and roll
// back on error, which is the guarantee a serializable transaction gives the service.
type memoryStore struct {
	tx sync.Mutex
	mu sync.Mutex

	reservations map[string]model.Reservation
	txFailures   []error
	txAttempts   int
	// skipCheck hides existing reservations from FindConflictingTx so the insert-time
	// exclusion check has to reject the write.
	skipCheck bool
	// afterRead runs once, after the next FindActiveByApartment has taken its snapshot.
	afterRead func()
}

func newMemoryStore() *memoryStore {
	return &memoryStore{reservations: map[string]model.Reservation{}}
}

func (m *memoryStore) attempts() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.txAttempts
}

func (m *memoryStore) put(reservation model.Reservation) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reservations[reservation.ID] = reservation
}

func (m *memoryStore) get(id string) model.Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.reservations[id]
}

func (m *memoryStore) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.reservations)
}

func (m *memoryStore) WithSerializableTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	m.tx.Lock()
	defer m.tx.Unlock()

	m.mu.Lock()
	m.txAttempts++

	if len(m.txFailures) > 0 {
		err := m.txFailures[0]
		m.txFailures = m.txFailures[1:]
		m.mu.Unlock()

		return err
	}

	snapshot := maps.Clone(m.reservations)
	m.mu.Unlock()

	if err := fn(nil); err != nil {
		m.mu.Lock()
		m.reservations = snapshot
		m.mu.Unlock()

		return err
	}

	return nil
}

func (m *memoryStore) conflict(apartmentID string, stay daterange.Range, excludeID string) (model.Reservation, bool) {
	for _, reservation := range m.reservations {
		if reservation.ApartmentID != apartmentID || reservation.ID == excludeID || !reservation.IsActive() {
			continue
		}

		if reservation.Range().Overlaps(stay) {
			return reservation, true
		}
	}

	return model.Reservation{}, false
}

func (m *memoryStore) FindActiveByApartment(_ context.Context, apartmentID string) ([]model.Reservation, error) {
	m.mu.Lock()

	active := []model.Reservation{}

	for _, reservation := range m.reservations {
		if reservation.ApartmentID == apartmentID && reservation.IsActive() {
			active = append(active, reservation)
		}
	}

	afterRead := m.afterRead
	m.afterRead = nil
	m.mu.Unlock()

	if afterRead != nil {
		afterRead()
	}

	return active, nil
}

func (m *memoryStore) FindConflictingTx(_ context.Context, _ *sqlx.Tx, apartmentID string, stay daterange.Range, excludeID string) (model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.skipCheck {
		return model.Reservation{}, nil
	}

	reservation, _ := m.conflict(apartmentID, stay, excludeID)

	return reservation, nil
}

func (m *memoryStore) InsertTx(_ context.Context, _ *sqlx.Tx, reservation model.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.conflict(reservation.ApartmentID, reservation.Range(), constant.Empty); ok {
		return repository.ErrOverlap
	}

	reservation.Status = constant.ReservationStatusPending
	m.reservations[reservation.ID] = reservation

	return nil
}

func (m *memoryStore) GetTx(ctx context.Context, _ *sqlx.Tx, id string) (model.Reservation, error) {
	return m.Get(ctx, id)
}

func (m *memoryStore) UpdateTx(_ context.Context, _ *sqlx.Tx, fields map[string]any, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	reservation, ok := m.reservations[id]
	if !ok {
		return nil
	}

	for field, value := range fields {
		switch field {
		case model.FieldStatus:
			reservation.Status, _ = value.(string)
		case model.FieldCheckIn:
			reservation.CheckIn, _ = value.(time.Time)
		case model.FieldCheckOut:
			reservation.CheckOut, _ = value.(time.Time)
		case model.FieldTotalPrice:
			reservation.TotalPrice, _ = value.(int)
		}
	}

	if reservation.IsActive() {
		if _, overlap := m.conflict(reservation.ApartmentID, reservation.Range(), id); overlap {
			return repository.ErrOverlap
		}
	}

	m.reservations[id] = reservation

	return nil
}

func (m *memoryStore) Get(_ context.Context, id string) (model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.reservations[id], nil
}

func (m *memoryStore) GetAll(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup) ([]model.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Collect(maps.Values(m.reservations)), nil
}

func (m *memoryStore) Count(_ context.Context, _ gDto.FilterGroup) (int, error) {
	return m.size(), nil
}

func (m *memoryStore) Delete(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.reservations[id]; !ok {
		return 0, nil
	}

	delete(m.reservations, id)

	return 1, nil
}

var _ repository.Reservation = (*memoryStore)(nil)
