package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"rental/infras/otel"
	"rental/infras/postgres"
	"rental/internal/domains/reservation/model"
	"rental/shared"
	"rental/shared/constant"
	"rental/shared/daterange"
	gDto "rental/shared/dto"
	gRepo "rental/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	argCandidateCheckIn  = "candidate_check_in"
	argCandidateCheckOut = "candidate_check_out"
	argExcludeID         = "exclude_id"
)

// ErrOverlap is returned when the store's exclusion constraint rejects a write.
var ErrOverlap = errors.New("reservation overlaps an active reservation")

type Reservation interface {
	// FindActiveByApartment returns the pending and confirmed reservations of an apartment in
	// no particular order. An unknown apartment yields an empty slice.
	FindActiveByApartment(ctx context.Context, apartmentID string) ([]model.Reservation, error)
	// FindConflictingTx returns one active reservation overlapping stay, or a zero value when
	// there is none. excludeID, when set, is ignored.
	FindConflictingTx(ctx context.Context, tx *sqlx.Tx, apartmentID string, stay daterange.Range, excludeID string) (model.Reservation, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, reservation model.Reservation) error
	GetTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Reservation, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, id string) error
	Get(ctx context.Context, id string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Reservation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, id string) (int64, error)
	WithSerializableTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) FindActiveByApartment(ctx context.Context, apartmentID string) ([]model.Reservation, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldApartmentID, Value: apartmentID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.ActiveStatuses, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
	}

	reservations, err := r.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find active reservations: %w", err)
	}

	return reservations, nil
}

func (r *repositoryImpl) FindConflictingTx(ctx context.Context, tx *sqlx.Tx, apartmentID string, stay daterange.Range, excludeID string) (model.Reservation, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldApartmentID, Value: apartmentID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{
				ArgName:  argCandidateCheckOut,
				Field:    model.FieldCheckIn,
				Value:    stay.CheckOut,
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  argCandidateCheckIn,
				Field:    model.FieldCheckOut,
				Value:    stay.CheckIn,
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    constant.ReservationStatusCancelled,
				Operator: gDto.FilterOperatorNotEq,
				Table:    model.TableName,
			},
		},
	}

	if excludeID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  argExcludeID,
			Field:    model.FieldID,
			Value:    excludeID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	conflict, err := r.Repository.GetTx(ctx, tx, filter)
	if err != nil {
		return conflict, fmt.Errorf("failed to find conflicting reservation: %w", err)
	}

	conflict.Normalize()

	return conflict, nil
}

func (r *repositoryImpl) InsertTx(ctx context.Context, tx *sqlx.Tx, reservation model.Reservation) error {
	reservation.Status = constant.ReservationStatusPending

	return overlapError(r.Repository.InsertTx(ctx, tx, reservation))
}

func (r *repositoryImpl) GetTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Reservation, error) {
	reservation, err := r.Repository.GetTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
	reservation.Normalize()

	return reservation, err
}

func (r *repositoryImpl) UpdateTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, id string) error {
	return overlapError(r.Repository.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)))
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Reservation, error) {
	reservation, err := r.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	reservation.Normalize()

	return reservation, err
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Reservation, error) {
	reservations, err := r.Repository.GetAll(ctx, params, filter)

	for i := range reservations {
		reservations[i].Normalize()
	}

	return reservations, err
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (int64, error) {
	return r.Repository.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

func (r *repositoryImpl) WithSerializableTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return r.Connection().WithSerializableTx(ctx, fn)
}

func overlapError(err error) error {
	if errors.Is(err, postgres.ErrExclusionViolation) {
		return fmt.Errorf("%w: %w", ErrOverlap, err)
	}

	return err
}
