package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"rental/infras/otel"
	"rental/infras/postgres"
	"rental/internal/domains/gallery/model"
	gDto "rental/shared/dto"
	gRepo "rental/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Gallery interface {
	Insert(ctx context.Context, model model.Image) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Image, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Image, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	SetCover(ctx context.Context, apartmentID, imageID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Image]
}

func New(db *postgres.Connection, otel otel.Otel) Gallery {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Image](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// SetCover moves the cover flag of an apartment to imageID in one transaction, so the
// partial unique index on covers never sees two rows.
func (r *repositoryImpl) SetCover(ctx context.Context, apartmentID, imageID string) error {
	return r.Connection().WithTx(ctx, nil, func(tx *sqlx.Tx) error {
		if err := r.UpdateTx(ctx, tx, map[string]any{model.FieldIsCover: false}, ByApartment(apartmentID)); err != nil {
			return err
		}

		return r.UpdateTx(ctx, tx, map[string]any{model.FieldIsCover: true}, ByImage(apartmentID, imageID))
	})
}

// ByApartment selects every image of an apartment.
func ByApartment(apartmentID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldApartmentID, Operator: gDto.FilterOperatorEq, Value: apartmentID, Table: model.TableName},
		},
	}
}

// ByImage selects one image, scoped to the apartment it belongs to.
func ByImage(apartmentID, imageID string) gDto.FilterGroup {
	filter := ByApartment(apartmentID)
	filter.Filters = append(filter.Filters,
		gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: imageID, Table: model.TableName})

	return filter
}
