package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"rental/infras/otel"
	"rental/infras/postgres"
	"rental/internal/domains/inquiry/model"
	gDto "rental/shared/dto"
	gRepo "rental/shared/repository"
)

type Inquiry interface {
	Insert(ctx context.Context, model model.Inquiry) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Inquiry, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Inquiry, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Inquiry]
}

func New(db *postgres.Connection, otel otel.Otel) Inquiry {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Inquiry](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
