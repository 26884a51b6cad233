package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"rental/infras/otel"
	"rental/infras/postgres"
	"rental/internal/domains/apartment/model"
	gDto "rental/shared/dto"
	gRepo "rental/shared/repository"
)

type Apartment interface {
	Insert(ctx context.Context, model model.Apartment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Apartment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Apartment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Apartment]
}

func New(db *postgres.Connection, otel otel.Otel) Apartment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Apartment](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
