package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"petcare/infras/otel"
	"petcare/infras/postgres"
	"petcare/internal/domains/payroll/model"
	gDto "petcare/shared/dto"
	gRepo "petcare/shared/repository"
)

type Payroll interface {
	Insert(ctx context.Context, model model.WalkerEarning) error
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.WalkerEarning, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.WalkerEarning]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payroll {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.WalkerEarning](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
