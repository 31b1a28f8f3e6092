package repository

//go:generate go run go.uber.org/mock/mockgen -source=./day.go -destination=../mocks/day_repository_mock.go -package=mocks

import (
	"context"

	"carre/infras/otel"
	"carre/infras/postgres"
	"carre/internal/domains/event/model"
	gDto "carre/shared/dto"
	gRepo "carre/shared/repository"
)

type EventDay interface {
	Insert(ctx context.Context, model model.EventDay) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.EventDay, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.EventDay, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type dayRepositoryImpl struct {
	gRepo.Repository[model.EventDay]
	db   *postgres.Connection
	otel otel.Otel
}

func NewEventDay(db *postgres.Connection, otel otel.Otel) EventDay {
	return &dayRepositoryImpl{
		Repository: gRepo.NewRepository[model.EventDay](model.DayEntityName, model.DayTableName, model.FieldDayID, db, otel),
		db:         db,
		otel:       otel,
	}
}
