package repository

//go:generate go run go.uber.org/mock/mockgen -source=./item.go -destination=../mocks/item_repository_mock.go -package=mocks

import (
	"context"

	"carre/infras/otel"
	"carre/infras/postgres"
	"carre/internal/domains/order/model"
	gDto "carre/shared/dto"
	gRepo "carre/shared/repository"
)

type OrderItem interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.OrderItem, error)
}

type itemRepositoryImpl struct {
	gRepo.Repository[model.OrderItem]
	db   *postgres.Connection
	otel otel.Otel
}

func NewOrderItem(db *postgres.Connection, otel otel.Otel) OrderItem {
	return &itemRepositoryImpl{
		Repository: gRepo.NewRepository[model.OrderItem](model.ItemEntityName, model.ItemTableName, model.FieldItemID, db, otel),
		db:         db,
		otel:       otel,
	}
}
