package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"carre/infras/otel"
	"carre/infras/postgres"
	"carre/internal/domains/order/model"
	"carre/shared/constant"
	gDto "carre/shared/dto"
	"carre/shared/logger"
	gRepo "carre/shared/repository"
)

type Order interface {
	Insert(ctx context.Context, model model.Order) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Order, error)
	SaveReconciled(ctx context.Context, orderID string, items []model.OrderItem, updatedFields map[string]any) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Order]
	itemRepo gRepo.Repository[model.OrderItem]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Order {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Order](model.EntityName, model.TableName, model.FieldID, db, otel),
		itemRepo:   gRepo.NewRepository[model.OrderItem](model.ItemEntityName, model.ItemTableName, model.FieldItemID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SaveReconciled swaps the order's item set and updates its totals inside
// one transaction, so a reader can never observe the emptied state between
// delete and insert.
func (repo *repositoryImpl) SaveReconciled(ctx context.Context, orderID string, items []model.OrderItem, updatedFields map[string]any) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".SaveReconciled")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	itemFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldItemOrderID,
				Value:    orderID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ItemTableName,
			},
		},
	}

	if err = repo.itemRepo.DeleteTx(ctx, tx, itemFilter); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	if len(items) > 0 {
		if err = repo.itemRepo.InsertBulkTx(ctx, tx, items); err != nil {
			return fmt.Errorf("failed to insert order items: %w", err)
		}
	}

	orderFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    orderID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	if err = repo.UpdateTx(ctx, tx, updatedFields, orderFilter); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
