package repository

//go:generate go run go.uber.org/mock/mockgen -source=./layout.go -destination=../mocks/layout_repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"carre/infras/otel"
	"carre/infras/postgres"
	"carre/internal/domains/venue/model"
	"carre/shared/constant"
	gDto "carre/shared/dto"
	"carre/shared/logger"
	gRepo "carre/shared/repository"
)

type TableLayout interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TableLayout, error)
	ReplaceAll(ctx context.Context, venueID string, layouts []model.TableLayout) error
}

type layoutRepositoryImpl struct {
	gRepo.Repository[model.TableLayout]
	db   *postgres.Connection
	otel otel.Otel
}

func NewTableLayout(db *postgres.Connection, otel otel.Otel) TableLayout {
	return &layoutRepositoryImpl{
		Repository: gRepo.NewRepository[model.TableLayout](model.LayoutEntityName, model.LayoutTableName, model.FieldLayoutID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ReplaceAll swaps the venue's layout set inside one transaction so readers
// never observe an empty in-between state.
func (repo *layoutRepositoryImpl) ReplaceAll(ctx context.Context, venueID string, layouts []model.TableLayout) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.LayoutEntityName+".ReplaceAll")
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

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldLayoutVenueID,
				Value:    venueID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.LayoutTableName,
			},
		},
	}

	if err = repo.DeleteTx(ctx, tx, filter); err != nil {
		return fmt.Errorf("failed to delete layouts: %w", err)
	}

	if len(layouts) > 0 {
		if err = repo.InsertBulkTx(ctx, tx, layouts); err != nil {
			return fmt.Errorf("failed to insert layouts: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
