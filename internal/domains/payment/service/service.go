package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"carre/infras/otel"
	"carre/internal/domains/payment/model"
	"carre/internal/domains/payment/model/dto"
	"carre/internal/domains/payment/repository"
	"carre/internal/domains/table"
	tableModel "carre/internal/domains/table/model"
	tableRepo "carre/internal/domains/table/repository"
	"carre/shared"
	"carre/shared/constant"
	gDto "carre/shared/dto"
	"carre/shared/failure"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Payment interface {
	Create(ctx context.Context, req dto.CreatePaymentRequest, tableID string) error
	GetByTable(ctx context.Context, tableID string) (dto.GetPaymentsResponse, error)
}

type serviceImpl struct {
	repo      repository.Payment
	tableRepo tableRepo.Table
	otel      otel.Otel
}

func New(repo repository.Payment, tableRepository tableRepo.Table, otel otel.Otel) Payment {
	return &serviceImpl{
		repo:      repo,
		tableRepo: tableRepository,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePaymentRequest, tableID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.tableRepo.Exist(ctx, shared.FilterByID(tableID, tableModel.FieldID, tableModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if table exists")

		return fmt.Errorf("failed to check if table exists: %w", err)
	}

	if !exist {
		return failure.NotFound("table not found") // nolint:wrapcheck
	}

	payment, err := req.ToModel(tableID, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse payment request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, payment); err != nil {
		log.Error().Err(err).Msg("failed to create payment")

		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetByTable(ctx context.Context, tableID string) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByTable")
	defer scope.End()
	defer scope.TraceIfError(err)

	tab, err := s.tableRepo.Get(ctx, shared.FilterByID(tableID, tableModel.FieldID, tableModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return res, fmt.Errorf("failed to get table: %w", err)
	}

	if tab.ID == constant.Empty {
		return res, failure.NotFound("table not found") // nolint:wrapcheck
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldPaymentDate,
		SortDir: gDto.SortDirAsc,
	}

	payments, err := s.repo.GetAll(ctx, params, shared.FilterByID(tableID, model.FieldTableID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	totalPaid := decimal.Zero

	res.Payments = make([]dto.PaymentResponse, len(payments))
	for i, payment := range payments {
		res.Payments[i].FromModel(payment)
		totalPaid = totalPaid.Add(decimal.NewFromFloat(payment.Amount))
	}

	soldPrice := 0.0
	if tab.SoldPrice != nil {
		soldPrice = *tab.SoldPrice
	}

	total := table.Total(soldPrice, tab.AdditionalPersons, tab.AdditionalPersonPrice, tab.OnSiteAdditionalRevenue)

	res.TotalPaid, _ = totalPaid.Round(2).Float64()
	res.Total = total
	res.Remaining, _ = decimal.NewFromFloat(total).Sub(totalPaid).Round(2).Float64()

	return res, nil
}
