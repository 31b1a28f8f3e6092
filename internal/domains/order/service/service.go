package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"carre/config"
	"carre/infras/otel"
	eventModel "carre/internal/domains/event/model"
	eventRepo "carre/internal/domains/event/repository"
	menuModel "carre/internal/domains/menu/model"
	menuDto "carre/internal/domains/menu/model/dto"
	menuRepo "carre/internal/domains/menu/repository"
	"carre/internal/domains/order/model"
	"carre/internal/domains/order/model/dto"
	"carre/internal/domains/order/repository"
	"carre/internal/domains/table"
	tableModel "carre/internal/domains/table/model"
	tableRepo "carre/internal/domains/table/repository"
	"carre/shared"
	"carre/shared/constant"
	gDto "carre/shared/dto"
	"carre/shared/failure"
	gModel "carre/shared/model"
	"carre/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Order interface {
	GenerateLink(ctx context.Context, req dto.GenerateLinkRequest) (dto.GenerateLinkResponse, error)
	Get(ctx context.Context, token string) (dto.OrderSnapshotResponse, error)
	Save(ctx context.Context, token string, req dto.SaveOrderRequest) (dto.SaveOrderResponse, error)
}

type serviceImpl struct {
	repo      repository.Order
	itemRepo  repository.OrderItem
	tableRepo tableRepo.Table
	eventRepo eventRepo.Event
	menuRepo  menuRepo.MenuItem
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Order, itemRepo repository.OrderItem, tableRepository tableRepo.Table, eventRepository eventRepo.Event, menuRepository menuRepo.MenuItem, cfg *config.Config, otel otel.Otel) Order {
	return &serviceImpl{
		repo:      repo,
		itemRepo:  itemRepo,
		tableRepo: tableRepository,
		eventRepo: eventRepository,
		menuRepo:  menuRepository,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) GenerateLink(ctx context.Context, req dto.GenerateLinkRequest) (res dto.GenerateLinkResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GenerateLink")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	tab, err := s.tableRepo.Get(ctx, shared.FilterByID(req.TableID, tableModel.FieldID, tableModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return res, fmt.Errorf("failed to get table: %w", err)
	}

	if tab.ID == constant.Empty {
		return res, failure.NotFound("table not found") // nolint:wrapcheck
	}

	// Re-issuing a link reuses the table's existing order.
	existing, err := s.latestOrderForTable(ctx, req.TableID)
	if err != nil {
		return res, err
	}

	if existing.ID != constant.Empty {
		res.OrderID = existing.ID
		res.AccessToken = existing.AccessToken
		res.URL = s.orderURL(existing.AccessToken)

		return res, nil
	}

	budget := table.BeverageBudget(tab.EffectivePrice(), s.cfg.App.Billing.BeverageBudgetPercent)

	order := model.Order{
		ID:           uuid.NewString(),
		TableID:      tab.ID,
		EventID:      tab.EventID,
		AccessToken:  uuid.NewString(),
		Status:       constant.OrderStatusPending,
		ClientName:   tab.ClientName,
		ClientEmail:  tab.ClientEmail,
		BudgetAmount: budget,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.Insert(ctx, order); err != nil {
		log.Error().Err(err).Msg("failed to create order")

		return res, fmt.Errorf("failed to create order: %w", err)
	}

	res.OrderID = order.ID
	res.AccessToken = order.AccessToken
	res.URL = s.orderURL(order.AccessToken)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, token string) (res dto.OrderSnapshotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.orderByToken(ctx, token)
	if err != nil {
		return res, err
	}

	items, err := s.itemsForOrder(ctx, order.ID)
	if err != nil {
		return res, err
	}

	tab, err := s.tableRepo.Get(ctx, shared.FilterByID(order.TableID, tableModel.FieldID, tableModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return res, fmt.Errorf("failed to get table: %w", err)
	}

	event, err := s.eventRepo.Get(ctx, shared.FilterByID(order.EventID, eventModel.FieldID, eventModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return res, fmt.Errorf("failed to get event: %w", err)
	}

	menu, err := s.availableMenu(ctx, order.EventID)
	if err != nil {
		return res, err
	}

	res.Order.FromModel(order, items)
	res.Event.FromModel(event)
	res.Menu = make([]menuDto.MenuItemResponse, len(menu))

	for i, item := range menu {
		res.Menu[i].FromModel(item)
	}

	soldPrice := 0.0
	if tab.SoldPrice != nil {
		soldPrice = *tab.SoldPrice
	}

	commissionPercent := 0.0
	if tab.ConciergeCommission != nil {
		commissionPercent = *tab.ConciergeCommission
	}

	total := table.Total(soldPrice, tab.AdditionalPersons, tab.AdditionalPersonPrice, tab.OnSiteAdditionalRevenue)
	commission := table.Commission(soldPrice, commissionPercent)
	res.Table.FromModel(tab, total, commission, table.Net(total, commission))

	return res, nil
}

func (s *serviceImpl) Save(ctx context.Context, token string, req dto.SaveOrderRequest) (res dto.SaveOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.orderByToken(ctx, token)
	if err != nil {
		return res, err
	}

	// The budget follows the table's current price, not the one frozen
	// when the link was issued.
	tab, err := s.tableRepo.Get(ctx, shared.FilterByID(order.TableID, tableModel.FieldID, tableModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return res, fmt.Errorf("failed to get table: %w", err)
	}

	budget := table.BeverageBudget(tab.EffectivePrice(), s.cfg.App.Billing.BeverageBudgetPercent)

	menu, err := s.availableMenu(ctx, order.EventID)
	if err != nil {
		return res, err
	}

	prices := make(map[string]float64, len(menu))
	for _, item := range menu {
		prices[item.ID] = item.Price
	}

	lines, summary, err := reconcile(req.Items, prices, budget)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	items := make([]model.OrderItem, len(lines))

	for i, line := range lines {
		items[i] = model.OrderItem{
			ID:         uuid.NewString(),
			OrderID:    order.ID,
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: line.TotalPrice,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  order.ID,
				ModifiedBy: order.ID,
			},
		}
	}

	updatedFields := map[string]any{
		model.FieldStatus:         constant.OrderStatusConfirmed,
		model.FieldBudgetAmount:   budget,
		model.FieldTotalAmount:    summary.Total,
		model.FieldExtraAmount:    summary.Extra,
		model.FieldBudgetExceeded: summary.Exceeded,
		model.FieldConfirmedAt:    now,
		constant.FieldModifiedAt:  now,
		constant.FieldModifiedBy:  order.ID,
	}

	if req.ClientName != constant.Empty {
		updatedFields[model.FieldClientName] = req.ClientName
	}

	if req.ClientEmail != constant.Empty {
		updatedFields[model.FieldClientEmail] = req.ClientEmail
	}

	if req.Notes != constant.Empty {
		updatedFields[model.FieldClientNotes] = req.Notes
	}

	if err = s.repo.SaveReconciled(ctx, order.ID, items, updatedFields); err != nil {
		log.Error().Err(err).Msg("failed to save reconciled order")

		return res, fmt.Errorf("failed to save reconciled order: %w", err)
	}

	saved, err := s.orderByToken(ctx, token)
	if err != nil {
		return res, err
	}

	res.Order.FromModel(saved, items)

	return res, nil
}

func (s *serviceImpl) orderByToken(ctx context.Context, token string) (model.Order, error) {
	if token == constant.Empty {
		return model.Order{}, failure.BadRequestFromString("missing access token") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAccessToken,
				Value:    token,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	order, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return model.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == constant.Empty {
		return model.Order{}, failure.NotFound("order not found") // nolint:wrapcheck
	}

	return order, nil
}

func (s *serviceImpl) latestOrderForTable(ctx context.Context, tableID string) (model.Order, error) {
	params := gDto.QueryParams{
		Page:    1,
		Limit:   1,
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	orders, err := s.repo.GetAll(ctx, params, shared.FilterByID(tableID, model.FieldTableID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders for table")

		return model.Order{}, fmt.Errorf("failed to get orders for table: %w", err)
	}

	if len(orders) == 0 {
		return model.Order{}, nil
	}

	return orders[0], nil
}

func (s *serviceImpl) itemsForOrder(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	items, err := s.itemRepo.GetAll(ctx, params, shared.FilterByID(orderID, model.FieldItemOrderID, model.ItemTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get order items")

		return nil, fmt.Errorf("failed to get order items: %w", err)
	}

	return items, nil
}

func (s *serviceImpl) availableMenu(ctx context.Context, eventID string) ([]menuModel.MenuItem, error) {
	params := gDto.QueryParams{
		SortBy:  menuModel.FieldSortOrder,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    menuModel.FieldEventID,
				Value:    eventID,
				Operator: gDto.FilterOperatorEq,
				Table:    menuModel.TableName,
			},
			gDto.Filter{
				Field:    menuModel.FieldAvailable,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    menuModel.TableName,
			},
		},
	}

	menu, err := s.menuRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu items")

		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}

	return menu, nil
}

func (s *serviceImpl) orderURL(token string) string {
	return fmt.Sprintf("%s/vip/order?token=%s", s.cfg.App.BaseURL, token)
}
