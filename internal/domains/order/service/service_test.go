package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"carre/config"
	"carre/infras/otel/mocks"
	eventMocks "carre/internal/domains/event/mocks"
	menuMocks "carre/internal/domains/menu/mocks"
	menuModel "carre/internal/domains/menu/model"
	orderMocks "carre/internal/domains/order/mocks"
	"carre/internal/domains/order/model"
	"carre/internal/domains/order/model/dto"
	"carre/internal/domains/order/service"
	tableMocks "carre/internal/domains/table/mocks"
	tableModel "carre/internal/domains/table/model"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestOrderService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockItemRepo := orderMocks.NewMockOrderItem(ctrl)
	mockTableRepo := tableMocks.NewMockTable(ctrl)
	mockEventRepo := eventMocks.NewMockEvent(ctrl)
	mockMenuRepo := menuMocks.NewMockMenuItem(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.Billing.BeverageBudgetPercent = 100

	svc := service.New(mockRepo, mockItemRepo, mockTableRepo, mockEventRepo, mockMenuRepo, cfg, mockOtel)

	pending := model.Order{
		ID:           "order-1",
		TableID:      "table-1",
		EventID:      "event-1",
		AccessToken:  "token-1",
		Status:       "pending",
		BudgetAmount: 2000,
	}

	menu := []menuModel.MenuItem{
		{ID: "item-1", Price: 1000, Available: true},
	}

	var savedFields map[string]any

	tests := []struct {
		name        string
		token       string
		req         dto.SaveOrderRequest
		setupMock   func()
		checkFields func(t *testing.T)
		wantErr     bool
	}{
		{
			name:  "budget follows the table's current price, not the issuance snapshot",
			token: "token-1",
			req: dto.SaveOrderRequest{
				Items: []dto.SaveOrderItem{{MenuItemID: "item-1", Quantity: 3}},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil).
					Times(2)

				// Table was sold for more since the link was issued.
				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tableModel.Table{ID: "table-1", EventID: "event-1", SoldPrice: floatPtr(5000)}, nil)

				mockMenuRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(menu, nil)

				mockRepo.EXPECT().
					SaveReconciled(gomock.Any(), "order-1", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ []model.OrderItem, fields map[string]any) error {
						savedFields = fields

						return nil
					})
			},
			checkFields: func(t *testing.T) {
				assert.Equal(t, 5000.0, savedFields[model.FieldBudgetAmount])
				assert.Equal(t, 3000.0, savedFields[model.FieldTotalAmount])
				assert.Equal(t, 0.0, savedFields[model.FieldExtraAmount])
				assert.Equal(t, false, savedFields[model.FieldBudgetExceeded])
			},
			wantErr: false,
		},
		{
			name:  "cart over the current budget",
			token: "token-1",
			req: dto.SaveOrderRequest{
				Items: []dto.SaveOrderItem{{MenuItemID: "item-1", Quantity: 3}},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil).
					Times(2)

				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tableModel.Table{ID: "table-1", EventID: "event-1", SoldPrice: floatPtr(1000)}, nil)

				mockMenuRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(menu, nil)

				mockRepo.EXPECT().
					SaveReconciled(gomock.Any(), "order-1", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ []model.OrderItem, fields map[string]any) error {
						savedFields = fields

						return nil
					})
			},
			checkFields: func(t *testing.T) {
				assert.Equal(t, 1000.0, savedFields[model.FieldBudgetAmount])
				assert.Equal(t, 2000.0, savedFields[model.FieldExtraAmount])
				assert.Equal(t, true, savedFields[model.FieldBudgetExceeded])
			},
			wantErr: false,
		},
		{
			name:  "unknown menu item",
			token: "token-1",
			req: dto.SaveOrderRequest{
				Items: []dto.SaveOrderItem{{MenuItemID: "ghost", Quantity: 1}},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tableModel.Table{ID: "table-1", EventID: "event-1", StandardPrice: 3000}, nil)

				mockMenuRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(menu, nil)
			},
			wantErr: true,
		},
		{
			name:      "missing token",
			token:     "",
			req:       dto.SaveOrderRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:  "unknown token",
			token: "nope",
			req:   dto.SaveOrderRequest{},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Order{}, nil)
			},
			wantErr: true,
		},
		{
			name:  "table lookup failure",
			token: "token-1",
			req:   dto.SaveOrderRequest{},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tableModel.Table{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			savedFields = nil
			tt.setupMock()

			_, err := svc.Save(context.Background(), tt.token, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)

				if tt.checkFields != nil {
					tt.checkFields(t)
				}
			}
		})
	}
}
