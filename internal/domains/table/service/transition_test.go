package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"carre/config"
	"carre/infras/otel/mocks"
	tableMocks "carre/internal/domains/table/mocks"
	"carre/internal/domains/table/model"
	"carre/internal/domains/table/model/dto"
	"carre/internal/domains/table/service"
	venueMocks "carre/internal/domains/venue/mocks"
	cacheMocks "carre/shared/cache/mocks"
	"carre/shared/constant"
)

func newTableService(t *testing.T) (service.Table, *tableMocks.MockTable) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := tableMocks.NewMockTable(ctrl)
	mockLayoutRepo := venueMocks.NewMockTableLayout(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	// Write paths invalidate caches from a goroutine.
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, mockLayoutRepo, cfg, mockCache, mockOtel), mockRepo
}

func TestTableService_Update_AutoReserve(t *testing.T) {
	svc, mockRepo := newTableService(t)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Table{ID: "table-1", Status: constant.TableStatusFree}, nil)

	var savedFields map[string]any

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			savedFields = fields

			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	err := svc.Update(ctx, dto.UpdateTableRequest{ClientName: "Martin Dupont"}, "table-1")

	assert.NoError(t, err)
	assert.Equal(t, constant.TableStatusReserved, savedFields[model.FieldStatus])
}

func TestTableService_Update_InvalidTransition(t *testing.T) {
	svc, mockRepo := newTableService(t)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Table{ID: "table-1", Status: constant.TableStatusFree}, nil)

	err := svc.Update(context.Background(), dto.UpdateTableRequest{Status: constant.TableStatusPaid}, "table-1")

	assert.Error(t, err)
}

func TestTableService_Confirm(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{name: "reserved table confirms", status: constant.TableStatusReserved, wantErr: false},
		{name: "free table is rejected", status: constant.TableStatusFree, wantErr: true},
		{name: "paid table is rejected", status: constant.TableStatusPaid, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newTableService(t)

			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(model.Table{ID: "table-1", Status: tt.status}, nil)

			if !tt.wantErr {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			}

			err := svc.Confirm(context.Background(), "table-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTableService_MarkPaid(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{name: "confirmed table is paid", status: constant.TableStatusConfirmed, wantErr: false},
		{name: "reserved table is rejected", status: constant.TableStatusReserved, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newTableService(t)

			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(model.Table{ID: "table-1", Status: tt.status}, nil)

			if !tt.wantErr {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			}

			err := svc.MarkPaid(context.Background(), "table-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTableService_Release(t *testing.T) {
	svc, mockRepo := newTableService(t)

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	var savedFields map[string]any

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			savedFields = fields

			return nil
		})

	err := svc.Release(context.Background(), "table-1")
	assert.NoError(t, err)

	assert.Equal(t, constant.TableStatusFree, savedFields[model.FieldStatus])

	for _, field := range []string{
		model.FieldSoldPrice,
		model.FieldClientName,
		model.FieldClientEmail,
		model.FieldClientPhone,
		model.FieldClientAddress,
		model.FieldConciergeName,
		model.FieldConciergeCommission,
		model.FieldStaffNotes,
		model.FieldDrinkPreorder,
	} {
		value, present := savedFields[field]
		assert.True(t, present, field)
		assert.Nil(t, value, field)
	}

	for _, field := range []string{
		model.FieldAdditionalPersons,
		model.FieldAdditionalPersonPrice,
		model.FieldOnSiteAdditionalPersons,
		model.FieldOnSiteAdditionalRevenue,
	} {
		assert.Zero(t, savedFields[field], field)
	}
}

func TestTableService_Release_NotFound(t *testing.T) {
	svc, mockRepo := newTableService(t)

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	err := svc.Release(context.Background(), "missing")

	assert.Error(t, err)
}
