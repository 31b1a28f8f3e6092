package service

import (
	"testing"

	"carre/internal/domains/order/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	prices := map[string]float64{
		"champagne-1": 450,
		"vodka-1":     280,
		"soft-1":      12,
	}

	tests := []struct {
		name         string
		lines        []dto.SaveOrderItem
		budget       float64
		wantTotal    float64
		wantExtra    float64
		wantExceeded bool
	}{
		{
			name: "within budget",
			lines: []dto.SaveOrderItem{
				{MenuItemID: "champagne-1", Quantity: 2},
				{MenuItemID: "soft-1", Quantity: 4},
			},
			budget:       2000,
			wantTotal:    948,
			wantExtra:    0,
			wantExceeded: false,
		},
		{
			name: "over budget splits into extra",
			lines: []dto.SaveOrderItem{
				{MenuItemID: "champagne-1", Quantity: 5},
			},
			budget:       2000,
			wantTotal:    2250,
			wantExtra:    250,
			wantExceeded: true,
		},
		{
			name: "exactly on budget is not exceeded",
			lines: []dto.SaveOrderItem{
				{MenuItemID: "vodka-1", Quantity: 5},
			},
			budget:       1400,
			wantTotal:    1400,
			wantExtra:    0,
			wantExceeded: false,
		},
		{
			name:         "empty cart clears the order",
			lines:        nil,
			budget:       2000,
			wantTotal:    0,
			wantExtra:    0,
			wantExceeded: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, summary, err := reconcile(tt.lines, prices, tt.budget)

			assert.NoError(t, err)
			assert.Len(t, lines, len(tt.lines))
			assert.InDelta(t, tt.wantTotal, summary.Total, 0.001)
			assert.InDelta(t, tt.wantExtra, summary.Extra, 0.001)
			assert.Equal(t, tt.wantExceeded, summary.Exceeded)
		})
	}
}

func TestReconcile_UnknownMenuItem(t *testing.T) {
	prices := map[string]float64{"champagne-1": 450}

	lines, _, err := reconcile([]dto.SaveOrderItem{
		{MenuItemID: "champagne-1", Quantity: 1},
		{MenuItemID: "does-not-exist", Quantity: 1},
	}, prices, 2000)

	assert.Error(t, err)
	assert.Nil(t, lines)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestReconcile_UsesServerPrices(t *testing.T) {
	prices := map[string]float64{"champagne-1": 450}

	lines, summary, err := reconcile([]dto.SaveOrderItem{
		{MenuItemID: "champagne-1", Quantity: 3},
	}, prices, 5000)

	assert.NoError(t, err)
	assert.Equal(t, 450.0, lines[0].UnitPrice)
	assert.Equal(t, 1350.0, lines[0].TotalPrice)
	assert.InDelta(t, 1350, summary.Total, 0.001)
}

func TestReconcile_Idempotent(t *testing.T) {
	prices := map[string]float64{"champagne-1": 450, "soft-1": 12}
	cart := []dto.SaveOrderItem{
		{MenuItemID: "champagne-1", Quantity: 2},
		{MenuItemID: "soft-1", Quantity: 1},
	}

	// Resubmitting the same cart must land on the same amounts.
	_, first, err := reconcile(cart, prices, 900)
	assert.NoError(t, err)

	_, second, err := reconcile(cart, prices, 900)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}
