package table_test

import (
	"testing"

	"carre/internal/domains/table"

	"github.com/stretchr/testify/assert"
)

func TestTotal(t *testing.T) {
	tests := []struct {
		name                    string
		soldPrice               float64
		additionalPersons       int
		additionalPersonPrice   float64
		onSiteAdditionalRevenue float64
		expected                float64
	}{
		{
			name:                    "sold price plus extras plus on-site revenue",
			soldPrice:               5000,
			additionalPersons:       2,
			additionalPersonPrice:   300,
			onSiteAdditionalRevenue: 400,
			expected:                6300,
		},
		{
			name:      "bare sold price",
			soldPrice: 1500,
			expected:  1500,
		},
		{
			name:                  "extras only",
			additionalPersons:     3,
			additionalPersonPrice: 150,
			expected:              450,
		},
		{
			name:     "everything zero",
			expected: 0,
		},
		{
			name:                  "fractional prices round to two decimals",
			soldPrice:             999.99,
			additionalPersons:     1,
			additionalPersonPrice: 0.015,
			expected:              1000.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Total(tt.soldPrice, tt.additionalPersons, tt.additionalPersonPrice, tt.onSiteAdditionalRevenue)
			assert.InDelta(t, tt.expected, got, 0.001)
		})
	}
}

func TestCommission(t *testing.T) {
	tests := []struct {
		name              string
		soldPrice         float64
		commissionPercent float64
		expected          float64
	}{
		{
			name:              "ten percent of five thousand",
			soldPrice:         5000,
			commissionPercent: 10,
			expected:          500,
		},
		{
			name:              "zero percent",
			soldPrice:         5000,
			commissionPercent: 0,
			expected:          0,
		},
		{
			name:              "fractional percent rounds to cents",
			soldPrice:         3333,
			commissionPercent: 7.5,
			expected:          249.98,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Commission(tt.soldPrice, tt.commissionPercent)
			assert.InDelta(t, tt.expected, got, 0.001)
		})
	}
}

func TestNet(t *testing.T) {
	total := table.Total(5000, 2, 300, 400)
	commission := table.Commission(5000, 10)

	net := table.Net(total, commission)

	assert.InDelta(t, 5800, net, 0.001)

	// Net plus commission must always reconstruct the total.
	assert.InDelta(t, total, net+commission, 0.001)
}

func TestBeverageBudget(t *testing.T) {
	tests := []struct {
		name          string
		price         float64
		budgetPercent int
		expected      float64
	}{
		{
			name:          "full price at one hundred percent",
			price:         2000,
			budgetPercent: 100,
			expected:      2000,
		},
		{
			name:          "half budget",
			price:         2000,
			budgetPercent: 50,
			expected:      1000,
		},
		{
			name:          "zero percent means no budget",
			price:         2000,
			budgetPercent: 0,
			expected:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.BeverageBudget(tt.price, tt.budgetPercent)
			assert.InDelta(t, tt.expected, got, 0.001)
		})
	}
}
