package money_test

import (
	"testing"

	"carre/shared/money"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "zero", amount: 0, want: "0.00"},
		{name: "small", amount: 8, want: "8.00"},
		{name: "hundreds", amount: 950.5, want: "950.50"},
		{name: "thousands", amount: 1700, want: "1'700.00"},
		{name: "exact grouping", amount: 123456.78, want: "123'456.78"},
		{name: "millions", amount: 1234567.89, want: "1'234'567.89"},
		{name: "negative", amount: -5000, want: "-5'000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(tt.amount))
		})
	}
}

func TestFormatWithCurrency(t *testing.T) {
	assert.Equal(t, "6'300.00 CHF", money.FormatWithCurrency(6300, "CHF"))
}

func TestPercent(t *testing.T) {
	assert.InDelta(t, 500.0, money.Percent(5000, 10), 0.0001)
	assert.InDelta(t, 5000.0, money.Percent(5000, 100), 0.0001)
	assert.InDelta(t, 0.0, money.Percent(5000, 0), 0.0001)
}
