package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Percent applies pct percent to amount with exact decimal arithmetic.
func Percent(amount float64, pct float64) float64 {
	result := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(pct)).
		Div(decimal.NewFromInt(100))

	value, _ := result.Float64()

	return value
}

// Format renders an amount the Swiss way: two decimals, apostrophe
// thousands separator ("12'345.50").
func Format(amount float64) string {
	fixed := decimal.NewFromFloat(amount).StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	parts := strings.SplitN(fixed, ".", 2)
	integer := parts[0]

	var grouped strings.Builder

	offset := len(integer) % 3
	if offset > 0 {
		grouped.WriteString(integer[:offset])
	}

	for i := offset; i < len(integer); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteString("'")
		}

		grouped.WriteString(integer[i : i+3])
	}

	result := grouped.String() + "." + parts[1]
	if negative {
		result = "-" + result
	}

	return result
}

// FormatWithCurrency appends the currency code to a formatted amount.
func FormatWithCurrency(amount float64, currency string) string {
	return Format(amount) + " " + currency
}
