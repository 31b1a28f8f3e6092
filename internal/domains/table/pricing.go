// Package table holds the pure pricing and lifecycle rules for VIP tables.
// Both the live console totals and the invoice lines go through these
// functions so the two surfaces can never disagree.
package table

import (
	"github.com/shopspring/decimal"
)

// Total is the full amount owed for a table:
// sold price + additional persons at their unit price + on-site revenue.
func Total(soldPrice float64, additionalPersons int, additionalPersonPrice, onSiteAdditionalRevenue float64) float64 {
	sold := decimal.NewFromFloat(soldPrice)
	extras := decimal.NewFromInt(int64(additionalPersons)).Mul(decimal.NewFromFloat(additionalPersonPrice))
	onSite := decimal.NewFromFloat(onSiteAdditionalRevenue)

	total, _ := sold.Add(extras).Add(onSite).Round(2).Float64()

	return total
}

// Commission is the concierge cut over the sold price.
func Commission(soldPrice, commissionPercent float64) float64 {
	commission, _ := decimal.NewFromFloat(soldPrice).
		Mul(decimal.NewFromFloat(commissionPercent)).
		Div(decimal.NewFromInt(100)).
		Round(2).
		Float64()

	return commission
}

// Net is the total minus the concierge commission.
func Net(total, commission float64) float64 {
	net, _ := decimal.NewFromFloat(total).Sub(decimal.NewFromFloat(commission)).Round(2).Float64()

	return net
}

// BeverageBudget is the share of the table price earmarked for drink
// consumption. The percentage is a deployment setting, not a constant.
func BeverageBudget(price float64, budgetPercent int) float64 {
	budget, _ := decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(int64(budgetPercent))).
		Div(decimal.NewFromInt(100)).
		Round(2).
		Float64()

	return budget
}
