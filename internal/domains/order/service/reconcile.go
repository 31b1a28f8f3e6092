package service

import (
	"fmt"

	"carre/internal/domains/order/model/dto"
	"carre/shared/failure"

	"github.com/shopspring/decimal"
)

// reconciledLine is one priced cart line. Prices always come from the menu
// record, never from the client payload.
type reconciledLine struct {
	MenuItemID string
	Quantity   int
	UnitPrice  float64
	TotalPrice float64
}

type reconcileSummary struct {
	Total    float64
	Extra    float64
	Exceeded bool
}

// reconcile prices the submitted cart against the server-side menu and
// splits the total into in-budget and overage portions. A line whose menu
// item does not resolve rejects the whole submission. An empty cart is
// valid and clears the order. Equality with the budget is not an overage.
func reconcile(lines []dto.SaveOrderItem, prices map[string]float64, budget float64) ([]reconciledLine, reconcileSummary, error) {
	reconciled := make([]reconciledLine, 0, len(lines))
	total := decimal.Zero

	for _, line := range lines {
		price, ok := prices[line.MenuItemID]
		if !ok {
			return nil, reconcileSummary{}, failure.BadRequestFromString(fmt.Sprintf("unknown menu item: %s", line.MenuItemID)) // nolint:wrapcheck
		}

		unitPrice := decimal.NewFromFloat(price)
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2)
		total = total.Add(lineTotal)

		lineTotalFloat, _ := lineTotal.Float64()

		reconciled = append(reconciled, reconciledLine{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			UnitPrice:  price,
			TotalPrice: lineTotalFloat,
		})
	}

	budgetDec := decimal.NewFromFloat(budget)
	extra := total.Sub(budgetDec)

	if extra.IsNegative() {
		extra = decimal.Zero
	}

	totalFloat, _ := total.Round(2).Float64()
	extraFloat, _ := extra.Round(2).Float64()

	return reconciled, reconcileSummary{
		Total:    totalFloat,
		Extra:    extraFloat,
		Exceeded: total.GreaterThan(budgetDec),
	}, nil
}
