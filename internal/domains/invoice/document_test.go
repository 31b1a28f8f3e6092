package invoice_test

import (
	"testing"
	"time"

	"carre/internal/domains/invoice"

	eventModel "carre/internal/domains/event/model"
	paymentModel "carre/internal/domains/payment/model"
	tableModel "carre/internal/domains/table/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestSingleNumber(t *testing.T) {
	assert.Equal(t, "INV-ABC12345", invoice.SingleNumber("abc12345-6789-0000-0000-000000000000"))
	assert.Equal(t, "INV-AB", invoice.SingleNumber("ab"))
}

func TestConsolidatedNumber(t *testing.T) {
	date := time.Date(2026, 7, 31, 22, 0, 0, 0, time.UTC)

	assert.Equal(t, "CONS-MARTIN-20260731", invoice.ConsolidatedNumber("martin.dupont@example.ch", date))
	assert.Equal(t, "CONS-JO-20260731", invoice.ConsolidatedNumber("jo@example.ch", date))
	assert.Equal(t, "CONS-CLIENT-20260731", invoice.ConsolidatedNumber("", date))
}

func TestGroupKey(t *testing.T) {
	withEmail := tableModel.Table{ID: "t1", ClientEmail: stringPtr("Martin@Example.CH"), ClientPhone: stringPtr("+41790000000")}
	withPhone := tableModel.Table{ID: "t2", ClientPhone: stringPtr("+41790000000")}
	bare := tableModel.Table{ID: "t3"}

	assert.Equal(t, "martin@example.ch", invoice.GroupKey(withEmail))
	assert.Equal(t, "+41790000000", invoice.GroupKey(withPhone))
	assert.Equal(t, "t3", invoice.GroupKey(bare))
}

func TestBuild_SingleTable(t *testing.T) {
	now := time.Date(2026, 7, 31, 22, 0, 0, 0, time.UTC)
	day := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	event := eventModel.Event{Name: "Summer Opening", Currency: "CHF"}

	tab := tableModel.Table{
		ID:                      "abc12345-0000-0000-0000-000000000000",
		TableNumber:             "L1",
		Day:                     day,
		SoldPrice:               floatPtr(5000),
		ClientName:              stringPtr("Martin Dupont"),
		ClientEmail:             stringPtr("martin@example.ch"),
		AdditionalPersons:       2,
		AdditionalPersonPrice:   300,
		OnSiteAdditionalRevenue: 400,
	}

	payments := []paymentModel.Payment{
		{Amount: 2000, Method: "virement", PaymentDate: now},
		{Amount: 1000, Method: "twint", PaymentDate: now},
	}

	doc := invoice.Build(event, []tableModel.Table{tab}, payments, "Carré Events", "contact@carre.ch", now)

	assert.Equal(t, "INV-ABC12345", doc.Number)
	assert.Equal(t, "INV-ABC12345.pdf", doc.Filename())
	assert.Equal(t, "Summer Opening", doc.EventName)
	assert.Equal(t, "Martin Dupont", doc.ClientName)

	// One main line plus the two supplement sub-lines.
	assert.Len(t, doc.Lines, 3)
	assert.Equal(t, 5000.0, doc.Lines[0].Amount)
	assert.False(t, doc.Lines[0].Sub)
	assert.True(t, doc.Lines[1].Sub)
	assert.InDelta(t, 600, doc.Lines[1].Amount, 0.001)
	assert.InDelta(t, 400, doc.Lines[2].Amount, 0.001)

	assert.InDelta(t, 6300, doc.Total, 0.001)
	assert.InDelta(t, 3000, doc.TotalPaid, 0.001)
	assert.InDelta(t, 3300, doc.Remaining, 0.001)
	assert.Len(t, doc.Payments, 2)
}

func TestBuild_Consolidated(t *testing.T) {
	now := time.Date(2026, 7, 31, 22, 0, 0, 0, time.UTC)
	day := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	event := eventModel.Event{Name: "Summer Opening", Currency: "CHF"}

	tables := []tableModel.Table{
		{ID: "t1", TableNumber: "L1", Day: day, SoldPrice: floatPtr(3000), ClientEmail: stringPtr("martin@example.ch")},
		{ID: "t2", TableNumber: "R2", Day: day, SoldPrice: floatPtr(2500), ClientEmail: stringPtr("martin@example.ch")},
	}

	doc := invoice.Build(event, tables, nil, "Carré Events", "contact@carre.ch", now)

	assert.Equal(t, "CONS-MARTIN-20260731", doc.Number)
	assert.Len(t, doc.Lines, 2)
	assert.InDelta(t, 5500, doc.Total, 0.001)
	assert.InDelta(t, 5500, doc.Remaining, 0.001)
	assert.Empty(t, doc.Payments)
}

func TestRender(t *testing.T) {
	now := time.Date(2026, 7, 31, 22, 0, 0, 0, time.UTC)

	doc := invoice.Build(eventModel.Event{Name: "Summer Opening", Currency: "CHF"}, []tableModel.Table{
		{
			ID:          "abc12345-0000-0000-0000-000000000000",
			TableNumber: "L1",
			Day:         now,
			SoldPrice:   floatPtr(5000),
			ClientName:  stringPtr("Martin Dupont"),
		},
	}, []paymentModel.Payment{{Amount: 2000, Method: "virement", PaymentDate: now}}, "Carré Events", "contact@carre.ch", now)

	data, err := invoice.Render(doc)

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestBuild_UnsoldTableUsesZero(t *testing.T) {
	now := time.Now()

	doc := invoice.Build(eventModel.Event{Currency: "CHF"}, []tableModel.Table{
		{ID: "t1", TableNumber: "L1", Day: now},
	}, nil, "Carré Events", "", now)

	assert.InDelta(t, 0, doc.Total, 0.001)
	assert.Len(t, doc.Lines, 1)
}
