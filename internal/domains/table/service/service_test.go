package service

import (
	"testing"
	"time"

	"carre/internal/domains/table/model"
	venueModel "carre/internal/domains/venue/model"
	"carre/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestMaterialize(t *testing.T) {
	day := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	layouts := []venueModel.TableLayout{
		{Zone: constant.ZoneLeft, Prefix: "L", TableCount: 4, StandardPrice: 2000, Capacity: 8},
		{Zone: constant.ZoneRight, Prefix: "R", TableCount: 4, StandardPrice: 2500, Capacity: 8},
		{Zone: "back_1", TableCount: 6, StandardPrice: 1500, Capacity: 6},
	}

	tables := materialize(layouts, "event-1", "venue-1", day, "admin@test.ch")

	assert.Len(t, tables, 14)

	// Every number must be unique across zones.
	seen := map[string]bool{}
	for _, tab := range tables {
		assert.False(t, seen[tab.TableNumber], "duplicate number %s", tab.TableNumber)
		seen[tab.TableNumber] = true

		assert.Equal(t, "event-1", tab.EventID)
		assert.Equal(t, "venue-1", tab.VenueID)
		assert.Equal(t, day, tab.Day)
		assert.Equal(t, constant.TableStatusFree, tab.Status)
		assert.NotEmpty(t, tab.ID)
	}

	assert.Equal(t, "L1", tables[0].TableNumber)
	assert.Equal(t, "L4", tables[3].TableNumber)
	assert.Equal(t, "R1", tables[4].TableNumber)

	// An empty prefix falls back to the zone name.
	assert.Equal(t, "back_1-1", tables[8].TableNumber)
	assert.Equal(t, "back_1-6", tables[13].TableNumber)
	assert.Equal(t, 1500.0, tables[8].StandardPrice)
}

func TestMaterialize_NoLayouts(t *testing.T) {
	tables := materialize(nil, "event-1", "venue-1", time.Now(), "admin@test.ch")

	assert.Empty(t, tables)
}

func TestSummarize(t *testing.T) {
	sold := 5000.0
	commission := 10.0

	tables := []model.Table{
		{Status: constant.TableStatusFree},
		{Status: constant.TableStatusFree},
		{Status: constant.TableStatusReserved, SoldPrice: &sold},
		{
			Status:                  constant.TableStatusConfirmed,
			SoldPrice:               &sold,
			ConciergeCommission:     &commission,
			AdditionalPersons:       2,
			AdditionalPersonPrice:   300,
			OnSiteAdditionalRevenue: 400,
		},
		{Status: constant.TableStatusPaid, SoldPrice: &sold},
	}

	res := summarize(tables)

	assert.Equal(t, 5, res.TotalTables)
	assert.Equal(t, 2, res.CountByStatus[constant.TableStatusFree])
	assert.Equal(t, 1, res.CountByStatus[constant.TableStatusReserved])
	assert.Equal(t, 1, res.CountByStatus[constant.TableStatusConfirmed])
	assert.Equal(t, 1, res.CountByStatus[constant.TableStatusPaid])

	// Reserved tables never count towards revenue, only confirmed and paid.
	assert.InDelta(t, 6300+5000, res.Revenue, 0.001)
	assert.InDelta(t, 500, res.Commissions, 0.001)
	assert.InDelta(t, 5800+5000, res.Net, 0.001)
}

func TestSummarize_Empty(t *testing.T) {
	res := summarize(nil)

	assert.Equal(t, 0, res.TotalTables)
	assert.Zero(t, res.Revenue)

	for _, status := range constant.TableStatuses {
		assert.Contains(t, res.CountByStatus, status)
	}
}

func TestBreakdown_WithoutSoldPrice(t *testing.T) {
	total, commission, net := breakdown(model.Table{
		Status:        constant.TableStatusFree,
		StandardPrice: 2000,
	})

	// The standard price is only a listing price; nothing is owed until
	// the table is actually sold.
	assert.Zero(t, total)
	assert.Zero(t, commission)
	assert.Zero(t, net)
}
