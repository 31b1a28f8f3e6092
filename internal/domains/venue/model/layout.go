package model

import (
	"time"

	"carre/shared/model"
)

const (
	LayoutTableName  = "table_layouts"
	LayoutEntityName = "table_layout"

	FieldLayoutID            = "id"
	FieldLayoutVenueID       = "venue_id"
	FieldLayoutZone          = "zone"
	FieldLayoutDate          = "date"
	FieldLayoutPrefix        = "prefix"
	FieldLayoutTableCount    = "table_count"
	FieldLayoutDisplayRows   = "display_rows"
	FieldLayoutCapacity      = "capacity"
	FieldLayoutStandardPrice = "standard_price"
	FieldLayoutSortOrder     = "sort_order"
)

// TableLayout is a per-zone template. Table rows are materialized from it
// by the generate-for-day step, never derived live.
type TableLayout struct {
	ID            string     `db:"id"`
	VenueID       string     `db:"venue_id"`
	Zone          string     `db:"zone"`
	Date          *time.Time `db:"date"`
	Prefix        string     `db:"prefix"`
	TableCount    int        `db:"table_count"`
	DisplayRows   int        `db:"display_rows"`
	Capacity      int        `db:"capacity"`
	StandardPrice float64    `db:"standard_price"`
	SortOrder     int        `db:"sort_order"`
	model.Metadata
}
