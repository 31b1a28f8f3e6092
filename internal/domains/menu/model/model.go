package model

import (
	"carre/shared/model"
)

const (
	TableName  = "menu_items"
	EntityName = "menu_item"

	FieldID          = "id"
	FieldEventID     = "event_id"
	FieldName        = "name"
	FieldCategory    = "category"
	FieldPrice       = "price"
	FieldFormat      = "format"
	FieldVolume      = "volume"
	FieldDescription = "description"
	FieldAvailable   = "available"
	FieldSortOrder   = "sort_order"
)

type MenuItem struct {
	ID          string  `db:"id"`
	EventID     string  `db:"event_id"`
	Name        string  `db:"name"`
	Category    string  `db:"category"`
	Price       float64 `db:"price"`
	Format      string  `db:"format"`
	Volume      string  `db:"volume"`
	Description string  `db:"description"`
	Available   bool    `db:"available"`
	SortOrder   int     `db:"sort_order"`
	model.Metadata
}
