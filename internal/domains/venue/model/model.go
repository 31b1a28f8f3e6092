package model

import (
	"carre/shared/model"
)

const (
	TableName  = "venues"
	EntityName = "venue"

	FieldID        = "id"
	FieldEventID   = "event_id"
	FieldName      = "name"
	FieldCapacity  = "capacity"
	FieldSortOrder = "sort_order"
)

type Venue struct {
	ID        string `db:"id"`
	EventID   string `db:"event_id"`
	Name      string `db:"name"`
	Capacity  int    `db:"capacity"`
	SortOrder int    `db:"sort_order"`
	model.Metadata
}
