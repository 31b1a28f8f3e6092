package model

import (
	"time"

	"carre/shared/model"
)

const (
	DayTableName  = "event_days"
	DayEntityName = "event_day"

	FieldDayID         = "id"
	FieldDayEventID    = "event_id"
	FieldDayDate       = "date"
	FieldDayGroupLabel = "group_label"
	FieldDayIsActive   = "is_active"
)

// EventDay is one calendar date an event runs on. Tables are scoped to a
// specific (venue, day) pair.
type EventDay struct {
	ID         string    `db:"id"`
	EventID    string    `db:"event_id"`
	Date       time.Time `db:"date"`
	GroupLabel string    `db:"group_label"`
	IsActive   bool      `db:"is_active"`
	model.Metadata
}
