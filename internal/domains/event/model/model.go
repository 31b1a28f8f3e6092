package model

import (
	"time"

	"carre/shared/model"
)

const (
	TableName  = "events"
	EntityName = "event"

	FieldID        = "id"
	FieldName      = "name"
	FieldSlug      = "slug"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldLocation  = "location"
	FieldCurrency  = "currency"
	FieldStatus    = "status"
	FieldLogoURL   = "logo_url"
)

type Event struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Location  string    `db:"location"`
	Currency  string    `db:"currency"`
	Status    string    `db:"status"`
	LogoURL   string    `db:"logo_url"`
	model.Metadata
}
