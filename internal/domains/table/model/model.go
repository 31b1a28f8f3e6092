package model

import (
	"time"

	"carre/shared/model"
)

const (
	TableName  = "tables"
	EntityName = "table"

	FieldID                      = "id"
	FieldEventID                 = "event_id"
	FieldVenueID                 = "venue_id"
	FieldDay                     = "day"
	FieldZone                    = "zone"
	FieldTableNumber             = "table_number"
	FieldStatus                  = "status"
	FieldStandardPrice           = "standard_price"
	FieldSoldPrice               = "sold_price"
	FieldClientName              = "client_name"
	FieldClientEmail             = "client_email"
	FieldClientPhone             = "client_phone"
	FieldClientAddress           = "client_address"
	FieldConciergeName           = "concierge_name"
	FieldConciergeCommission     = "concierge_commission"
	FieldAdditionalPersons       = "additional_persons"
	FieldAdditionalPersonPrice   = "additional_person_price"
	FieldOnSiteAdditionalPersons = "on_site_additional_persons"
	FieldOnSiteAdditionalRevenue = "on_site_additional_revenue"
	FieldStaffNotes              = "staff_notes"
	FieldDrinkPreorder           = "drink_preorder"
	FieldCapacity                = "capacity"
)

// Table is one sellable VIP table, scoped to a (venue, day) pair and
// materialized from the venue's layout templates.
type Table struct {
	ID                      string    `db:"id"`
	EventID                 string    `db:"event_id"`
	VenueID                 string    `db:"venue_id"`
	Day                     time.Time `db:"day"`
	Zone                    string    `db:"zone"`
	TableNumber             string    `db:"table_number"`
	Status                  string    `db:"status"`
	StandardPrice           float64   `db:"standard_price"`
	SoldPrice               *float64  `db:"sold_price"`
	ClientName              *string   `db:"client_name"`
	ClientEmail             *string   `db:"client_email"`
	ClientPhone             *string   `db:"client_phone"`
	ClientAddress           *string   `db:"client_address"`
	ConciergeName           *string   `db:"concierge_name"`
	ConciergeCommission     *float64  `db:"concierge_commission"`
	AdditionalPersons       int       `db:"additional_persons"`
	AdditionalPersonPrice   float64   `db:"additional_person_price"`
	OnSiteAdditionalPersons int       `db:"on_site_additional_persons"`
	OnSiteAdditionalRevenue float64   `db:"on_site_additional_revenue"`
	StaffNotes              *string   `db:"staff_notes"`
	DrinkPreorder           *string   `db:"drink_preorder"`
	Capacity                int       `db:"capacity"`
	model.Metadata
}

// EffectivePrice is the sold price when set, otherwise the standard price.
func (t *Table) EffectivePrice() float64 {
	if t.SoldPrice != nil {
		return *t.SoldPrice
	}

	return t.StandardPrice
}
