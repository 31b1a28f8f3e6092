package model

import (
	"time"

	"carre/shared/model"
)

const (
	TableName  = "orders"
	EntityName = "order"

	FieldID             = "id"
	FieldTableID        = "table_id"
	FieldEventID        = "event_id"
	FieldAccessToken    = "access_token"
	FieldStatus         = "status"
	FieldClientName     = "client_name"
	FieldClientEmail    = "client_email"
	FieldClientNotes    = "client_notes"
	FieldTotalAmount    = "total_amount"
	FieldBudgetAmount   = "budget_amount"
	FieldExtraAmount    = "extra_amount"
	FieldBudgetExceeded = "budget_exceeded"
	FieldConfirmedAt    = "confirmed_at"
)

// Order is the one conceptual pre-order per table. The access token is the
// sole credential for the public endpoints.
type Order struct {
	ID             string     `db:"id"`
	TableID        string     `db:"table_id"`
	EventID        string     `db:"event_id"`
	AccessToken    string     `db:"access_token"`
	Status         string     `db:"status"`
	ClientName     *string    `db:"client_name"`
	ClientEmail    *string    `db:"client_email"`
	ClientNotes    *string    `db:"client_notes"`
	TotalAmount    float64    `db:"total_amount"`
	BudgetAmount   float64    `db:"budget_amount"`
	ExtraAmount    float64    `db:"extra_amount"`
	BudgetExceeded bool       `db:"budget_exceeded"`
	ConfirmedAt    *time.Time `db:"confirmed_at"`
	model.Metadata
}
