package model

import (
	"time"

	"carre/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID          = "id"
	FieldTableID     = "table_id"
	FieldAmount      = "amount"
	FieldMethod      = "method"
	FieldReference   = "reference"
	FieldNotes       = "notes"
	FieldPaymentDate = "payment_date"
)

// Payment is an append-only record against a table. Corrections are new
// entries, there is no void type.
type Payment struct {
	ID          string    `db:"id"`
	TableID     string    `db:"table_id"`
	Amount      float64   `db:"amount"`
	Method      string    `db:"method"`
	Reference   string    `db:"reference"`
	Notes       string    `db:"notes"`
	PaymentDate time.Time `db:"payment_date"`
	model.Metadata
}
