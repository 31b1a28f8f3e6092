package model

import (
	"carre/shared/model"
)

const (
	ItemTableName  = "order_items"
	ItemEntityName = "order_item"

	FieldItemID         = "id"
	FieldItemOrderID    = "order_id"
	FieldItemMenuItemID = "menu_item_id"
	FieldItemQuantity   = "quantity"
	FieldItemUnitPrice  = "unit_price"
	FieldItemTotalPrice = "total_price"
)

// OrderItem is one reconciled line. The set is fully replaced on every
// save; unit_price is a snapshot of the menu price at save time.
type OrderItem struct {
	ID         string  `db:"id"`
	OrderID    string  `db:"order_id"`
	MenuItemID string  `db:"menu_item_id"`
	Quantity   int     `db:"quantity"`
	UnitPrice  float64 `db:"unit_price"`
	TotalPrice float64 `db:"total_price"`
	model.Metadata
}
