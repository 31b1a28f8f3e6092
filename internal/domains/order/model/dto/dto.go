package dto

import (
	eventDto "carre/internal/domains/event/model/dto"
	menuDto "carre/internal/domains/menu/model/dto"
	"carre/internal/domains/order/model"
	tableDto "carre/internal/domains/table/model/dto"
	"carre/shared/constant"
	gDto "carre/shared/dto"
)

type GenerateLinkRequest struct {
	TableID string `json:"table_id" validate:"required"`
}

type GenerateLinkResponse struct {
	OrderID     string `json:"order_id"`
	AccessToken string `json:"access_token"`
	URL         string `json:"url"`
}

type SaveOrderItem struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity"     validate:"required,gt=0"`
}

type SaveOrderRequest struct {
	Items       []SaveOrderItem `json:"items"        validate:"omitempty,dive"`
	ClientName  string          `json:"client_name"  validate:"omitempty,max=150"`
	ClientEmail string          `json:"client_email" validate:"omitempty,email,max=150"`
	Notes       string          `json:"notes"        validate:"omitempty"`
}

type OrderItemResponse struct {
	ID         string  `json:"id"`
	MenuItemID string  `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

func (r *OrderItemResponse) FromModel(model model.OrderItem) {
	r.ID = model.ID
	r.MenuItemID = model.MenuItemID
	r.Quantity = model.Quantity
	r.UnitPrice = model.UnitPrice
	r.TotalPrice = model.TotalPrice
}

type OrderResponse struct {
	ID             string              `json:"id"`
	TableID        string              `json:"table_id"`
	EventID        string              `json:"event_id"`
	Status         string              `json:"status"`
	ClientName     *string             `json:"client_name"`
	ClientEmail    *string             `json:"client_email"`
	ClientNotes    *string             `json:"client_notes"`
	TotalAmount    float64             `json:"total_amount"`
	BudgetAmount   float64             `json:"budget_amount"`
	ExtraAmount    float64             `json:"extra_amount"`
	BudgetExceeded bool                `json:"budget_exceeded"`
	ConfirmedAt    string              `json:"confirmed_at,omitempty"`
	Items          []OrderItemResponse `json:"items"`
	gDto.Metadata
}

func (r *OrderResponse) FromModel(mod model.Order, items []model.OrderItem) {
	r.ID = mod.ID
	r.TableID = mod.TableID
	r.EventID = mod.EventID
	r.Status = mod.Status
	r.ClientName = mod.ClientName
	r.ClientEmail = mod.ClientEmail
	r.ClientNotes = mod.ClientNotes
	r.TotalAmount = mod.TotalAmount
	r.BudgetAmount = mod.BudgetAmount
	r.ExtraAmount = mod.ExtraAmount
	r.BudgetExceeded = mod.BudgetExceeded

	if mod.ConfirmedAt != nil {
		r.ConfirmedAt = mod.ConfirmedAt.Format(constant.DateFormat)
	}

	r.Items = make([]OrderItemResponse, len(items))
	for i, item := range items {
		r.Items[i].FromModel(item)
	}

	r.Metadata.FromModel(mod.Metadata)
}

// OrderSnapshotResponse is everything the public pre-order page needs in
// one round trip.
type OrderSnapshotResponse struct {
	Order OrderResponse               `json:"order"`
	Table tableDto.TableResponse      `json:"table"`
	Event eventDto.EventResponse      `json:"event"`
	Menu  []menuDto.MenuItemResponse  `json:"menu"`
}

type SaveOrderResponse struct {
	Order OrderResponse `json:"order"`
}
