package dto

import (
	"carre/internal/domains/menu/importer"
	"carre/internal/domains/menu/model"
	"carre/shared"
	gDto "carre/shared/dto"
	gModel "carre/shared/model"
	"carre/shared/timezone"

	"github.com/google/uuid"
)

type CreateMenuItemRequest struct {
	EventID     string  `json:"event_id"    validate:"required"`
	Name        string  `json:"name"        validate:"required,max=200"`
	Category    string  `json:"category"    validate:"required,oneof=champagne aperitif biere energy spiritueux vin soft"`
	Price       float64 `json:"price"       validate:"required,gte=0"`
	Format      string  `json:"format"      validate:"omitempty,max=50"`
	Volume      string  `json:"volume"      validate:"omitempty,max=20"`
	Description string  `json:"description" validate:"omitempty"`
	Available   *bool   `json:"available"   validate:"omitempty"`
	SortOrder   int     `json:"sort_order"  validate:"omitempty,gte=0"`
}

func (c *CreateMenuItemRequest) ToModel(user string) model.MenuItem {
	available := true
	if c.Available != nil {
		available = *c.Available
	}

	format := c.Format
	if format == "" {
		format = "Bouteille"
	}

	return model.MenuItem{
		ID:          uuid.NewString(),
		EventID:     c.EventID,
		Name:        c.Name,
		Category:    c.Category,
		Price:       c.Price,
		Format:      format,
		Volume:      c.Volume,
		Description: c.Description,
		Available:   available,
		SortOrder:   c.SortOrder,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateMenuItemRequest struct {
	Name        string   `db:"name"        json:"name"        validate:"omitempty,max=200"`
	Category    string   `db:"category"    json:"category"    validate:"omitempty,oneof=champagne aperitif biere energy spiritueux vin soft"`
	Price       *float64 `db:"price"       json:"price"       validate:"omitempty,gte=0"`
	Format      string   `db:"format"      json:"format"      validate:"omitempty,max=50"`
	Volume      string   `db:"volume"      json:"volume"      validate:"omitempty,max=20"`
	Description string   `db:"description" json:"description" validate:"omitempty"`
	Available   *bool    `db:"available"   json:"available"   validate:"omitempty"`
	SortOrder   *int     `db:"sort_order"  json:"sort_order"  validate:"omitempty,gte=0"`
}

type MenuItemResponse struct {
	ID          string  `json:"id"`
	EventID     string  `json:"event_id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Format      string  `json:"format"`
	Volume      string  `json:"volume"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
	SortOrder   int     `json:"sort_order"`
	gDto.Metadata
}

func (r *MenuItemResponse) FromModel(model model.MenuItem) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.Name = model.Name
	r.Category = model.Category
	r.Price = model.Price
	r.Format = model.Format
	r.Volume = model.Volume
	r.Description = model.Description
	r.Available = model.Available
	r.SortOrder = model.SortOrder
	r.Metadata.FromModel(model.Metadata)
}

type GetMenuItemsResponse struct {
	Items     []MenuItemResponse `json:"items"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetMenuItemsResponse) FromModels(models []model.MenuItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]MenuItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}

type ImportResponse struct {
	Drafts []importer.Draft `json:"drafts"`
}

type ConfirmImportItem struct {
	Name        string  `json:"name"        validate:"required,max=200"`
	Category    string  `json:"category"    validate:"required,oneof=champagne aperitif biere energy spiritueux vin soft"`
	Price       float64 `json:"price"       validate:"required,gte=0"`
	Format      string  `json:"format"      validate:"omitempty,max=50"`
	Volume      string  `json:"volume"      validate:"omitempty,max=20"`
	Description string  `json:"description" validate:"omitempty"`
	Available   *bool   `json:"available"   validate:"omitempty"`
}

type ConfirmImportRequest struct {
	EventID string              `json:"event_id" validate:"required"`
	Items   []ConfirmImportItem `json:"items"    validate:"required,min=1,dive"`
}

func (c *ConfirmImportRequest) ToModels(user string) []model.MenuItem {
	items := make([]model.MenuItem, len(c.Items))

	for i, item := range c.Items {
		available := true
		if item.Available != nil {
			available = *item.Available
		}

		format := item.Format
		if format == "" {
			format = "Bouteille"
		}

		items[i] = model.MenuItem{
			ID:          uuid.NewString(),
			EventID:     c.EventID,
			Name:        item.Name,
			Category:    item.Category,
			Price:       item.Price,
			Format:      format,
			Volume:      item.Volume,
			Description: item.Description,
			Available:   available,
			SortOrder:   i,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return items
}

type ConfirmImportResponse struct {
	Inserted int `json:"inserted"`
}
