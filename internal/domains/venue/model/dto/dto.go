package dto

import (
	"time"

	"carre/internal/domains/venue/model"
	"carre/shared"
	"carre/shared/constant"
	gDto "carre/shared/dto"
	gModel "carre/shared/model"
	"carre/shared/timezone"

	"github.com/google/uuid"
)

type CreateVenueRequest struct {
	EventID   string `json:"event_id"   validate:"required"`
	Name      string `json:"name"       validate:"required,max=150"`
	Capacity  int    `json:"capacity"   validate:"omitempty,gte=0"`
	SortOrder int    `json:"sort_order" validate:"omitempty,gte=0"`
}

func (c *CreateVenueRequest) ToModel(user string) model.Venue {
	return model.Venue{
		ID:        uuid.NewString(),
		EventID:   c.EventID,
		Name:      c.Name,
		Capacity:  c.Capacity,
		SortOrder: c.SortOrder,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateVenueRequest struct {
	Name      string `db:"name"       json:"name"       validate:"omitempty,max=150"`
	Capacity  int    `db:"capacity"   json:"capacity"   validate:"omitempty,gte=0"`
	SortOrder int    `db:"sort_order" json:"sort_order" validate:"omitempty,gte=0"`
}

type VenueResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	SortOrder int    `json:"sort_order"`
	gDto.Metadata
}

func (r *VenueResponse) FromModel(model model.Venue) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.SortOrder = model.SortOrder
	r.Metadata.FromModel(model.Metadata)
}

type GetVenuesResponse struct {
	Venues    []VenueResponse `json:"venues"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetVenuesResponse) FromModels(models []model.Venue, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Venues = make([]VenueResponse, len(models))
	for i, mod := range models {
		r.Venues[i].FromModel(mod)
	}
}

type LayoutRequest struct {
	Zone          string  `json:"zone"           validate:"required,max=100"`
	Date          string  `json:"date"           validate:"omitempty"`
	Prefix        string  `json:"prefix"         validate:"omitempty,max=20"`
	TableCount    int     `json:"table_count"    validate:"required,gt=0"`
	DisplayRows   int     `json:"display_rows"   validate:"omitempty,gt=0"`
	Capacity      int     `json:"capacity"       validate:"omitempty,gte=0"`
	StandardPrice float64 `json:"standard_price" validate:"omitempty,gte=0"`
	SortOrder     int     `json:"sort_order"     validate:"omitempty,gte=0"`
}

// SaveLayoutsRequest replaces the venue's full layout set in one shot.
type SaveLayoutsRequest struct {
	Layouts []LayoutRequest `json:"layouts" validate:"required,dive"`
}

func (c *SaveLayoutsRequest) ToModels(venueID, user string) ([]model.TableLayout, error) {
	layouts := make([]model.TableLayout, len(c.Layouts))

	for i, layout := range c.Layouts {
		var date *time.Time

		if layout.Date != "" {
			parsed, err := time.Parse(constant.DayFormat, layout.Date)
			if err != nil {
				return nil, err
			}

			date = &parsed
		}

		layouts[i] = model.TableLayout{
			ID:            uuid.NewString(),
			VenueID:       venueID,
			Zone:          layout.Zone,
			Date:          date,
			Prefix:        layout.Prefix,
			TableCount:    layout.TableCount,
			DisplayRows:   layout.DisplayRows,
			Capacity:      layout.Capacity,
			StandardPrice: layout.StandardPrice,
			SortOrder:     layout.SortOrder,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return layouts, nil
}

type LayoutResponse struct {
	ID            string  `json:"id"`
	VenueID       string  `json:"venue_id"`
	Zone          string  `json:"zone"`
	Date          string  `json:"date,omitempty"`
	Prefix        string  `json:"prefix"`
	TableCount    int     `json:"table_count"`
	DisplayRows   int     `json:"display_rows"`
	Capacity      int     `json:"capacity"`
	StandardPrice float64 `json:"standard_price"`
	SortOrder     int     `json:"sort_order"`
	gDto.Metadata
}

func (r *LayoutResponse) FromModel(model model.TableLayout) {
	r.ID = model.ID
	r.VenueID = model.VenueID
	r.Zone = model.Zone
	r.Prefix = model.Prefix
	r.TableCount = model.TableCount
	r.DisplayRows = model.DisplayRows
	r.Capacity = model.Capacity
	r.StandardPrice = model.StandardPrice
	r.SortOrder = model.SortOrder

	if model.Date != nil {
		r.Date = model.Date.Format(constant.DayFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetLayoutsResponse struct {
	Layouts []LayoutResponse `json:"layouts"`
}

func (r *GetLayoutsResponse) FromModels(models []model.TableLayout) {
	r.Layouts = make([]LayoutResponse, len(models))
	for i, mod := range models {
		r.Layouts[i].FromModel(mod)
	}
}
