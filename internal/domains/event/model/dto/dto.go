package dto

import (
	"time"

	"carre/internal/domains/event/model"
	"carre/shared"
	"carre/shared/constant"
	gDto "carre/shared/dto"
	gModel "carre/shared/model"
	"carre/shared/timezone"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Name      string `json:"name"       validate:"required,max=150"`
	Slug      string `json:"slug"       validate:"required,max=150,lowercase"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   validate:"required"`
	Location  string `json:"location"   validate:"omitempty,max=200"`
	Currency  string `json:"currency"   validate:"required,oneof=CHF EUR USD"`
	Status    string `json:"status"     validate:"omitempty,oneof=draft active archived"`
}

func (c *CreateEventRequest) ToModel(user string) (model.Event, error) {
	startDate, err := time.Parse(constant.DayFormat, c.StartDate)
	if err != nil {
		return model.Event{}, err
	}

	endDate, err := time.Parse(constant.DayFormat, c.EndDate)
	if err != nil {
		return model.Event{}, err
	}

	status := constant.EventStatusDraft
	if c.Status != "" {
		status = c.Status
	}

	return model.Event{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Slug:      c.Slug,
		StartDate: startDate,
		EndDate:   endDate,
		Location:  c.Location,
		Currency:  c.Currency,
		Status:    status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateEventRequest struct {
	Name     string `db:"name"     json:"name"     validate:"omitempty,max=150"`
	Slug     string `db:"slug"     json:"slug"     validate:"omitempty,max=150,lowercase"`
	Location string `db:"location" json:"location" validate:"omitempty,max=200"`
	Currency string `db:"currency" json:"currency" validate:"omitempty,oneof=CHF EUR USD"`
	Status   string `db:"status"   json:"status"   validate:"omitempty,oneof=draft active archived"`
}

type EventResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Location  string `json:"location"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	LogoURL   string `json:"logo_url"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(model model.Event) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.StartDate = model.StartDate.Format(constant.DayFormat)
	r.EndDate = model.EndDate.Format(constant.DayFormat)
	r.Location = model.Location
	r.Currency = model.Currency
	r.Status = model.Status
	r.LogoURL = model.LogoURL
	r.Metadata.FromModel(model.Metadata)
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEventsResponse) FromModels(models []model.Event, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod)
	}
}

type UploadLogoResponse struct {
	LogoURL string `json:"logo_url"`
}
