package dto

import (
	"time"

	"carre/internal/domains/event/model"
	"carre/shared/constant"
	gDto "carre/shared/dto"
	gModel "carre/shared/model"
	"carre/shared/timezone"

	"github.com/google/uuid"
)

type CreateEventDayRequest struct {
	Date       string `json:"date"        validate:"required"`
	GroupLabel string `json:"group_label" validate:"omitempty,max=100"`
	IsActive   *bool  `json:"is_active"   validate:"omitempty"`
}

func (c *CreateEventDayRequest) ToModel(eventID, user string) (model.EventDay, error) {
	date, err := time.Parse(constant.DayFormat, c.Date)
	if err != nil {
		return model.EventDay{}, err
	}

	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	return model.EventDay{
		ID:         uuid.NewString(),
		EventID:    eventID,
		Date:       date,
		GroupLabel: c.GroupLabel,
		IsActive:   isActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateEventDayRequest struct {
	GroupLabel string `db:"group_label" json:"group_label" validate:"omitempty,max=100"`
	IsActive   *bool  `db:"is_active"   json:"is_active"   validate:"omitempty"`
}

type EventDayResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"event_id"`
	Date       string `json:"date"`
	GroupLabel string `json:"group_label"`
	IsActive   bool   `json:"is_active"`
	gDto.Metadata
}

func (r *EventDayResponse) FromModel(model model.EventDay) {
	r.ID = model.ID
	r.EventID = model.EventID
	r.Date = model.Date.Format(constant.DayFormat)
	r.GroupLabel = model.GroupLabel
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetEventDaysResponse struct {
	Days []EventDayResponse `json:"days"`
}

func (r *GetEventDaysResponse) FromModels(models []model.EventDay) {
	r.Days = make([]EventDayResponse, len(models))
	for i, mod := range models {
		r.Days[i].FromModel(mod)
	}
}
