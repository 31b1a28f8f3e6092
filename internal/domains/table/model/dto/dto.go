package dto

import (
	"carre/internal/domains/table/model"
	"carre/shared"
	"carre/shared/constant"
	gDto "carre/shared/dto"
)

type GenerateTablesRequest struct {
	EventID string `json:"event_id" validate:"required"`
	Day     string `json:"day"      validate:"required"`
}

type UpdateTableRequest struct {
	Status                  string   `json:"status"                     validate:"omitempty,oneof=libre reserve confirme paye"`
	SoldPrice               *float64 `db:"sold_price"                 json:"sold_price"                 validate:"omitempty,gte=0"`
	ClientName              string   `db:"client_name"                json:"client_name"                validate:"omitempty,max=150"`
	ClientEmail             string   `db:"client_email"               json:"client_email"               validate:"omitempty,email,max=150"`
	ClientPhone             string   `db:"client_phone"               json:"client_phone"               validate:"omitempty,max=40"`
	ClientAddress           string   `db:"client_address"             json:"client_address"             validate:"omitempty,max=300"`
	ConciergeName           string   `db:"concierge_name"             json:"concierge_name"             validate:"omitempty,max=150"`
	ConciergeCommission     *float64 `db:"concierge_commission"       json:"concierge_commission"       validate:"omitempty,gte=0,lte=100"`
	AdditionalPersons       *int     `db:"additional_persons"         json:"additional_persons"         validate:"omitempty,gte=0"`
	AdditionalPersonPrice   *float64 `db:"additional_person_price"    json:"additional_person_price"    validate:"omitempty,gte=0"`
	OnSiteAdditionalPersons *int     `db:"on_site_additional_persons" json:"on_site_additional_persons" validate:"omitempty,gte=0"`
	OnSiteAdditionalRevenue *float64 `db:"on_site_additional_revenue" json:"on_site_additional_revenue" validate:"omitempty,gte=0"`
	StaffNotes              string   `db:"staff_notes"                json:"staff_notes"                validate:"omitempty"`
	DrinkPreorder           string   `db:"drink_preorder"             json:"drink_preorder"             validate:"omitempty"`
	Capacity                *int     `db:"capacity"                   json:"capacity"                   validate:"omitempty,gte=0"`
}

type TableResponse struct {
	ID                      string   `json:"id"`
	EventID                 string   `json:"event_id"`
	VenueID                 string   `json:"venue_id"`
	Day                     string   `json:"day"`
	Zone                    string   `json:"zone"`
	TableNumber             string   `json:"table_number"`
	Status                  string   `json:"status"`
	StandardPrice           float64  `json:"standard_price"`
	SoldPrice               *float64 `json:"sold_price"`
	ClientName              *string  `json:"client_name"`
	ClientEmail             *string  `json:"client_email"`
	ClientPhone             *string  `json:"client_phone"`
	ClientAddress           *string  `json:"client_address"`
	ConciergeName           *string  `json:"concierge_name"`
	ConciergeCommission     *float64 `json:"concierge_commission"`
	AdditionalPersons       int      `json:"additional_persons"`
	AdditionalPersonPrice   float64  `json:"additional_person_price"`
	OnSiteAdditionalPersons int      `json:"on_site_additional_persons"`
	OnSiteAdditionalRevenue float64  `json:"on_site_additional_revenue"`
	StaffNotes              *string  `json:"staff_notes"`
	DrinkPreorder           *string  `json:"drink_preorder"`
	Capacity                int      `json:"capacity"`
	Total                   float64  `json:"total"`
	Commission              float64  `json:"commission"`
	Net                     float64  `json:"net"`
	gDto.Metadata
}

func (r *TableResponse) FromModel(mod model.Table, total, commission, net float64) {
	r.ID = mod.ID
	r.EventID = mod.EventID
	r.VenueID = mod.VenueID
	r.Day = mod.Day.Format(constant.DayFormat)
	r.Zone = mod.Zone
	r.TableNumber = mod.TableNumber
	r.Status = mod.Status
	r.StandardPrice = mod.StandardPrice
	r.SoldPrice = mod.SoldPrice
	r.ClientName = mod.ClientName
	r.ClientEmail = mod.ClientEmail
	r.ClientPhone = mod.ClientPhone
	r.ClientAddress = mod.ClientAddress
	r.ConciergeName = mod.ConciergeName
	r.ConciergeCommission = mod.ConciergeCommission
	r.AdditionalPersons = mod.AdditionalPersons
	r.AdditionalPersonPrice = mod.AdditionalPersonPrice
	r.OnSiteAdditionalPersons = mod.OnSiteAdditionalPersons
	r.OnSiteAdditionalRevenue = mod.OnSiteAdditionalRevenue
	r.StaffNotes = mod.StaffNotes
	r.DrinkPreorder = mod.DrinkPreorder
	r.Capacity = mod.Capacity
	r.Total = total
	r.Commission = commission
	r.Net = net
	r.Metadata.FromModel(mod.Metadata)
}

type GetTablesResponse struct {
	Tables    []TableResponse `json:"tables"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetTablesResponse) CalculatePages(totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
}

type GenerateTablesResponse struct {
	Generated int `json:"generated"`
}

// StatsResponse is the per-(venue, day) dashboard summary.
type StatsResponse struct {
	CountByStatus map[string]int `json:"count_by_status"`
	TotalTables   int            `json:"total_tables"`
	Revenue       float64        `json:"revenue"`
	Commissions   float64        `json:"commissions"`
	Net           float64        `json:"net"`
}
