package dto

type GeneratePDFRequest struct {
	TableIDs     []string `json:"table_ids"    validate:"required,min=1,dive,required"`
	Consolidated bool     `json:"consolidated" validate:"omitempty"`
}

type GeneratePDFResponse struct {
	Filename string `json:"filename"`
	PDF      string `json:"pdf"` // base64-encoded document
}

type SendEmailRequest struct {
	To           string   `json:"to"           validate:"required,email"`
	Subject      string   `json:"subject"      validate:"required,max=200"`
	TableIDs     []string `json:"table_ids"    validate:"required,min=1,dive,required"`
	Consolidated bool     `json:"consolidated" validate:"omitempty"`
}

type SendEmailResponse struct {
	Filename string `json:"filename"`
	SentTo   string `json:"sent_to"`
}
