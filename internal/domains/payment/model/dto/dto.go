package dto

import (
	"time"

	"carre/internal/domains/payment/model"
	"carre/shared/constant"
	gDto "carre/shared/dto"
	gModel "carre/shared/model"
	"carre/shared/timezone"

	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	Amount      float64 `json:"amount"       validate:"required"`
	Method      string  `json:"method"       validate:"required,oneof=virement carte twint especes autre"`
	Reference   string  `json:"reference"    validate:"omitempty,max=100"`
	Notes       string  `json:"notes"        validate:"omitempty"`
	PaymentDate string  `json:"payment_date" validate:"omitempty"`
}

func (c *CreatePaymentRequest) ToModel(tableID, user string) (model.Payment, error) {
	paymentDate := timezone.Now()

	if c.PaymentDate != "" {
		parsed, err := time.Parse(constant.DayFormat, c.PaymentDate)
		if err != nil {
			return model.Payment{}, err
		}

		paymentDate = parsed
	}

	return model.Payment{
		ID:          uuid.NewString(),
		TableID:     tableID,
		Amount:      c.Amount,
		Method:      c.Method,
		Reference:   c.Reference,
		Notes:       c.Notes,
		PaymentDate: paymentDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type PaymentResponse struct {
	ID          string  `json:"id"`
	TableID     string  `json:"table_id"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Reference   string  `json:"reference"`
	Notes       string  `json:"notes"`
	PaymentDate string  `json:"payment_date"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.TableID = model.TableID
	r.Amount = model.Amount
	r.Method = model.Method
	r.Reference = model.Reference
	r.Notes = model.Notes
	r.PaymentDate = model.PaymentDate.Format(constant.DayFormat)
	r.Metadata.FromModel(model.Metadata)
}

// GetPaymentsResponse lists a table's payments with the derived balance.
type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPaid float64           `json:"total_paid"`
	Total     float64           `json:"total"`
	Remaining float64           `json:"remaining"`
}
