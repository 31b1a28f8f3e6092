// Package invoice builds one printable document model consumed by both
// delivery paths: direct download and email attachment.
package invoice

import (
	"fmt"
	"strings"
	"time"

	eventModel "carre/internal/domains/event/model"
	paymentModel "carre/internal/domains/payment/model"
	"carre/internal/domains/table"
	tableModel "carre/internal/domains/table/model"
	"carre/shared/constant"

	"github.com/shopspring/decimal"
)

// Line is one billed row. Sub lines sit under the preceding table line
// (additional persons, on-site revenue).
type Line struct {
	Label  string
	Amount float64
	Sub    bool
}

// PaymentLine is one received payment shown in the settlement section.
type PaymentLine struct {
	Date   time.Time
	Method string
	Amount float64
}

// Document is the full invoice content, transport-agnostic.
type Document struct {
	Number        string
	Date          time.Time
	EventName     string
	Currency      string
	SenderName    string
	FooterContact string
	ClientName    string
	ClientEmail   string
	ClientAddress string
	Lines         []Line
	Total         float64
	Payments      []PaymentLine
	TotalPaid     float64
	Remaining     float64
}

// Filename derives the attachment/download name from the invoice number.
func (d *Document) Filename() string {
	return d.Number + ".pdf"
}

// SingleNumber is the display label for a one-table invoice. It is derived
// from the table id, not an accounting sequence.
func SingleNumber(tableID string) string {
	id := strings.ToUpper(strings.ReplaceAll(tableID, "-", ""))
	if len(id) > 8 {
		id = id[:8]
	}

	return "INV-" + id
}

// ConsolidatedNumber is the display label for a grouped invoice, derived
// from the client email fragment and the issue date.
func ConsolidatedNumber(clientEmail string, date time.Time) string {
	fragment := strings.ToUpper(strings.SplitN(clientEmail, "@", 2)[0])
	if len(fragment) > 6 {
		fragment = fragment[:6]
	}

	if fragment == constant.Empty {
		fragment = "CLIENT"
	}

	return fmt.Sprintf("CONS-%s-%s", fragment, date.Format(constant.CompactDay))
}

// GroupKey is the heuristic client identity used by consolidated mode:
// email, else phone, else the table's own id.
func GroupKey(tab tableModel.Table) string {
	if tab.ClientEmail != nil && *tab.ClientEmail != constant.Empty {
		return strings.ToLower(*tab.ClientEmail)
	}

	if tab.ClientPhone != nil && *tab.ClientPhone != constant.Empty {
		return *tab.ClientPhone
	}

	return tab.ID
}

// Build assembles the document for a set of tables. A single table yields
// an INV number; several tables yield a consolidated CONS number keyed on
// the first table's client email.
func Build(event eventModel.Event, tables []tableModel.Table, payments []paymentModel.Payment, senderName, footerContact string, now time.Time) Document {
	doc := Document{
		Date:          now,
		EventName:     event.Name,
		Currency:      event.Currency,
		SenderName:    senderName,
		FooterContact: footerContact,
	}

	if len(tables) == 0 {
		doc.Number = ConsolidatedNumber(constant.Empty, now)

		return doc
	}

	first := tables[0]

	if first.ClientName != nil {
		doc.ClientName = *first.ClientName
	}

	if first.ClientEmail != nil {
		doc.ClientEmail = *first.ClientEmail
	}

	if first.ClientAddress != nil {
		doc.ClientAddress = *first.ClientAddress
	}

	if len(tables) == 1 {
		doc.Number = SingleNumber(first.ID)
	} else {
		doc.Number = ConsolidatedNumber(doc.ClientEmail, now)
	}

	total := decimal.Zero

	for _, tab := range tables {
		soldPrice := 0.0
		if tab.SoldPrice != nil {
			soldPrice = *tab.SoldPrice
		}

		label := fmt.Sprintf("Table %s — %s", tab.TableNumber, tab.Day.Format(constant.DisplayDay))
		doc.Lines = append(doc.Lines, Line{Label: label, Amount: soldPrice})

		if tab.AdditionalPersons > 0 && tab.AdditionalPersonPrice > 0 {
			extra := table.Total(0, tab.AdditionalPersons, tab.AdditionalPersonPrice, 0)
			doc.Lines = append(doc.Lines, Line{
				Label:  fmt.Sprintf("Personnes supplémentaires (%d)", tab.AdditionalPersons),
				Amount: extra,
				Sub:    true,
			})
		}

		if tab.OnSiteAdditionalRevenue > 0 {
			doc.Lines = append(doc.Lines, Line{
				Label:  "Supplément sur place",
				Amount: tab.OnSiteAdditionalRevenue,
				Sub:    true,
			})
		}

		tableTotal := table.Total(soldPrice, tab.AdditionalPersons, tab.AdditionalPersonPrice, tab.OnSiteAdditionalRevenue)
		total = total.Add(decimal.NewFromFloat(tableTotal))
	}

	doc.Total, _ = total.Round(2).Float64()

	totalPaid := decimal.Zero

	for _, payment := range payments {
		doc.Payments = append(doc.Payments, PaymentLine{
			Date:   payment.PaymentDate,
			Method: payment.Method,
			Amount: payment.Amount,
		})

		totalPaid = totalPaid.Add(decimal.NewFromFloat(payment.Amount))
	}

	doc.TotalPaid, _ = totalPaid.Round(2).Float64()
	doc.Remaining, _ = total.Sub(totalPaid).Round(2).Float64()

	return doc
}
