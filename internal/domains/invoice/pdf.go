package invoice

import (
	"bytes"
	"fmt"

	"carre/shared/constant"
	"carre/shared/money"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin  = 15.0
	lineHeight  = 7.0
	amountWidth = 40.0
)

// Render lays the document out as an A4 PDF.
func Render(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	translate := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pageMargin

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentWidth, 10, translate(doc.SenderName), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentWidth, lineHeight, translate(doc.EventName), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentWidth/2, lineHeight, translate("Facture "+doc.Number), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentWidth/2, lineHeight, doc.Date.Format(constant.DisplayDay), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// Client block
	if doc.ClientName != constant.Empty {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentWidth, lineHeight, translate(doc.ClientName), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)

		if doc.ClientAddress != constant.Empty {
			pdf.MultiCell(contentWidth, 5, translate(doc.ClientAddress), "", "L", false)
		}

		if doc.ClientEmail != constant.Empty {
			pdf.CellFormat(contentWidth, lineHeight, doc.ClientEmail, "", 1, "L", false, 0, "")
		}

		pdf.Ln(4)
	}

	// Line items
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(contentWidth-amountWidth, lineHeight, translate("Désignation"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountWidth, lineHeight, translate(fmt.Sprintf("Montant (%s)", doc.Currency)), "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)

	for _, line := range doc.Lines {
		label := line.Label
		if line.Sub {
			label = "    " + label
		}

		pdf.CellFormat(contentWidth-amountWidth, lineHeight, translate(label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(amountWidth, lineHeight, money.Format(line.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentWidth-amountWidth, lineHeight+1, "Total", "1", 0, "L", true, 0, "")
	pdf.CellFormat(amountWidth, lineHeight+1, money.FormatWithCurrency(doc.Total, doc.Currency), "1", 1, "R", true, 0, "")
	pdf.Ln(6)

	// Payments received
	if len(doc.Payments) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentWidth, lineHeight, translate("Paiements reçus"), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)

		for _, payment := range doc.Payments {
			label := fmt.Sprintf("%s — %s", payment.Date.Format(constant.DisplayDay), payment.Method)
			pdf.CellFormat(contentWidth-amountWidth, lineHeight, translate(label), "", 0, "L", false, 0, "")
			pdf.CellFormat(amountWidth, lineHeight, money.Format(payment.Amount), "", 1, "R", false, 0, "")
		}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentWidth-amountWidth, lineHeight, translate("Solde restant"), "T", 0, "L", false, 0, "")
		pdf.CellFormat(amountWidth, lineHeight, money.FormatWithCurrency(doc.Remaining, doc.Currency), "T", 1, "R", false, 0, "")
		pdf.Ln(6)
	}

	// Footer
	if doc.FooterContact != constant.Empty {
		pdf.SetY(-30)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(contentWidth, 5, translate(doc.FooterContact), "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}

	return buf.Bytes(), nil
}
