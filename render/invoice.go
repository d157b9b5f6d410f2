package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const disclaimer = "Disclaimer: This is not a legally valid tax invoice. " +
	"This bill is generated only for personal or reference purposes."

type column struct {
	title string
	width float64
	align string
}

var invoiceColumns = []column{
	{"#", 8, "C"},
	{"Product / HSN", 60, "L"},
	{"Qty", 18, "R"},
	{"Price", 28, "R"},
	{"Taxable", 28, "R"},
	{"GST %", 16, "R"},
	{"Total", 28, "R"},
}

const (
	pageMargin = 12.0
	lineHeight = 5.0
)

// TaxInvoice writes an A4 tax invoice PDF for d to w.
func TaxInvoice(w io.Writer, d Document, opt Options) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, 15, pageMargin)
	pdf.SetAutoPageBreak(false, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if opt.Watermark != "" {
		pdf.SetHeaderFunc(func() { drawWatermark(pdf, tr(opt.Watermark)) })
	}
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(pageMargin, 14)
	pdf.CellFormat(186, 10, "Tax Invoice", "", 1, "C", false, 0, "")

	top := 32.0
	fromY := partyBlock(pdf, pageMargin+2, top, "From:", businessLines(d), tr)
	toY := partyBlock(pdf, 120, top, "Bill To:", customerLines(d), tr)

	pdf.SetXY(pageMargin, max(fromY, toY)+8)
	itemTable(pdf, d, tr)
	summary(pdf, d)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render tax invoice: %w", err)
	}
	return nil
}

func businessLines(d Document) []string {
	var lines []string
	b := d.Business
	if b.BusinessName != "" {
		lines = append(lines, b.BusinessName)
	}
	if b.OwnerName != "" {
		lines = append(lines, b.OwnerName)
	}
	if b.Address != "" {
		lines = append(lines, b.Address)
	}
	if b.GSTIN != "" {
		lines = append(lines, "GSTIN: "+b.GSTIN)
	}
	return lines
}

func customerLines(d Document) []string {
	var lines []string
	c := d.Customer
	if c.CustomerName != "" {
		lines = append(lines, c.CustomerName)
	}
	if c.CustomerGSTIN != "" {
		lines = append(lines, "GSTIN: "+c.CustomerGSTIN)
	}
	if !c.BillDate.IsZero() {
		lines = append(lines, "Date: "+c.BillDate.Format("January 2, 2006"))
	}
	return lines
}

// partyBlock prints a labelled address block and returns the y below it.
func partyBlock(pdf *gofpdf.Fpdf, x, y float64, label string, lines []string, tr func(string) string) float64 {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(x, y)
	pdf.CellFormat(80, lineHeight, label, "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, l := range lines {
		pdf.SetX(x)
		pdf.MultiCell(80, lineHeight, tr(l), "", "L", false)
	}
	return pdf.GetY()
}

func drawWatermark(pdf *gofpdf.Fpdf, text string) {
	const (
		hPadding = 120
		vPadding = 80
	)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(240, 240, 240)
	pageW, pageH := pdf.GetPageSize()
	textW := pdf.GetStringWidth(text)
	_, fontH := pdf.GetFontSize()

	for y := -fontH; y < pageH+fontH; y += vPadding {
		for x := -textW; x < pageW+textW; x += hPadding {
			pdf.TransformBegin()
			pdf.TransformRotate(-45, x, y)
			pdf.Text(x-textW/2, y, text)
			pdf.TransformEnd()
		}
	}
	pdf.SetTextColor(0, 0, 0)
}

func tableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(34, 107, 63)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetX(pageMargin)
	for _, c := range invoiceColumns {
		pdf.CellFormat(c.width, 8, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
}

func productText(name, hsn, details string) string {
	var sb strings.Builder
	sb.WriteString(name)
	if hsn != "" {
		sb.WriteString("\nHSN: " + hsn)
	}
	if details != "" {
		sb.WriteString("\n(" + details + ")")
	}
	return sb.String()
}

func itemTable(pdf *gofpdf.Fpdf, d Document, tr func(string) string) {
	_, pageH := pdf.GetPageSize()
	bottom := pageH - 20
	tableHeader(pdf)

	for i, it := range d.Items {
		product := tr(productText(it.ProductName, it.HSNCode, it.Details))
		productW := invoiceColumns[1].width
		lines := 0
		for _, part := range strings.Split(product, "\n") {
			lines += len(pdf.SplitLines([]byte(part), productW-2))
		}
		h := float64(lines)*lineHeight + 2

		if pdf.GetY()+h > bottom {
			pdf.AddPage()
			pdf.SetY(15)
			tableHeader(pdf)
		}

		cells := []string{
			fmt.Sprintf("%d", i+1),
			"",
			formatQty(it.Quantity),
			FormatINR(it.UnitPrice.Float()),
			FormatINR(it.TaxableValue),
			fmt.Sprintf("%d%%", it.Rate),
			FormatINR(it.Total),
		}
		x, y := pageMargin, pdf.GetY()
		for ci, c := range invoiceColumns {
			if ci == 1 {
				pdf.Rect(x, y, c.width, h, "D")
				pdf.SetXY(x, y+1)
				pdf.MultiCell(c.width, lineHeight, product, "", "L", false)
			} else {
				pdf.SetXY(x, y)
				pdf.CellFormat(c.width, h, cells[ci], "1", 0, c.align, false, 0, "")
			}
			x += c.width
		}
		pdf.SetXY(pageMargin, y+h)
	}
}

func summary(pdf *gofpdf.Fpdf, d Document) {
	_, pageH := pdf.GetPageSize()
	if pdf.GetY()+60 > pageH-15 {
		pdf.AddPage()
		pdf.SetY(15)
	}
	pdf.Ln(8)

	row := func(label string, v float64) {
		pdf.SetX(100)
		pdf.CellFormat(50, 7, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(48, 7, FormatINR(v), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 12)
	row("Subtotal:", d.Totals.Subtotal)
	row("CGST:", d.Totals.CGST())
	row("SGST:", d.Totals.SGST())
	row("Total GST:", d.Totals.TotalGST)
	pdf.SetFont("Helvetica", "B", 14)
	row("Grand Total:", d.Totals.GrandTotal)

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(pageMargin)
	pdf.CellFormat(186, 6, "Thank you for your business!", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetX(pageMargin + 3)
	pdf.MultiCell(180, 4, disclaimer, "", "C", false)
}
