package render

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const (
	receiptWidth  = 80.0
	receiptHeight = 297.0
	receiptMargin = 5.0
	receiptLine   = 5.0
)

// ThermalReceipt writes an 80 mm wide receipt PDF for d to w.
func ThermalReceipt(w io.Writer, d Document, opt Options) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: receiptWidth, Ht: receiptHeight},
	})
	pdf.SetMargins(receiptMargin, 10, receiptMargin)
	pdf.SetAutoPageBreak(true, receiptMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	inner := receiptWidth - 2*receiptMargin

	pdf.AddPage()

	if name := d.Business.BusinessName; name != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(inner, receiptLine+1, tr(name), "", "C", false)
	}
	pdf.SetFont("Helvetica", "", 8)
	if addr := d.Business.Address; addr != "" {
		pdf.MultiCell(inner, receiptLine-1, tr(addr), "", "C", false)
	}
	if gstin := d.Business.GSTIN; gstin != "" {
		pdf.CellFormat(inner, receiptLine, "GSTIN: "+gstin, "", 1, "C", false, 0, "")
	}
	separator(pdf)

	if !d.Customer.BillDate.IsZero() {
		pdf.CellFormat(inner, receiptLine, "Date: "+d.Customer.BillDate.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	}
	if c := d.Customer.CustomerName; c != "" {
		pdf.CellFormat(inner, receiptLine, tr("To: "+c), "", 1, "L", false, 0, "")
	}
	if g := d.Customer.CustomerGSTIN; g != "" {
		pdf.CellFormat(inner, receiptLine, "GSTIN: "+g, "", 1, "L", false, 0, "")
	}
	separator(pdf)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(inner/2, receiptLine, "Description", "", 0, "L", false, 0, "")
	pdf.CellFormat(inner/2, receiptLine, "Amt", "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)

	for _, it := range d.Items {
		text := it.ProductName
		if it.Details != "" {
			text += " (" + it.Details + ")"
		}
		y := pdf.GetY()
		pdf.SetXY(receiptWidth-receiptMargin-20, y)
		pdf.CellFormat(20, receiptLine-1, FormatINR(it.Total), "", 0, "R", false, 0, "")
		pdf.SetXY(receiptMargin, y)
		pdf.MultiCell(inner-20, receiptLine-1, tr(text), "", "L", false)
		qty := fmt.Sprintf("  %s x %s @%d%%", formatQty(it.Quantity), FormatINR(it.UnitPrice.Float()), it.Rate)
		pdf.CellFormat(inner, receiptLine, qty, "", 1, "L", false, 0, "")
	}
	separator(pdf)

	line := func(label string, v float64) {
		pdf.CellFormat(inner/2, receiptLine, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(inner/2, receiptLine, FormatINR(v), "", 1, "R", false, 0, "")
	}
	line("Subtotal:", d.Totals.Subtotal)
	line("CGST:", d.Totals.CGST())
	line("SGST:", d.Totals.SGST())
	separator(pdf)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(inner/2, receiptLine+2, "Total:", "", 0, "L", false, 0, "")
	pdf.CellFormat(inner/2, receiptLine+2, FormatINR(d.Totals.GrandTotal), "", 1, "R", false, 0, "")

	pdf.Ln(receiptLine)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(inner, receiptLine, "Thank you for your business!", "", 1, "C", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render thermal receipt: %w", err)
	}
	return nil
}

func separator(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1
	pdf.SetDashPattern([]float64{1, 1}, 0)
	pdf.Line(receiptMargin, y, receiptWidth-receiptMargin, y)
	pdf.SetDashPattern([]float64{}, 0)
	pdf.SetY(y + 2)
}
