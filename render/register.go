package render

import (
	"fmt"
	"io"

	"github.com/satheeshds/billing/models"
	"github.com/xuri/excelize/v2"
)

const registerSheet = "Invoices"

var registerHeaders = []string{
	"Bill Date", "Customer", "Customer GSTIN", "Subtotal", "CGST", "SGST", "Total GST", "Grand Total", "Invoice ID",
}

// InvoiceRegister writes an XLSX workbook listing invoices, one row each, in
// the order given.
func InvoiceRegister(w io.Writer, invoices []models.Invoice) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", registerSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range registerHeaders {
		f.SetCellValue(registerSheet, fmt.Sprintf("%c1", 'A'+i), h)
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	f.SetCellStyle(registerSheet, "A1", "I1", header)

	for idx, inv := range invoices {
		row := idx + 2
		f.SetCellValue(registerSheet, fmt.Sprintf("A%d", row), inv.BillDate.Format("2006-01-02"))
		f.SetCellValue(registerSheet, fmt.Sprintf("B%d", row), inv.CustomerName)
		f.SetCellValue(registerSheet, fmt.Sprintf("C%d", row), inv.CustomerGSTIN)
		f.SetCellValue(registerSheet, fmt.Sprintf("D%d", row), inv.Subtotal)
		f.SetCellValue(registerSheet, fmt.Sprintf("E%d", row), inv.Totals.CGST())
		f.SetCellValue(registerSheet, fmt.Sprintf("F%d", row), inv.Totals.SGST())
		f.SetCellValue(registerSheet, fmt.Sprintf("G%d", row), inv.TotalGST)
		f.SetCellValue(registerSheet, fmt.Sprintf("H%d", row), inv.GrandTotal)
		f.SetCellValue(registerSheet, fmt.Sprintf("I%d", row), inv.ID)
	}

	if len(invoices) > 0 {
		money, err := f.NewStyle(&excelize.Style{NumFmt: 2})
		if err != nil {
			return fmt.Errorf("money style: %w", err)
		}
		f.SetCellStyle(registerSheet, "D2", fmt.Sprintf("H%d", len(invoices)+1), money)
	}

	f.SetColWidth(registerSheet, "A", "A", 12)
	f.SetColWidth(registerSheet, "B", "C", 24)
	f.SetColWidth(registerSheet, "D", "H", 14)
	f.SetColWidth(registerSheet, "I", "I", 38)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write register: %w", err)
	}
	return nil
}
