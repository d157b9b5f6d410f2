// Package render turns a bill or a saved invoice into printable documents:
// an A4 tax invoice, an 80 mm thermal receipt and an XLSX register.
package render

import (
	"github.com/satheeshds/billing/bill"
	"github.com/satheeshds/billing/gst"
	"github.com/satheeshds/billing/models"
	"github.com/shopspring/decimal"
)

// Document is everything printed on an invoice or receipt.
type Document struct {
	Business models.BusinessDetails
	Customer models.CustomerDetails
	Items    []gst.LineItem
	Totals   gst.Totals
}

// Options control presentation only.
type Options struct {
	// Watermark is tiled across every page of the tax invoice. Empty disables it.
	Watermark string
}

// FromBill builds a document from the active bill.
func FromBill(b bill.Bill) Document {
	return Document{
		Business: b.Business,
		Customer: b.Customer,
		Items:    b.Items,
		Totals:   b.Totals,
	}
}

// FromInvoice builds a document from a saved invoice and its items.
func FromInvoice(inv models.Invoice, items []gst.LineItem) Document {
	return Document{
		Business: inv.BusinessDetails,
		Customer: inv.CustomerDetails,
		Items:    items,
		Totals:   inv.Totals,
	}
}

// FormatINR formats an amount as "Rs. 1234.50", rounding half away from zero
// to two places.
func FormatINR(v float64) string {
	return "Rs. " + decimal.NewFromFloat(v).StringFixed(2)
}

func formatQty(v float64) string {
	return decimal.NewFromFloat(v).String()
}
