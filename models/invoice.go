package models

import (
	"time"

	"github.com/satheeshds/billing/gst"
)

// BusinessDetails identifies the seller printed on every invoice.
type BusinessDetails struct {
	BusinessName string `json:"business_name"`
	OwnerName    string `json:"owner_name"`
	GSTIN        string `json:"gstin"`
	Address      string `json:"address"`
}

// CustomerDetails identifies the buyer and the bill date.
type CustomerDetails struct {
	CustomerName  string    `json:"customer_name"`
	CustomerGSTIN string    `json:"customer_gstin"`
	BillDate      time.Time `json:"bill_date"`
}

// Invoice is a saved bill. It is written once and never updated.
type Invoice struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	BusinessDetails
	CustomerDetails
	gst.Totals
	CreatedAt time.Time `json:"created_at"`
}

// InvoiceRecord is an invoice together with its line items, as handed to
// the store for a single write.
type InvoiceRecord struct {
	Invoice
	Items []gst.LineItem `json:"items"`
}

// InvoiceDetail is returned when viewing a saved invoice.
type InvoiceDetail struct {
	Invoice
	CGST  float64        `json:"cgst"`
	SGST  float64        `json:"sgst"`
	Items []gst.LineItem `json:"items"`
}

// NewInvoiceDetail pairs an invoice with its items and the display split of
// its GST.
func NewInvoiceDetail(inv Invoice, items []gst.LineItem) InvoiceDetail {
	if items == nil {
		items = []gst.LineItem{}
	}
	return InvoiceDetail{
		Invoice: inv,
		CGST:    inv.Totals.CGST(),
		SGST:    inv.Totals.SGST(),
		Items:   items,
	}
}
