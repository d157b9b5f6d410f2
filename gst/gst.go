// Package gst prices bill line items under the GST regime.
//
// Every LineItem stores a tax-exclusive unit price regardless of how the
// price was entered. The UnitPrice type carries that guarantee: it can only be
// produced by PriceItem and ApplyEdit, or rehydrated from a store or a
// serialized Bill that persisted a calculator-produced value.
package gst

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Rate is a GST percentage.
type Rate int

var rates = []Rate{0, 5, 12, 18, 28}

// Rates returns the supported GST rates in ascending order.
func Rates() []Rate {
	out := make([]Rate, len(rates))
	copy(out, rates)
	return out
}

// Valid reports whether r is one of the supported rates.
func (r Rate) Valid() bool {
	for _, v := range rates {
		if r == v {
			return true
		}
	}
	return false
}

func (r Rate) factor() float64 {
	return 1 + float64(r)/100
}

// UnitPrice is a tax-exclusive per-unit price.
type UnitPrice struct {
	v float64
}

// UnitPriceFromStore rehydrates a unit price that was persisted after being
// produced by the calculator. It must not be used on raw user input.
func UnitPriceFromStore(v float64) UnitPrice {
	return UnitPrice{v: v}
}

// Float returns the price as a float64.
func (p UnitPrice) Float() float64 { return p.v }

func (p UnitPrice) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.v)
}

// UnmarshalJSON restores a price from a serialized Bill or LineItem. Like
// UnitPriceFromStore it trusts the value to be calculator output; request
// bodies never decode into a UnitPrice.
func (p *UnitPrice) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &p.v)
}

// OthersCategory is the catch-all category whose product name comes from
// free text instead of the catalog.
const OthersCategory = "Others"

// ItemInput is a line item as entered by the user.
type ItemInput struct {
	Category          string `json:"category"`
	ProductName       string `json:"product_name"`
	CustomProductName string `json:"custom_product_name"`
	HSNCode           string `json:"hsn_code"`
	Details           string `json:"details"`
	Quantity          string `json:"quantity"`
	UnitPrice         string `json:"unit_price"`
	Rate              Rate   `json:"gst_rate"`
	Inclusive         bool   `json:"is_gst_inclusive"`
}

// EditInput carries the fields that go through recomputation on edit.
type EditInput struct {
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Rate      Rate   `json:"gst_rate"`
	Inclusive bool   `json:"is_gst_inclusive"`
}

// LineItem is one priced entry of a bill.
type LineItem struct {
	ID           string    `json:"id"`
	Category     string    `json:"category"`
	ProductName  string    `json:"product_name"`
	HSNCode      string    `json:"hsn_code,omitempty"`
	Details      string    `json:"details,omitempty"`
	Quantity     float64   `json:"quantity"`
	UnitPrice    UnitPrice `json:"unit_price"`
	Rate         Rate      `json:"gst_rate"`
	Inclusive    bool      `json:"is_gst_inclusive"`
	TaxableValue float64   `json:"taxable_value"`
	GSTAmount    float64   `json:"gst_amount"`
	Total        float64   `json:"total"`
}

// EditableItem is a LineItem re-presented for editing. UnitPrice is the
// price the user would have typed: tax-inclusive for inclusive items.
type EditableItem struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	ProductName string `json:"product_name"`
	HSNCode     string `json:"hsn_code,omitempty"`
	Details     string `json:"details,omitempty"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Rate        Rate   `json:"gst_rate"`
	Inclusive   bool   `json:"is_gst_inclusive"`
}

// Totals are the bill-level aggregates.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	TotalGST   float64 `json:"total_gst"`
	GrandTotal float64 `json:"grand_total"`
}

// CGST is the central half of the total GST.
func (t Totals) CGST() float64 { return t.TotalGST / 2 }

// SGST is the state half of the total GST.
func (t Totals) SGST() float64 { return t.TotalGST / 2 }

// Finite reports whether no total has overflowed.
func (t Totals) Finite() bool {
	return !math.IsInf(t.GrandTotal, 0) && !math.IsNaN(t.GrandTotal) &&
		!math.IsInf(t.Subtotal, 0) && !math.IsInf(t.TotalGST, 0)
}

// ErrInvalidItem is matched by every rejection from PriceItem and ApplyEdit.
var ErrInvalidItem = errors.New("invalid item")

// InvalidItemError names the field that failed validation.
type InvalidItemError struct {
	Field  string
	Reason string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("invalid item: %s %s", e.Field, e.Reason)
}

func (e *InvalidItemError) Is(target error) bool {
	return target == ErrInvalidItem
}

func invalid(field, reason string) error {
	return &InvalidItemError{Field: field, Reason: reason}
}
