package gst

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// PriceItem validates raw input and turns it into a fully priced LineItem
// with a fresh identifier. The entered price must be strictly positive.
func PriceItem(in ItemInput) (LineItem, error) {
	name := in.ProductName
	if in.Category == OthersCategory {
		name = in.CustomProductName
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return LineItem{}, invalid("product_name", "is required")
	}

	qty := parseAmount(in.Quantity)
	if !(qty > 0) {
		return LineItem{}, invalid("quantity", "must be positive")
	}
	price := parseAmount(in.UnitPrice)
	if !(price > 0) {
		return LineItem{}, invalid("unit_price", "must be positive")
	}
	if !in.Rate.Valid() {
		return LineItem{}, invalid("gst_rate", "is not a supported rate")
	}

	item := compute(price, qty, in.Rate, in.Inclusive)
	if !item.finite() {
		return LineItem{}, invalid("quantity", "is too large")
	}
	item.ID = uuid.NewString()
	item.Category = in.Category
	item.ProductName = name
	item.HSNCode = strings.TrimSpace(in.HSNCode)
	item.Details = strings.TrimSpace(in.Details)
	return item, nil
}

// ApplyEdit recomputes an existing item from edited quantity, price, rate and
// inclusive flag. A zero price is accepted here; a negative one is not. The
// identifier and descriptive fields of orig are kept.
func ApplyEdit(orig LineItem, in EditInput) (LineItem, error) {
	qty := parseAmount(in.Quantity)
	if !(qty > 0) {
		return LineItem{}, invalid("quantity", "must be positive")
	}
	price := parseAmount(in.UnitPrice)
	if !(price >= 0) {
		return LineItem{}, invalid("unit_price", "cannot be negative")
	}
	if !in.Rate.Valid() {
		return LineItem{}, invalid("gst_rate", "is not a supported rate")
	}

	item := compute(price, qty, in.Rate, in.Inclusive)
	if !item.finite() {
		return LineItem{}, invalid("quantity", "is too large")
	}
	item.ID = orig.ID
	item.Category = orig.Category
	item.ProductName = orig.ProductName
	item.HSNCode = orig.HSNCode
	item.Details = orig.Details
	return item, nil
}

// ReopenForEdit presents item with the price the user entered. For inclusive
// items that is the exclusive unit price grossed up by the rate, the inverse
// of the normalization done by PriceItem.
func ReopenForEdit(item LineItem) EditableItem {
	display := item.UnitPrice.v
	if item.Inclusive {
		display = item.UnitPrice.v * item.Rate.factor()
	}
	return EditableItem{
		ID:          item.ID,
		Category:    item.Category,
		ProductName: item.ProductName,
		HSNCode:     item.HSNCode,
		Details:     item.Details,
		Quantity:    formatAmount(item.Quantity),
		UnitPrice:   formatAmount(display),
		Rate:        item.Rate,
		Inclusive:   item.Inclusive,
	}
}

// Aggregate folds items into bill totals. It always starts from zero.
func Aggregate(items []LineItem) Totals {
	var t Totals
	for _, it := range items {
		t.Subtotal += it.TaxableValue
		t.TotalGST += it.GSTAmount
	}
	t.GrandTotal = t.Subtotal + t.TotalGST
	return t
}

// compute holds the arithmetic shared by creation and edit. The order of
// operations is fixed so saved values reproduce bit for bit.
func compute(entered, qty float64, rate Rate, inclusive bool) LineItem {
	var it LineItem
	if inclusive {
		perUnit := entered / rate.factor()
		it.UnitPrice = UnitPrice{v: perUnit}
		it.TaxableValue = perUnit * qty
		it.Total = entered * qty
		it.GSTAmount = it.Total - it.TaxableValue
	} else {
		it.UnitPrice = UnitPrice{v: entered}
		it.TaxableValue = entered * qty
		it.GSTAmount = it.TaxableValue * float64(rate) / 100
		it.Total = it.TaxableValue + it.GSTAmount
	}
	it.Quantity = qty
	it.Rate = rate
	it.Inclusive = inclusive
	return it
}

// finite reports whether every derived amount is a real number. A large
// enough quantity times price overflows to infinity, which JSON cannot carry.
func (it LineItem) finite() bool {
	for _, v := range []float64{it.UnitPrice.v, it.TaxableValue, it.GSTAmount, it.Total} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// parseAmount returns NaN for anything that is not a finite number.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
