// Package bill models the in-progress bill as a plain value. Every change
// goes through a function that returns a new Bill with its totals recomputed
// from the items.
package bill

import (
	"errors"
	"strings"
	"time"

	"github.com/satheeshds/billing/catalog"
	"github.com/satheeshds/billing/gst"
	"github.com/satheeshds/billing/models"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrEmptyBill    = errors.New("bill has no items")
)

// Bill is the unsaved bill being edited.
type Bill struct {
	Business models.BusinessDetails `json:"business"`
	Customer models.CustomerDetails `json:"customer"`
	Items    []gst.LineItem         `json:"items"`
	Totals   gst.Totals             `json:"totals"`
}

// ItemPatch edits descriptive fields of an item without repricing it. Nil
// fields are left alone.
type ItemPatch struct {
	ProductName *string `json:"product_name"`
	HSNCode     *string `json:"hsn_code"`
	Details     *string `json:"details"`
}

// New starts an empty bill dated now.
func New(now time.Time) Bill {
	return Bill{
		Customer: models.CustomerDetails{BillDate: now},
		Items:    []gst.LineItem{},
	}
}

func withItems(b Bill, items []gst.LineItem) Bill {
	b.Items = items
	b.Totals = gst.Aggregate(items)
	return b
}

// withPricedItems is withItems for changes that add value to the bill. It
// refuses a change whose totals no longer fit in a float64.
func withPricedItems(b Bill, items []gst.LineItem) (Bill, error) {
	next := withItems(b, items)
	if !next.Totals.Finite() {
		return b, &gst.InvalidItemError{Field: "quantity", Reason: "makes the bill total too large"}
	}
	return next, nil
}

func (b Bill) index(id string) int {
	for i, it := range b.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// SetBusiness replaces the seller details.
func SetBusiness(b Bill, d models.BusinessDetails) Bill {
	b.Business = d
	return b
}

// SetCustomer replaces the buyer details.
func SetCustomer(b Bill, d models.CustomerDetails) Bill {
	b.Customer = d
	return b
}

// AddItem prices in and appends it. A catalog product chosen without an
// HSN code gets the catalog's code.
func AddItem(b Bill, in gst.ItemInput) (Bill, error) {
	cat := catalog.Default()
	if !cat.HasCategory(in.Category) {
		return b, &gst.InvalidItemError{Field: "category", Reason: "is not in the catalog"}
	}
	if strings.TrimSpace(in.HSNCode) == "" && in.Category != gst.OthersCategory {
		if p, ok := cat.Lookup(in.Category, in.ProductName); ok {
			in.HSNCode = p.HSNCode
		}
	}
	item, err := gst.PriceItem(in)
	if err != nil {
		return b, err
	}
	items := make([]gst.LineItem, 0, len(b.Items)+1)
	items = append(items, b.Items...)
	items = append(items, item)
	return withPricedItems(b, items)
}

// Reopen returns the item with the given id in its editable form.
func Reopen(b Bill, id string) (gst.EditableItem, error) {
	i := b.index(id)
	if i < 0 {
		return gst.EditableItem{}, ErrItemNotFound
	}
	return gst.ReopenForEdit(b.Items[i]), nil
}

// UpdateItem reprices the item with the given id in place.
func UpdateItem(b Bill, id string, in gst.EditInput) (Bill, error) {
	i := b.index(id)
	if i < 0 {
		return b, ErrItemNotFound
	}
	item, err := gst.ApplyEdit(b.Items[i], in)
	if err != nil {
		return b, err
	}
	items := make([]gst.LineItem, len(b.Items))
	copy(items, b.Items)
	items[i] = item
	return withPricedItems(b, items)
}

// PatchItem applies field-level changes that do not affect pricing.
func PatchItem(b Bill, id string, p ItemPatch) (Bill, error) {
	i := b.index(id)
	if i < 0 {
		return b, ErrItemNotFound
	}
	item := b.Items[i]
	if p.ProductName != nil {
		name := strings.TrimSpace(*p.ProductName)
		if name == "" {
			return b, &gst.InvalidItemError{Field: "product_name", Reason: "is required"}
		}
		item.ProductName = name
	}
	if p.HSNCode != nil {
		item.HSNCode = strings.TrimSpace(*p.HSNCode)
	}
	if p.Details != nil {
		item.Details = strings.TrimSpace(*p.Details)
	}
	items := make([]gst.LineItem, len(b.Items))
	copy(items, b.Items)
	items[i] = item
	return withPricedItems(b, items)
}

// RemoveItem drops the item with the given id.
func RemoveItem(b Bill, id string) (Bill, error) {
	i := b.index(id)
	if i < 0 {
		return b, ErrItemNotFound
	}
	items := make([]gst.LineItem, 0, len(b.Items)-1)
	items = append(items, b.Items[:i]...)
	items = append(items, b.Items[i+1:]...)
	return withItems(b, items), nil
}

// Snapshot freezes the bill into an invoice record owned by userID.
func Snapshot(b Bill, userID string, now time.Time) (models.InvoiceRecord, error) {
	if len(b.Items) == 0 {
		return models.InvoiceRecord{}, ErrEmptyBill
	}
	items := make([]gst.LineItem, len(b.Items))
	copy(items, b.Items)
	return models.InvoiceRecord{
		Invoice: models.Invoice{
			UserID:          userID,
			BusinessDetails: b.Business,
			CustomerDetails: b.Customer,
			Totals:          gst.Aggregate(items),
			CreatedAt:       now,
		},
		Items: items,
	}, nil
}
