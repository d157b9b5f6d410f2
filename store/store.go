// Package store persists saved invoices, their line items, and user
// accounts. Every invoice read is scoped to the owning user.
package store

import (
	"context"
	"errors"

	"github.com/satheeshds/billing/db"
	"github.com/satheeshds/billing/gst"
	"github.com/satheeshds/billing/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

// Store is the persistence boundary used by the HTTP layer.
type Store interface {
	// CreateInvoice writes the invoice and all of its items atomically and
	// returns the invoice with its generated id.
	CreateInvoice(ctx context.Context, rec models.InvoiceRecord) (models.Invoice, error)
	// ListInvoices returns the user's invoices, newest bill date first.
	ListInvoices(ctx context.Context, userID string) ([]models.Invoice, error)
	GetInvoice(ctx context.Context, userID, invoiceID string) (models.Invoice, error)
	ListInvoiceItems(ctx context.Context, userID, invoiceID string) ([]gst.LineItem, error)

	CreateUser(ctx context.Context, u models.User) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
}

// New returns the Store implementation matching the connection's driver.
func New(c *db.Conn) Store {
	if c.Pool != nil {
		return NewPostgres(c.Pool)
	}
	return NewSQL(c.SQL)
}

type scanner interface{ Scan(...any) error }

func scanInvoice(s scanner) (models.Invoice, error) {
	var inv models.Invoice
	err := s.Scan(&inv.ID, &inv.UserID, &inv.BusinessName, &inv.OwnerName, &inv.GSTIN, &inv.Address,
		&inv.CustomerName, &inv.CustomerGSTIN, &inv.BillDate,
		&inv.Subtotal, &inv.TotalGST, &inv.GrandTotal, &inv.CreatedAt)
	return inv, err
}

func scanItem(s scanner) (gst.LineItem, error) {
	var (
		it    gst.LineItem
		price float64
		rate  int
	)
	err := s.Scan(&it.ID, &it.Category, &it.ProductName, &it.HSNCode, &it.Details,
		&it.Quantity, &price, &rate, &it.Inclusive, &it.TaxableValue, &it.GSTAmount, &it.Total)
	it.UnitPrice = gst.UnitPriceFromStore(price)
	it.Rate = gst.Rate(rate)
	return it, err
}

func scanUser(s scanner) (models.User, error) {
	var u models.User
	err := s.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.CreatedAt)
	return u, err
}
