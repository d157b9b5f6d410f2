package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/satheeshds/billing/gst"
	"github.com/satheeshds/billing/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const invoiceColumns = `i.id, i.user_id, i.business_name, i.owner_name, i.gstin, i.address,
	i.customer_name, i.customer_gstin, i.bill_date,
	i.subtotal, i.total_gst, i.grand_total, i.created_at`

const itemColumns = `it.id, it.category, it.product_name, it.hsn_code, it.details,
	it.quantity, it.unit_price, it.gst_rate, it.is_gst_inclusive, it.taxable_value, it.gst_amount, it.total`

const userColumns = `id, email, display_name, password_hash, created_at`

// SQL is a Store on an embedded SQLite database.
type SQL struct {
	db *sql.DB
}

// NewSQL wraps an open, migrated SQLite database.
func NewSQL(db *sql.DB) *SQL {
	return &SQL{db: db}
}

func (s *SQL) CreateInvoice(ctx context.Context, rec models.InvoiceRecord) (models.Invoice, error) {
	inv := rec.Invoice
	inv.ID = uuid.NewString()
	inv.BillDate = inv.BillDate.UTC()
	inv.CreatedAt = inv.CreatedAt.UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO invoices (id, user_id, business_name, owner_name, gstin, address,
		customer_name, customer_gstin, bill_date, subtotal, total_gst, grand_total, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.UserID, inv.BusinessName, inv.OwnerName, inv.GSTIN, inv.Address,
		inv.CustomerName, inv.CustomerGSTIN, inv.BillDate,
		inv.Subtotal, inv.TotalGST, inv.GrandTotal, inv.CreatedAt)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("insert invoice: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO invoice_items (id, invoice_id, position, category, product_name,
		hsn_code, details, quantity, unit_price, gst_rate, is_gst_inclusive, taxable_value, gst_amount, total)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("prepare item insert: %w", err)
	}
	defer stmt.Close()

	for pos, it := range rec.Items {
		_, err := stmt.ExecContext(ctx, uuid.NewString(), inv.ID, pos, it.Category, it.ProductName,
			it.HSNCode, it.Details, it.Quantity, it.UnitPrice.Float(), int(it.Rate), it.Inclusive,
			it.TaxableValue, it.GSTAmount, it.Total)
		if err != nil {
			return models.Invoice{}, fmt.Errorf("insert item %d: %w", pos, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Invoice{}, fmt.Errorf("commit: %w", err)
	}
	return inv, nil
}

func (s *SQL) ListInvoices(ctx context.Context, userID string) ([]models.Invoice, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+invoiceColumns+` FROM invoices i
		WHERE i.user_id = ? ORDER BY i.bill_date DESC, i.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (s *SQL) GetInvoice(ctx context.Context, userID, invoiceID string) (models.Invoice, error) {
	inv, err := scanInvoice(s.db.QueryRowContext(ctx, `SELECT `+invoiceColumns+` FROM invoices i
		WHERE i.user_id = ? AND i.id = ?`, userID, invoiceID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Invoice{}, ErrNotFound
	}
	return inv, err
}

func (s *SQL) ListInvoiceItems(ctx context.Context, userID, invoiceID string) ([]gst.LineItem, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM invoice_items it
		JOIN invoices i ON it.invoice_id = i.id
		WHERE i.user_id = ? AND i.id = ? ORDER BY it.position`, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []gst.LineItem{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = u.CreatedAt.UTC()
	_, err := s.db.ExecContext(ctx, `INSERT INTO users (id, email, display_name, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)`, u.ID, u.Email, u.DisplayName, u.PasswordHash, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrDuplicate
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (s *SQL) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return u, err
}

func (s *SQL) GetUserByID(ctx context.Context, id string) (models.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return u, err
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT:
		return true
	}
	return false
}
