package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/satheeshds/billing/gst"
	"github.com/satheeshds/billing/models"
)

const pgUniqueViolation = "23505"

// Postgres is a Store backed by a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) CreateInvoice(ctx context.Context, rec models.InvoiceRecord) (models.Invoice, error) {
	inv := rec.Invoice
	inv.ID = uuid.NewString()
	inv.BillDate = inv.BillDate.UTC()
	inv.CreatedAt = inv.CreatedAt.UTC()

	err := pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO invoices (id, user_id, business_name, owner_name, gstin, address,
			customer_name, customer_gstin, bill_date, subtotal, total_gst, grand_total, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			inv.ID, inv.UserID, inv.BusinessName, inv.OwnerName, inv.GSTIN, inv.Address,
			inv.CustomerName, inv.CustomerGSTIN, inv.BillDate,
			inv.Subtotal, inv.TotalGST, inv.GrandTotal, inv.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert invoice: %w", err)
		}

		batch := &pgx.Batch{}
		for pos, it := range rec.Items {
			batch.Queue(`INSERT INTO invoice_items (id, invoice_id, position, category, product_name,
				hsn_code, details, quantity, unit_price, gst_rate, is_gst_inclusive, taxable_value, gst_amount, total)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
				uuid.NewString(), inv.ID, pos, it.Category, it.ProductName,
				it.HSNCode, it.Details, it.Quantity, it.UnitPrice.Float(), int(it.Rate), it.Inclusive,
				it.TaxableValue, it.GSTAmount, it.Total)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert items: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Invoice{}, err
	}
	return inv, nil
}

func (p *Postgres) ListInvoices(ctx context.Context, userID string) ([]models.Invoice, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices i
		WHERE i.user_id = $1 ORDER BY i.bill_date DESC, i.created_at DESC`, userID)
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

func (p *Postgres) GetInvoice(ctx context.Context, userID, invoiceID string) (models.Invoice, error) {
	inv, err := scanInvoice(p.pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices i
		WHERE i.user_id = $1 AND i.id = $2`, userID, invoiceID))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Invoice{}, ErrNotFound
	}
	return inv, err
}

func (p *Postgres) ListInvoiceItems(ctx context.Context, userID, invoiceID string) ([]gst.LineItem, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+itemColumns+` FROM invoice_items it
		JOIN invoices i ON it.invoice_id = i.id
		WHERE i.user_id = $1 AND i.id = $2 ORDER BY it.position`, userID, invoiceID)
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

func (p *Postgres) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = u.CreatedAt.UTC()
	_, err := p.pool.Exec(ctx, `INSERT INTO users (id, email, display_name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`, u.ID, u.Email, u.DisplayName, u.PasswordHash, u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return models.User{}, ErrDuplicate
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	u, err := scanUser(p.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return u, err
}

func (p *Postgres) GetUserByID(ctx context.Context, id string) (models.User, error) {
	u, err := scanUser(p.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return u, err
}
