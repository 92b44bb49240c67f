package invoicerepo

import (
	"context"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, invoice *domain.Invoice) error {
	query := `
        INSERT INTO invoices (id, customer_id, amount, status, date)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, invoice.ID, invoice.CustomerID, invoice.Amount, string(invoice.Status), invoice.Date)
	if err != nil {
		zap.L().Error("can't create invoice", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, invoice *domain.Invoice) error {
	query := `
        UPDATE invoices
        SET customer_id = $1, amount = $2, status = $3, date = $4
        WHERE id = $5
    `
	tag, err := r.db.Exec(ctx, query, invoice.CustomerID, invoice.Amount, string(invoice.Status), invoice.Date, invoice.ID)
	if err != nil {
		zap.L().Error("can't update invoice", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		zap.L().Warn("no invoice to update", zap.String("id", invoice.ID))
	}
	return nil
}

// Delete removes the invoice. Deleting a missing id is not an error.
func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM invoices WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete invoice", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindLatest(ctx context.Context, limit int) ([]domain.InvoiceRow, error) {
	query := `
        SELECT invoices.id, invoices.amount, to_char(invoices.date, 'YYYY-MM-DD'), invoices.status,
               customers.name, customers.email, customers.image_url
        FROM invoices
        JOIN customers ON invoices.customer_id = customers.id
        ORDER BY invoices.date DESC
        LIMIT $1
    `
	return r.findRows(ctx, query, limit)
}

// Search matches the query against customer name and email, amount, date and status.
func (r *Repository) Search(ctx context.Context, q string, limit, offset int) ([]domain.InvoiceRow, error) {
	query := `
        SELECT invoices.id, invoices.amount, to_char(invoices.date, 'YYYY-MM-DD'), invoices.status,
               customers.name, customers.email, customers.image_url
        FROM invoices
        JOIN customers ON invoices.customer_id = customers.id
        WHERE customers.name ILIKE $1
           OR customers.email ILIKE $1
           OR invoices.amount::text ILIKE $1
           OR invoices.date::text ILIKE $1
           OR invoices.status ILIKE $1
        ORDER BY invoices.date DESC
        LIMIT $2 OFFSET $3
    `
	return r.findRows(ctx, query, "%"+q+"%", limit, offset)
}

func (r *Repository) findRows(ctx context.Context, query string, args ...any) ([]domain.InvoiceRow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get invoices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	invoices := make([]domain.InvoiceRow, 0)
	for rows.Next() {
		var row domain.InvoiceRow
		var status string
		err := rows.Scan(&row.ID, &row.Amount, &row.Date, &status, &row.Name, &row.Email, &row.ImageURL)
		if err != nil {
			zap.L().Error("can't scan invoice row", zap.Error(err))
			return nil, err
		}
		row.Status = domain.InvoiceStatus(status)
		invoices = append(invoices, row)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate invoice rows", zap.Error(err))
		return nil, err
	}
	return invoices, nil
}

func (r *Repository) CountInvoices(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count invoices", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count customers", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// TotalsByStatus returns the paid and pending sums in cents.
func (r *Repository) TotalsByStatus(ctx context.Context) (paid, pending int64, err error) {
	query := `
        SELECT
            COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0)::bigint AS paid,
            COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0)::bigint AS pending
        FROM invoices
    `
	err = r.db.QueryRow(ctx, query).Scan(&paid, &pending)
	if err != nil {
		zap.L().Error("can't sum invoices by status", zap.Error(err))
		return 0, 0, err
	}
	return paid, pending, nil
}
