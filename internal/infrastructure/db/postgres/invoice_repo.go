package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
)

type InvoiceRepo struct {
	db *sql.DB
}

func NewInvoiceRepo(db *sql.DB) *InvoiceRepo { return &InvoiceRepo{db: db} }

func (r *InvoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	_, err := r.db.ExecContext(ctx, insertInvoiceSQL,
		inv.ID, inv.CustomerID, inv.AmountCents, string(inv.Status),
		inv.Date, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	return nil
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	row := r.db.QueryRowContext(ctx, getInvoiceSQL, id)

	var inv domain.Invoice
	var status string
	err := row.Scan(
		&inv.ID, &inv.CustomerID, &inv.AmountCents, &status,
		&inv.Date, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrInvoiceNotFound()
	}
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	inv.Status = domain.InvoiceStatus(status)
	if !inv.Status.Valid() {
		return nil, domain.ErrInternal(errors.New("invalid status in db"))
	}
	return &inv, nil
}

func (r *InvoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error {
	res, err := r.db.ExecContext(ctx, updateInvoiceSQL,
		inv.ID, inv.CustomerID, inv.AmountCents, string(inv.Status), inv.UpdatedAt,
	)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrInvoiceNotFound()
	}
	return nil
}

func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteInvoiceSQL, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrInvoiceNotFound()
	}
	return nil
}

func (r *InvoiceRepo) List(ctx context.Context, page, pageSize int) ([]*domain.Invoice, int, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize

	var total int
	if err := r.db.QueryRowContext(ctx, countInvoicesSQL).Scan(&total); err != nil {
		return nil, 0, domain.ErrDBUnavailable(err)
	}

	rows, err := r.db.QueryContext(ctx, listInvoicesSQL, pageSize, offset)
	if err != nil {
		return nil, 0, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []*domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		var status string
		if err := rows.Scan(
			&inv.ID, &inv.CustomerID, &inv.AmountCents, &status,
			&inv.Date, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, 0, domain.ErrDBUnavailable(err)
		}
		inv.Status = domain.InvoiceStatus(status)
		out = append(out, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, domain.ErrDBUnavailable(err)
	}

	return out, total, nil
}
