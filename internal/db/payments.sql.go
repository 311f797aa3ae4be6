package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createPayment = `-- name: CreatePayment :one
INSERT INTO payments (invoice_id, amount_cents, method, status, reference, processed_by)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, invoice_id, amount_cents, method, status, reference, processed_by, created_at
`

type CreatePaymentParams struct {
	InvoiceID   uuid.UUID
	AmountCents int64
	Method      string
	Status      PaymentStatus
	Reference   pgtype.Text
	ProcessedBy string
}

func (q *Queries) CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error) {
	row := q.db.QueryRow(ctx, createPayment,
		arg.InvoiceID,
		arg.AmountCents,
		arg.Method,
		arg.Status,
		arg.Reference,
		arg.ProcessedBy,
	)
	var i Payment
	err := row.Scan(
		&i.ID,
		&i.InvoiceID,
		&i.AmountCents,
		&i.Method,
		&i.Status,
		&i.Reference,
		&i.ProcessedBy,
		&i.CreatedAt,
	)
	return i, err
}

const getCompletedPaymentTotal = `-- name: GetCompletedPaymentTotal :one
SELECT COALESCE(SUM(amount_cents), 0)::bigint
FROM payments
WHERE invoice_id = $1 AND status = 'completed'
`

func (q *Queries) GetCompletedPaymentTotal(ctx context.Context, invoiceID uuid.UUID) (int64, error) {
	row := q.db.QueryRow(ctx, getCompletedPaymentTotal, invoiceID)
	var total int64
	err := row.Scan(&total)
	return total, err
}

const listPaymentsByInvoice = `-- name: ListPaymentsByInvoice :many
SELECT id, invoice_id, amount_cents, method, status, reference, processed_by, created_at
FROM payments
WHERE invoice_id = $1
ORDER BY created_at
`

func (q *Queries) ListPaymentsByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]Payment, error) {
	rows, err := q.db.Query(ctx, listPaymentsByInvoice, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Payment
	for rows.Next() {
		var i Payment
		if err := rows.Scan(
			&i.ID,
			&i.InvoiceID,
			&i.AmountCents,
			&i.Method,
			&i.Status,
			&i.Reference,
			&i.ProcessedBy,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
