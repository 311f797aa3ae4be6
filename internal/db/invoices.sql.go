package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const invoiceColumns = `id, invoice_number, patient_id, status, subtotal_cents,
bill_discount_percent, bill_discount_cents, tax_percent, tax_cents,
total_cents, paid_cents, balance_cents, notes, payment_method_label,
cancel_reason, refund_reason, created_by, created_at, updated_at`

func scanInvoice(row interface{ Scan(dest ...interface{}) error }) (Invoice, error) {
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.InvoiceNumber,
		&i.PatientID,
		&i.Status,
		&i.SubtotalCents,
		&i.BillDiscountPercent,
		&i.BillDiscountCents,
		&i.TaxPercent,
		&i.TaxCents,
		&i.TotalCents,
		&i.PaidCents,
		&i.BalanceCents,
		&i.Notes,
		&i.PaymentMethodLabel,
		&i.CancelReason,
		&i.RefundReason,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createInvoice = `-- name: CreateInvoice :one
INSERT INTO invoices (
	invoice_number, patient_id, status, subtotal_cents,
	bill_discount_percent, bill_discount_cents, tax_percent, tax_cents,
	total_cents, paid_cents, balance_cents, notes, payment_method_label,
	created_by
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + invoiceColumns

type CreateInvoiceParams struct {
	InvoiceNumber       string
	PatientID           uuid.UUID
	Status              InvoiceStatus
	SubtotalCents       int64
	BillDiscountPercent float64
	BillDiscountCents   int64
	TaxPercent          float64
	TaxCents            int64
	TotalCents          int64
	PaidCents           int64
	BalanceCents        int64
	Notes               pgtype.Text
	PaymentMethodLabel  pgtype.Text
	CreatedBy           string
}

func (q *Queries) CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, createInvoice,
		arg.InvoiceNumber,
		arg.PatientID,
		arg.Status,
		arg.SubtotalCents,
		arg.BillDiscountPercent,
		arg.BillDiscountCents,
		arg.TaxPercent,
		arg.TaxCents,
		arg.TotalCents,
		arg.PaidCents,
		arg.BalanceCents,
		arg.Notes,
		arg.PaymentMethodLabel,
		arg.CreatedBy,
	)
	return scanInvoice(row)
}

const createInvoiceLineItem = `-- name: CreateInvoiceLineItem :one
INSERT INTO invoice_line_items (
	invoice_id, description, category, quantity, unit_price_cents,
	discount_percent, line_total_cents, discount_cents, final_cents, position
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, invoice_id, description, category, quantity, unit_price_cents,
	discount_percent, line_total_cents, discount_cents, final_cents, position
`

type CreateInvoiceLineItemParams struct {
	InvoiceID       uuid.UUID
	Description     string
	Category        pgtype.Text
	Quantity        int32
	UnitPriceCents  int64
	DiscountPercent float64
	LineTotalCents  int64
	DiscountCents   int64
	FinalCents      int64
	Position        int32
}

func (q *Queries) CreateInvoiceLineItem(ctx context.Context, arg CreateInvoiceLineItemParams) (InvoiceLineItem, error) {
	row := q.db.QueryRow(ctx, createInvoiceLineItem,
		arg.InvoiceID,
		arg.Description,
		arg.Category,
		arg.Quantity,
		arg.UnitPriceCents,
		arg.DiscountPercent,
		arg.LineTotalCents,
		arg.DiscountCents,
		arg.FinalCents,
		arg.Position,
	)
	var i InvoiceLineItem
	err := row.Scan(
		&i.ID,
		&i.InvoiceID,
		&i.Description,
		&i.Category,
		&i.Quantity,
		&i.UnitPriceCents,
		&i.DiscountPercent,
		&i.LineTotalCents,
		&i.DiscountCents,
		&i.FinalCents,
		&i.Position,
	)
	return i, err
}

const getInvoice = `-- name: GetInvoice :one
SELECT ` + invoiceColumns + `
FROM invoices
WHERE id = $1
`

func (q *Queries) GetInvoice(ctx context.Context, id uuid.UUID) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, getInvoice, id))
}

const getInvoiceForUpdate = `-- name: GetInvoiceForUpdate :one
SELECT ` + invoiceColumns + `
FROM invoices
WHERE id = $1
FOR UPDATE
`

// GetInvoiceForUpdate locks the invoice row for the duration of the
// enclosing transaction. Concurrent payment and cancel operations on the
// same invoice serialize on this lock.
func (q *Queries) GetInvoiceForUpdate(ctx context.Context, id uuid.UUID) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, getInvoiceForUpdate, id))
}

const getInvoiceLineItems = `-- name: GetInvoiceLineItems :many
SELECT id, invoice_id, description, category, quantity, unit_price_cents,
	discount_percent, line_total_cents, discount_cents, final_cents, position
FROM invoice_line_items
WHERE invoice_id = $1
ORDER BY position
`

func (q *Queries) GetInvoiceLineItems(ctx context.Context, invoiceID uuid.UUID) ([]InvoiceLineItem, error) {
	rows, err := q.db.Query(ctx, getInvoiceLineItems, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []InvoiceLineItem
	for rows.Next() {
		var i InvoiceLineItem
		if err := rows.Scan(
			&i.ID,
			&i.InvoiceID,
			&i.Description,
			&i.Category,
			&i.Quantity,
			&i.UnitPriceCents,
			&i.DiscountPercent,
			&i.LineTotalCents,
			&i.DiscountCents,
			&i.FinalCents,
			&i.Position,
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

const listInvoices = `-- name: ListInvoices :many
SELECT ` + invoiceColumns + `
FROM invoices
WHERE ($1::text = '' OR status = $1)
  AND ($2::uuid IS NULL OR patient_id = $2)
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`

type ListInvoicesParams struct {
	Status    string
	PatientID pgtype.UUID
	Limit     int32
	Offset    int32
}

func (q *Queries) ListInvoices(ctx context.Context, arg ListInvoicesParams) ([]Invoice, error) {
	rows, err := q.db.Query(ctx, listInvoices,
		arg.Status,
		arg.PatientID,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Invoice
	for rows.Next() {
		i, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const nextInvoiceNumber = `-- name: NextInvoiceNumber :one
SELECT nextval('invoice_number_seq')
`

func (q *Queries) NextInvoiceNumber(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, nextInvoiceNumber)
	var n int64
	err := row.Scan(&n)
	return n, err
}

const updateInvoiceFinancials = `-- name: UpdateInvoiceFinancials :one
UPDATE invoices
SET paid_cents = $2, balance_cents = $3, status = $4, updated_at = now()
WHERE id = $1
RETURNING ` + invoiceColumns

type UpdateInvoiceFinancialsParams struct {
	ID           uuid.UUID
	PaidCents    int64
	BalanceCents int64
	Status       InvoiceStatus
}

func (q *Queries) UpdateInvoiceFinancials(ctx context.Context, arg UpdateInvoiceFinancialsParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, updateInvoiceFinancials,
		arg.ID,
		arg.PaidCents,
		arg.BalanceCents,
		arg.Status,
	)
	return scanInvoice(row)
}

const updateInvoiceDetails = `-- name: UpdateInvoiceDetails :one
UPDATE invoices
SET notes = COALESCE($2, notes),
	payment_method_label = COALESCE($3, payment_method_label),
	updated_at = now()
WHERE id = $1
RETURNING ` + invoiceColumns

type UpdateInvoiceDetailsParams struct {
	ID                 uuid.UUID
	Notes              pgtype.Text
	PaymentMethodLabel pgtype.Text
}

func (q *Queries) UpdateInvoiceDetails(ctx context.Context, arg UpdateInvoiceDetailsParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, updateInvoiceDetails,
		arg.ID,
		arg.Notes,
		arg.PaymentMethodLabel,
	)
	return scanInvoice(row)
}

const cancelInvoice = `-- name: CancelInvoice :one
UPDATE invoices
SET status = 'cancelled', cancel_reason = $2, updated_at = now()
WHERE id = $1
RETURNING ` + invoiceColumns

type CancelInvoiceParams struct {
	ID     uuid.UUID
	Reason pgtype.Text
}

func (q *Queries) CancelInvoice(ctx context.Context, arg CancelInvoiceParams) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, cancelInvoice, arg.ID, arg.Reason))
}

const refundInvoice = `-- name: RefundInvoice :one
UPDATE invoices
SET status = 'refunded', refund_reason = $2, updated_at = now()
WHERE id = $1
RETURNING ` + invoiceColumns

type RefundInvoiceParams struct {
	ID     uuid.UUID
	Reason pgtype.Text
}

func (q *Queries) RefundInvoice(ctx context.Context, arg RefundInvoiceParams) (Invoice, error) {
	return scanInvoice(q.db.QueryRow(ctx, refundInvoice, arg.ID, arg.Reason))
}
