package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// Migrate runs all schema statements. Safe to call on every startup due to
// IF NOT EXISTS clauses.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return errors.Wrapf(err, "migration failed: %s", stmt)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS patients (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		mrn TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE SEQUENCE IF NOT EXISTS invoice_number_seq START 1`,

	`CREATE TABLE IF NOT EXISTS invoices (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		invoice_number TEXT NOT NULL UNIQUE,
		patient_id UUID NOT NULL REFERENCES patients(id),
		status TEXT NOT NULL DEFAULT 'pending'
			CHECK(status IN ('pending', 'partial', 'paid', 'cancelled', 'refunded')),
		subtotal_cents BIGINT NOT NULL DEFAULT 0,
		bill_discount_percent DOUBLE PRECISION NOT NULL DEFAULT 0,
		bill_discount_cents BIGINT NOT NULL DEFAULT 0,
		tax_percent DOUBLE PRECISION NOT NULL DEFAULT 0,
		tax_cents BIGINT NOT NULL DEFAULT 0,
		total_cents BIGINT NOT NULL DEFAULT 0,
		paid_cents BIGINT NOT NULL DEFAULT 0,
		balance_cents BIGINT NOT NULL DEFAULT 0,
		notes TEXT,
		payment_method_label TEXT,
		cancel_reason TEXT,
		refund_reason TEXT,
		created_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS invoice_line_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		invoice_id UUID NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
		description TEXT NOT NULL,
		category TEXT,
		quantity INTEGER NOT NULL CHECK(quantity >= 1),
		unit_price_cents BIGINT NOT NULL CHECK(unit_price_cents >= 0),
		discount_percent DOUBLE PRECISION NOT NULL DEFAULT 0
			CHECK(discount_percent >= 0 AND discount_percent <= 100),
		line_total_cents BIGINT NOT NULL,
		discount_cents BIGINT NOT NULL DEFAULT 0,
		final_cents BIGINT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		invoice_id UUID NOT NULL REFERENCES invoices(id),
		amount_cents BIGINT NOT NULL CHECK(amount_cents > 0),
		method TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'completed'
			CHECK(status IN ('completed', 'failed', 'reversed')),
		reference TEXT,
		processed_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_invoices_patient ON invoices(patient_id)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_status ON invoices(status)`,
	`CREATE INDEX IF NOT EXISTS idx_line_items_invoice ON invoice_line_items(invoice_id)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_invoice ON payments(invoice_id)`,
}
