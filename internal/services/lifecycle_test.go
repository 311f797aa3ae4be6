package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medibill-api/internal/db"
	"medibill-api/internal/services"
)

func TestStatusForBalance(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		balance int64
		want    db.InvoiceStatus
	}{
		{name: "untouched invoice is pending", total: 23625, balance: 23625, want: db.InvoiceStatusPending},
		{name: "partially paid", total: 23625, balance: 13625, want: db.InvoiceStatusPartial},
		{name: "fully paid", total: 23625, balance: 0, want: db.InvoiceStatusPaid},
		{name: "negative balance still reads paid", total: 23625, balance: -1, want: db.InvoiceStatusPaid},
		{name: "zero total is immediately paid", total: 0, balance: 0, want: db.InvoiceStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.StatusForBalance(tt.total, tt.balance))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, services.IsTerminal(db.InvoiceStatusPending))
	assert.False(t, services.IsTerminal(db.InvoiceStatusPartial))
	assert.False(t, services.IsTerminal(db.InvoiceStatusPaid))
	assert.True(t, services.IsTerminal(db.InvoiceStatusCancelled))
	assert.True(t, services.IsTerminal(db.InvoiceStatusRefunded))
}

func TestCanAcceptPayment(t *testing.T) {
	tests := []struct {
		name    string
		status  db.InvoiceStatus
		wantErr bool
	}{
		{name: "pending accepts payments", status: db.InvoiceStatusPending},
		{name: "partial accepts payments", status: db.InvoiceStatusPartial},
		{name: "cancelled rejects payments", status: db.InvoiceStatusCancelled, wantErr: true},
		{name: "refunded rejects payments", status: db.InvoiceStatusRefunded, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.CanAcceptPayment(db.Invoice{InvoiceNumber: "INV-2026-000001", Status: tt.status})
			if tt.wantErr {
				var ce *services.ConflictError
				require.ErrorAs(t, err, &ce)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCanCancel(t *testing.T) {
	tests := []struct {
		name    string
		invoice db.Invoice
		wantErr string
	}{
		{
			name:    "pending with no payments",
			invoice: db.Invoice{Status: db.InvoiceStatusPending},
		},
		{
			name:    "partial with recorded payments",
			invoice: db.Invoice{InvoiceNumber: "INV-2026-000002", Status: db.InvoiceStatusPartial, PaidCents: 5000},
			wantErr: "has recorded payments",
		},
		{
			name:    "paid routes to refund",
			invoice: db.Invoice{InvoiceNumber: "INV-2026-000003", Status: db.InvoiceStatusPaid, PaidCents: 23625},
			wantErr: "use refund instead",
		},
		{
			name:    "already cancelled",
			invoice: db.Invoice{InvoiceNumber: "INV-2026-000004", Status: db.InvoiceStatusCancelled},
			wantErr: "already cancelled",
		},
		{
			name:    "refunded is terminal",
			invoice: db.Invoice{InvoiceNumber: "INV-2026-000005", Status: db.InvoiceStatusRefunded},
			wantErr: "already refunded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.CanCancel(tt.invoice)
			if tt.wantErr != "" {
				var ce *services.ConflictError
				require.ErrorAs(t, err, &ce)
				assert.Contains(t, ce.Message, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCanRefund(t *testing.T) {
	assert.NoError(t, services.CanRefund(db.Invoice{Status: db.InvoiceStatusPaid}))

	for _, status := range []db.InvoiceStatus{
		db.InvoiceStatusPending,
		db.InvoiceStatusPartial,
		db.InvoiceStatusCancelled,
		db.InvoiceStatusRefunded,
	} {
		t.Run(string(status), func(t *testing.T) {
			err := services.CanRefund(db.Invoice{InvoiceNumber: "INV-2026-000006", Status: status})
			var ce *services.ConflictError
			require.ErrorAs(t, err, &ce)
			assert.Contains(t, ce.Message, "only paid invoices")
		})
	}
}
