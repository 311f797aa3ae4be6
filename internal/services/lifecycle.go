package services

import (
	"fmt"

	"medibill-api/internal/db"
)

// The bill lifecycle: pending → partial → paid, driven by the payment
// ledger; pending/partial → cancelled while nothing has been paid;
// paid → refunded. cancelled and refunded are terminal.

// StatusForBalance derives the invoice status from its money fields.
// This is the only place status is computed; every mutation path calls it.
func StatusForBalance(totalCents, balanceCents int64) db.InvoiceStatus {
	switch {
	case balanceCents <= 0:
		return db.InvoiceStatusPaid
	case balanceCents == totalCents:
		return db.InvoiceStatusPending
	default:
		return db.InvoiceStatusPartial
	}
}

// IsTerminal reports whether no further mutations are allowed.
func IsTerminal(status db.InvoiceStatus) bool {
	return status == db.InvoiceStatusCancelled || status == db.InvoiceStatusRefunded
}

// CanAcceptPayment rejects payments on terminal invoices.
func CanAcceptPayment(inv db.Invoice) error {
	if IsTerminal(inv.Status) {
		return &ConflictError{Message: fmt.Sprintf("invoice %s is %s and cannot accept payments", inv.InvoiceNumber, inv.Status)}
	}
	return nil
}

// CanCancel allows cancellation from pending or partial, and only while
// nothing has been paid. A paid-down invoice goes through the refund
// workflow instead.
func CanCancel(inv db.Invoice) error {
	if IsTerminal(inv.Status) {
		return &ConflictError{Message: fmt.Sprintf("invoice %s is already %s", inv.InvoiceNumber, inv.Status)}
	}
	if inv.Status == db.InvoiceStatusPaid {
		return &ConflictError{Message: fmt.Sprintf("invoice %s is paid; use refund instead", inv.InvoiceNumber)}
	}
	if inv.PaidCents > 0 {
		return &ConflictError{Message: fmt.Sprintf("invoice %s has recorded payments and cannot be cancelled", inv.InvoiceNumber)}
	}
	return nil
}

// CanRefund allows the paid → refunded transition only.
func CanRefund(inv db.Invoice) error {
	if inv.Status != db.InvoiceStatusPaid {
		return &ConflictError{Message: fmt.Sprintf("invoice %s is %s; only paid invoices can be refunded", inv.InvoiceNumber, inv.Status)}
	}
	return nil
}
