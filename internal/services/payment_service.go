package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"medibill-api/internal/audit"
	"medibill-api/internal/db"
	"medibill-api/internal/logger"
)

// PaymentService is the append-only payment ledger. Payments are never
// edited; a correction is a new reversing payment.
type PaymentService struct {
	store  db.Store
	logger *zap.Logger
	sink   audit.Sink
}

// NewPaymentService creates a new payment service.
func NewPaymentService(store db.Store, sink audit.Sink) *PaymentService {
	return &PaymentService{
		store:  store,
		logger: logger.Log,
		sink:   sink,
	}
}

// AddPaymentParams contains the caller-supplied fields of one payment.
type AddPaymentParams struct {
	Amount      float64
	Method      string
	Reference   string
	ProcessedBy string
}

// PaymentResult reports the outcome of a recorded payment.
type PaymentResult struct {
	PaymentID    uuid.UUID
	BalanceCents int64
	Status       db.InvoiceStatus
}

// AddPayment appends a completed payment and recomputes paid amount,
// balance, and status as one atomic unit. The invoice row stays locked for
// the whole read-check-append-recompute sequence, so two concurrent
// payments cannot both pass the overpayment check.
func (s *PaymentService) AddPayment(ctx context.Context, invoiceID uuid.UUID, params AddPaymentParams) (*PaymentResult, error) {
	if params.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "payment amount must be greater than zero"}
	}
	if params.Method == "" {
		return nil, &ValidationError{Field: "method", Message: "payment method is required"}
	}

	var before db.Invoice
	var payment db.Payment
	var updated db.Invoice

	err := s.store.ExecTx(ctx, func(q db.Querier) error {
		invoice, err := q.GetInvoiceForUpdate(ctx, invoiceID)
		if err != nil {
			return asNotFound(err, "invoice", invoiceID.String())
		}
		before = invoice

		p, inv, err := applyPayment(ctx, q, invoice, applyPaymentParams(params))
		if err != nil {
			return err
		}
		payment, updated = p, inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, audit.Event{
		Actor:     params.ProcessedBy,
		Action:    audit.ActionPaymentAdded,
		InvoiceID: invoiceID,
		Before:    snapshot(before),
		After:     snapshot(updated),
		At:        time.Now(),
	})

	s.logger.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("invoice_id", invoiceID.String()),
		zap.Int64("amount_cents", payment.AmountCents),
		zap.Int64("balance_cents", updated.BalanceCents),
		zap.String("status", string(updated.Status)))

	return &PaymentResult{
		PaymentID:    payment.ID,
		BalanceCents: updated.BalanceCents,
		Status:       updated.Status,
	}, nil
}

// ListPayments returns all payments recorded against an invoice.
func (s *PaymentService) ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]db.Payment, error) {
	if _, err := s.store.GetInvoice(ctx, invoiceID); err != nil {
		return nil, asNotFound(err, "invoice", invoiceID.String())
	}

	payments, err := s.store.ListPaymentsByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (s *PaymentService) record(ctx context.Context, event audit.Event) {
	if err := s.sink.Record(ctx, event); err != nil {
		s.logger.Error("Failed to record audit event",
			zap.String("action", event.Action),
			zap.String("invoice_id", event.InvoiceID.String()),
			zap.Error(err))
	}
}

type applyPaymentParams struct {
	Amount      float64
	Method      string
	Reference   string
	ProcessedBy string
}

// applyPayment appends a completed payment to an already-locked invoice
// and recomputes its derived fields from the full set of completed
// payments. Callers must hold the invoice row lock via the enclosing
// transaction.
func applyPayment(ctx context.Context, q db.Querier, invoice db.Invoice, params applyPaymentParams) (db.Payment, db.Invoice, error) {
	if err := CanAcceptPayment(invoice); err != nil {
		return db.Payment{}, db.Invoice{}, err
	}

	amountCents := ToCents(params.Amount)
	if amountCents <= 0 {
		return db.Payment{}, db.Invoice{}, &ValidationError{Field: "amount", Message: "payment amount must be greater than zero"}
	}
	if amountCents > invoice.BalanceCents {
		return db.Payment{}, db.Invoice{}, &ConflictError{
			Message: fmt.Sprintf("payment of %.2f exceeds outstanding balance of %.2f",
				FromCents(amountCents), FromCents(invoice.BalanceCents)),
		}
	}

	payment, err := q.CreatePayment(ctx, db.CreatePaymentParams{
		InvoiceID:   invoice.ID,
		AmountCents: amountCents,
		Method:      params.Method,
		Status:      db.PaymentStatusCompleted,
		Reference:   textOrNull(params.Reference),
		ProcessedBy: params.ProcessedBy,
	})
	if err != nil {
		return db.Payment{}, db.Invoice{}, fmt.Errorf("failed to create payment: %w", err)
	}

	// Recompute from the payment set rather than incrementing, so the
	// derived fields are idempotent over the same set of payments.
	paid, err := q.GetCompletedPaymentTotal(ctx, invoice.ID)
	if err != nil {
		return db.Payment{}, db.Invoice{}, fmt.Errorf("failed to sum payments: %w", err)
	}

	balance := invoice.TotalCents - paid
	if balance < 0 {
		balance = 0
	}

	updated, err := q.UpdateInvoiceFinancials(ctx, db.UpdateInvoiceFinancialsParams{
		ID:           invoice.ID,
		PaidCents:    paid,
		BalanceCents: balance,
		Status:       StatusForBalance(invoice.TotalCents, balance),
	})
	if err != nil {
		return db.Payment{}, db.Invoice{}, fmt.Errorf("failed to update invoice financials: %w", err)
	}

	return payment, updated, nil
}
