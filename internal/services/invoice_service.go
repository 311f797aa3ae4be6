package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"medibill-api/internal/audit"
	"medibill-api/internal/db"
	"medibill-api/internal/logger"
)

// InvoiceService builds finalized invoices from validated line items and
// owns the non-payment mutations of the bill lifecycle.
type InvoiceService struct {
	store  db.Store
	logger *zap.Logger
	sink   audit.Sink
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(store db.Store, sink audit.Sink) *InvoiceService {
	return &InvoiceService{
		store:  store,
		logger: logger.Log,
		sink:   sink,
	}
}

// InvoiceDetails is an invoice with its line items.
type InvoiceDetails struct {
	Invoice   db.Invoice
	LineItems []db.InvoiceLineItem
}

// InitialPaymentParams is a payment applied at invoice creation time. It
// runs through the ledger path, never as a raw field set.
type InitialPaymentParams struct {
	Amount    float64
	Method    string
	Reference string
}

// CreateInvoiceParams contains everything needed to build an invoice.
type CreateInvoiceParams struct {
	PatientID           uuid.UUID
	Items               []LineItemInput
	BillDiscountPercent float64
	BillDiscountAmount  float64
	TaxPercent          float64
	InitialPayment      *InitialPaymentParams
	Notes               string
	PaymentMethodLabel  string
	CreatedBy           string
}

// CreateInvoice validates the line items, computes the invoice snapshot,
// and persists invoice, items, and any initial payment in one transaction.
func (s *InvoiceService) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*InvoiceDetails, error) {
	items, err := ValidateLineItems(params.Items)
	if err != nil {
		return nil, err
	}
	if params.BillDiscountPercent < 0 || params.BillDiscountPercent > 100 {
		return nil, &ValidationError{Field: "bill_discount_percent", Message: "discount percent must be between 0 and 100"}
	}
	if params.BillDiscountAmount < 0 {
		return nil, &ValidationError{Field: "bill_discount_amount", Message: "discount amount cannot be negative"}
	}
	if params.TaxPercent < 0 || params.TaxPercent > 100 {
		return nil, &ValidationError{Field: "tax_percent", Message: "tax percent must be between 0 and 100"}
	}

	// Patient must exist before anything is written.
	if _, err := s.store.GetPatient(ctx, params.PatientID); err != nil {
		return nil, asNotFound(err, "patient", params.PatientID.String())
	}

	var subtotal int64
	for _, item := range items {
		subtotal += item.FinalCents
	}

	// Percentage and flat discount combine additively.
	discount := PercentOf(subtotal, params.BillDiscountPercent) + ToCents(params.BillDiscountAmount)

	// The tax base is clamped at zero; the final total is not. A discount
	// that drives the total negative is a caller error, not a clamp.
	afterDiscount := subtotal - discount
	taxable := afterDiscount
	if taxable < 0 {
		taxable = 0
	}
	tax := PercentOf(taxable, params.TaxPercent)
	total := afterDiscount + tax
	if total < 0 {
		return nil, &ValidationError{Field: "bill_discount_amount", Message: "discount exceeds invoice subtotal"}
	}

	var details InvoiceDetails
	var initialPayment *db.Payment

	err = s.store.ExecTx(ctx, func(q db.Querier) error {
		seq, err := q.NextInvoiceNumber(ctx)
		if err != nil {
			return fmt.Errorf("failed to get next invoice number: %w", err)
		}
		invoiceNumber := fmt.Sprintf("INV-%d-%06d", time.Now().Year(), seq)

		invoice, err := q.CreateInvoice(ctx, db.CreateInvoiceParams{
			InvoiceNumber:       invoiceNumber,
			PatientID:           params.PatientID,
			Status:              StatusForBalance(total, total),
			SubtotalCents:       subtotal,
			BillDiscountPercent: params.BillDiscountPercent,
			BillDiscountCents:   discount,
			TaxPercent:          params.TaxPercent,
			TaxCents:            tax,
			TotalCents:          total,
			PaidCents:           0,
			BalanceCents:        total,
			Notes:               textOrNull(params.Notes),
			PaymentMethodLabel:  textOrNull(params.PaymentMethodLabel),
			CreatedBy:           params.CreatedBy,
		})
		if err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}

		lineItems := make([]db.InvoiceLineItem, 0, len(items))
		for i, item := range items {
			created, err := q.CreateInvoiceLineItem(ctx, db.CreateInvoiceLineItemParams{
				InvoiceID:       invoice.ID,
				Description:     item.Description,
				Category:        textOrNull(item.Category),
				Quantity:        item.Quantity,
				UnitPriceCents:  item.UnitPriceCents,
				DiscountPercent: item.DiscountPercent,
				LineTotalCents:  item.LineTotalCents,
				DiscountCents:   item.DiscountCents,
				FinalCents:      item.FinalCents,
				Position:        int32(i),
			})
			if err != nil {
				return fmt.Errorf("failed to create line item %d: %w", i, err)
			}
			lineItems = append(lineItems, created)
		}

		if params.InitialPayment != nil {
			payment, updated, err := applyPayment(ctx, q, invoice, applyPaymentParams{
				Amount:      params.InitialPayment.Amount,
				Method:      params.InitialPayment.Method,
				Reference:   params.InitialPayment.Reference,
				ProcessedBy: params.CreatedBy,
			})
			if err != nil {
				return err
			}
			invoice = updated
			initialPayment = &payment
		}

		details = InvoiceDetails{Invoice: invoice, LineItems: lineItems}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, audit.Event{
		Actor:     params.CreatedBy,
		Action:    audit.ActionInvoiceCreated,
		InvoiceID: details.Invoice.ID,
		After:     snapshot(details.Invoice),
		At:        time.Now(),
	})
	if initialPayment != nil {
		s.record(ctx, audit.Event{
			Actor:     params.CreatedBy,
			Action:    audit.ActionPaymentAdded,
			InvoiceID: details.Invoice.ID,
			After:     snapshot(details.Invoice),
			At:        time.Now(),
		})
	}

	s.logger.Info("Invoice created",
		zap.String("invoice_id", details.Invoice.ID.String()),
		zap.String("invoice_number", details.Invoice.InvoiceNumber),
		zap.Int64("total_cents", details.Invoice.TotalCents))

	return &details, nil
}

// GetInvoiceDetails retrieves an invoice with its line items.
func (s *InvoiceService) GetInvoiceDetails(ctx context.Context, invoiceID uuid.UUID) (*InvoiceDetails, error) {
	invoice, err := s.store.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, asNotFound(err, "invoice", invoiceID.String())
	}

	lineItems, err := s.store.GetInvoiceLineItems(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get line items: %w", err)
	}

	return &InvoiceDetails{Invoice: invoice, LineItems: lineItems}, nil
}

// ListInvoicesParams filters the invoice listing.
type ListInvoicesParams struct {
	Status    string
	PatientID *uuid.UUID
	Limit     int32
	Offset    int32
}

// ListInvoices returns invoices matching the filters, newest first.
func (s *InvoiceService) ListInvoices(ctx context.Context, params ListInvoicesParams) ([]db.Invoice, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	patientID := pgtype.UUID{}
	if params.PatientID != nil {
		patientID = pgtype.UUID{Bytes: *params.PatientID, Valid: true}
	}

	invoices, err := s.store.ListInvoices(ctx, db.ListInvoicesParams{
		Status:    params.Status,
		PatientID: patientID,
		Limit:     limit,
		Offset:    params.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

// UpdateInvoiceDetailsParams carries the non-financial edits an invoice
// allows after creation.
type UpdateInvoiceDetailsParams struct {
	Notes              *string
	PaymentMethodLabel *string
	Actor              string
}

// UpdateInvoiceDetails edits notes and the payment-method label. Financial
// fields are never touched here.
func (s *InvoiceService) UpdateInvoiceDetails(ctx context.Context, invoiceID uuid.UUID, params UpdateInvoiceDetailsParams) (*db.Invoice, error) {
	before, err := s.store.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, asNotFound(err, "invoice", invoiceID.String())
	}
	if IsTerminal(before.Status) {
		return nil, &ConflictError{Message: fmt.Sprintf("invoice %s is %s and cannot be edited", before.InvoiceNumber, before.Status)}
	}

	invoice, err := s.store.UpdateInvoiceDetails(ctx, db.UpdateInvoiceDetailsParams{
		ID:                 invoiceID,
		Notes:              textPtrOrNull(params.Notes),
		PaymentMethodLabel: textPtrOrNull(params.PaymentMethodLabel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	s.record(ctx, audit.Event{
		Actor:     params.Actor,
		Action:    audit.ActionInvoiceUpdated,
		InvoiceID: invoiceID,
		Before:    snapshot(before),
		After:     snapshot(invoice),
		At:        time.Now(),
	})

	return &invoice, nil
}

// CancelInvoice transitions a never-paid invoice to cancelled. The guard
// and the status write share one transaction and row lock so a concurrent
// payment cannot slip in between them.
func (s *InvoiceService) CancelInvoice(ctx context.Context, invoiceID uuid.UUID, reason, actor string) (*db.Invoice, error) {
	var before, after db.Invoice

	err := s.store.ExecTx(ctx, func(q db.Querier) error {
		invoice, err := q.GetInvoiceForUpdate(ctx, invoiceID)
		if err != nil {
			return asNotFound(err, "invoice", invoiceID.String())
		}
		if err := CanCancel(invoice); err != nil {
			return err
		}

		cancelled, err := q.CancelInvoice(ctx, db.CancelInvoiceParams{
			ID:     invoiceID,
			Reason: textOrNull(reason),
		})
		if err != nil {
			return fmt.Errorf("failed to cancel invoice: %w", err)
		}

		before, after = invoice, cancelled
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, audit.Event{
		Actor:     actor,
		Action:    audit.ActionInvoiceCancel,
		InvoiceID: invoiceID,
		Before:    snapshot(before),
		After:     snapshot(after),
		At:        time.Now(),
	})

	s.logger.Info("Invoice cancelled",
		zap.String("invoice_id", invoiceID.String()),
		zap.String("reason", reason))

	return &after, nil
}

// RefundInvoice transitions a paid invoice to refunded, recording the
// reason. Terminal; the money movement itself is an external workflow.
func (s *InvoiceService) RefundInvoice(ctx context.Context, invoiceID uuid.UUID, reason, actor string) (*db.Invoice, error) {
	var before, after db.Invoice

	err := s.store.ExecTx(ctx, func(q db.Querier) error {
		invoice, err := q.GetInvoiceForUpdate(ctx, invoiceID)
		if err != nil {
			return asNotFound(err, "invoice", invoiceID.String())
		}
		if err := CanRefund(invoice); err != nil {
			return err
		}

		refunded, err := q.RefundInvoice(ctx, db.RefundInvoiceParams{
			ID:     invoiceID,
			Reason: textOrNull(reason),
		})
		if err != nil {
			return fmt.Errorf("failed to refund invoice: %w", err)
		}

		before, after = invoice, refunded
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, audit.Event{
		Actor:     actor,
		Action:    audit.ActionInvoiceRefund,
		InvoiceID: invoiceID,
		Before:    snapshot(before),
		After:     snapshot(after),
		At:        time.Now(),
	})

	return &after, nil
}

// record publishes an audit event. Sink failures are logged, not
// propagated: financial state has already committed.
func (s *InvoiceService) record(ctx context.Context, event audit.Event) {
	if err := s.sink.Record(ctx, event); err != nil {
		s.logger.Error("Failed to record audit event",
			zap.String("action", event.Action),
			zap.String("invoice_id", event.InvoiceID.String()),
			zap.Error(err))
	}
}

// Helper functions

func snapshot(inv db.Invoice) *audit.FinancialSnapshot {
	return &audit.FinancialSnapshot{
		SubtotalCents:     inv.SubtotalCents,
		BillDiscountCents: inv.BillDiscountCents,
		TaxCents:          inv.TaxCents,
		TotalCents:        inv.TotalCents,
		PaidCents:         inv.PaidCents,
		BalanceCents:      inv.BalanceCents,
		Status:            string(inv.Status),
	}
}

func asNotFound(err error, resource, id string) error {
	if errors.Is(err, db.ErrNoRows) {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return fmt.Errorf("failed to get %s: %w", resource, err)
}

func textOrNull(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func textPtrOrNull(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}
