// Package audit publishes immutable records of billing mutations to an
// external collaborator. The core never reads these back; sinks are
// write-only and pluggable so financial state stays decoupled from
// observability concerns.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FinancialSnapshot captures the derived money fields of an invoice at a
// point in time.
type FinancialSnapshot struct {
	SubtotalCents     int64  `json:"subtotal_cents"`
	BillDiscountCents int64  `json:"bill_discount_cents"`
	TaxCents          int64  `json:"tax_cents"`
	TotalCents        int64  `json:"total_cents"`
	PaidCents         int64  `json:"paid_cents"`
	BalanceCents      int64  `json:"balance_cents"`
	Status            string `json:"status"`
}

// Event is one immutable audit record. Every mutating billing operation
// emits exactly one.
type Event struct {
	Actor     string             `json:"actor"`
	Action    string             `json:"action"`
	InvoiceID uuid.UUID          `json:"invoice_id"`
	Before    *FinancialSnapshot `json:"before,omitempty"`
	After     *FinancialSnapshot `json:"after,omitempty"`
	At        time.Time          `json:"at"`
}

// Actions emitted by the billing core.
const (
	ActionInvoiceCreated = "invoice.created"
	ActionInvoiceUpdated = "invoice.updated"
	ActionPaymentAdded   = "payment.added"
	ActionInvoiceCancel  = "invoice.cancelled"
	ActionInvoiceRefund  = "invoice.refunded"
)

// Sink receives audit events.
type Sink interface {
	Record(ctx context.Context, event Event) error
	Close() error
}

// LogSink writes audit events to the structured log. Used when no broker
// is configured.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a sink backed by the given logger.
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Record(_ context.Context, event Event) error {
	fields := []zap.Field{
		zap.String("actor", event.Actor),
		zap.String("action", event.Action),
		zap.String("invoice_id", event.InvoiceID.String()),
		zap.Time("at", event.At),
	}
	if event.Before != nil {
		fields = append(fields, zap.Any("before", event.Before))
	}
	if event.After != nil {
		fields = append(fields, zap.Any("after", event.After))
	}
	s.logger.Info("audit event", fields...)
	return nil
}

func (s *LogSink) Close() error { return nil }
