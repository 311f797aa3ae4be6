package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// InvoiceStatus enumerates the bill lifecycle states.
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPartial   InvoiceStatus = "partial"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
	InvoiceStatusRefunded  InvoiceStatus = "refunded"
)

// PaymentStatus enumerates ledger entry states. Payments are append-only;
// a correction is a new reversing payment, never an edit.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusReversed  PaymentStatus = "reversed"
)

type Patient struct {
	ID        uuid.UUID
	Mrn       string
	FullName  string
	Email     pgtype.Text
	Phone     pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Invoice struct {
	ID                  uuid.UUID
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
	CancelReason        pgtype.Text
	RefundReason        pgtype.Text
	CreatedBy           string
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
}

type InvoiceLineItem struct {
	ID              uuid.UUID
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

type Payment struct {
	ID          uuid.UUID
	InvoiceID   uuid.UUID
	AmountCents int64
	Method      string
	Status      PaymentStatus
	Reference   pgtype.Text
	ProcessedBy string
	CreatedAt   pgtype.Timestamptz
}
