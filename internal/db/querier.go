package db

import (
	"context"

	"github.com/google/uuid"
)

// Querier is the query surface services depend on. Kept as an interface so
// services can be tested against a gomock implementation.
type Querier interface {
	CreatePatient(ctx context.Context, arg CreatePatientParams) (Patient, error)
	GetPatient(ctx context.Context, id uuid.UUID) (Patient, error)
	ListPatients(ctx context.Context, arg ListPatientsParams) ([]Patient, error)

	CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error)
	CreateInvoiceLineItem(ctx context.Context, arg CreateInvoiceLineItemParams) (InvoiceLineItem, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (Invoice, error)
	GetInvoiceForUpdate(ctx context.Context, id uuid.UUID) (Invoice, error)
	GetInvoiceLineItems(ctx context.Context, invoiceID uuid.UUID) ([]InvoiceLineItem, error)
	ListInvoices(ctx context.Context, arg ListInvoicesParams) ([]Invoice, error)
	NextInvoiceNumber(ctx context.Context) (int64, error)
	UpdateInvoiceFinancials(ctx context.Context, arg UpdateInvoiceFinancialsParams) (Invoice, error)
	UpdateInvoiceDetails(ctx context.Context, arg UpdateInvoiceDetailsParams) (Invoice, error)
	CancelInvoice(ctx context.Context, arg CancelInvoiceParams) (Invoice, error)
	RefundInvoice(ctx context.Context, arg RefundInvoiceParams) (Invoice, error)

	CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error)
	GetCompletedPaymentTotal(ctx context.Context, invoiceID uuid.UUID) (int64, error)
	ListPaymentsByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]Payment, error)
}

var _ Querier = (*Queries)(nil)
