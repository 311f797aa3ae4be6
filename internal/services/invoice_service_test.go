package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"medibill-api/internal/audit"
	"medibill-api/internal/db"
	"medibill-api/internal/logger"
	"medibill-api/internal/mocks"
	"medibill-api/internal/services"
)

func init() {
	logger.InitLogger()
}

// passthroughTx wires ExecTx so the transaction body runs against the same
// mock store, which lets a test script the queries inside the transaction.
func passthroughTx(store *mocks.MockStore) {
	store.EXPECT().ExecTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(db.Querier) error) error {
			return fn(store)
		})
}

func TestInvoiceService_CreateInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	service := services.NewInvoiceService(store, audit.NewLogSink(logger.Log))
	ctx := context.Background()

	patientID := uuid.New()
	invoiceID := uuid.New()

	items := []services.LineItemInput{
		{Description: "Consultation", Quantity: 2, UnitPrice: 100},
		{Description: "Lab work", Quantity: 1, UnitPrice: 50},
	}

	t.Run("computes discount and tax on creation", func(t *testing.T) {
		store.EXPECT().GetPatient(ctx, patientID).Return(db.Patient{ID: patientID}, nil)
		passthroughTx(store)
		store.EXPECT().NextInvoiceNumber(ctx).Return(int64(7), nil)
		store.EXPECT().CreateInvoice(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CreateInvoiceParams) (db.Invoice, error) {
				assert.Equal(t, fmt.Sprintf("INV-%d-000007", time.Now().Year()), arg.InvoiceNumber)
				assert.Equal(t, int64(25000), arg.SubtotalCents)
				assert.Equal(t, int64(2500), arg.BillDiscountCents)
				assert.Equal(t, int64(1125), arg.TaxCents)
				assert.Equal(t, int64(23625), arg.TotalCents)
				assert.Equal(t, int64(0), arg.PaidCents)
				assert.Equal(t, int64(23625), arg.BalanceCents)
				assert.Equal(t, db.InvoiceStatusPending, arg.Status)
				return db.Invoice{
					ID:            invoiceID,
					InvoiceNumber: arg.InvoiceNumber,
					PatientID:     arg.PatientID,
					Status:        arg.Status,
					SubtotalCents: arg.SubtotalCents,
					TotalCents:    arg.TotalCents,
					BalanceCents:  arg.BalanceCents,
				}, nil
			})
		store.EXPECT().CreateInvoiceLineItem(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CreateInvoiceLineItemParams) (db.InvoiceLineItem, error) {
				return db.InvoiceLineItem{
					InvoiceID:   arg.InvoiceID,
					Description: arg.Description,
					FinalCents:  arg.FinalCents,
					Position:    arg.Position,
				}, nil
			}).Times(2)

		details, err := service.CreateInvoice(ctx, services.CreateInvoiceParams{
			PatientID:           patientID,
			Items:               items,
			BillDiscountPercent: 10,
			TaxPercent:          5,
			CreatedBy:           "reception-1",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(23625), details.Invoice.TotalCents)
		assert.Equal(t, db.InvoiceStatusPending, details.Invoice.Status)
		require.Len(t, details.LineItems, 2)
		assert.Equal(t, int64(20000), details.LineItems[0].FinalCents)
		assert.Equal(t, int64(5000), details.LineItems[1].FinalCents)
	})

	t.Run("rejects empty line items before touching storage", func(t *testing.T) {
		_, err := service.CreateInvoice(ctx, services.CreateInvoiceParams{PatientID: patientID})

		var ve *services.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "items", ve.Field)
	})

	t.Run("rejects out of range bill discount percent", func(t *testing.T) {
		_, err := service.CreateInvoice(ctx, services.CreateInvoiceParams{
			PatientID:           patientID,
			Items:               items,
			BillDiscountPercent: 120,
		})

		var ve *services.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "bill_discount_percent", ve.Field)
	})

	t.Run("rejects a flat discount that drives the total negative", func(t *testing.T) {
		store.EXPECT().GetPatient(ctx, patientID).Return(db.Patient{ID: patientID}, nil)

		_, err := service.CreateInvoice(ctx, services.CreateInvoiceParams{
			PatientID:          patientID,
			Items:              []services.LineItemInput{{Description: "Consultation", Quantity: 1, UnitPrice: 50}},
			BillDiscountAmount: 100,
		})

		var ve *services.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "bill_discount_amount", ve.Field)
	})

	t.Run("unknown patient", func(t *testing.T) {
		store.EXPECT().GetPatient(ctx, patientID).Return(db.Patient{}, db.ErrNoRows)

		_, err := service.CreateInvoice(ctx, services.CreateInvoiceParams{
			PatientID: patientID,
			Items:     items,
		})

		var nf *services.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "patient", nf.Resource)
	})

	t.Run("records an initial payment through the ledger path", func(t *testing.T) {
		store.EXPECT().GetPatient(ctx, patientID).Return(db.Patient{ID: patientID}, nil)
		passthroughTx(store)
		store.EXPECT().NextInvoiceNumber(ctx).Return(int64(8), nil)
		store.EXPECT().CreateInvoice(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CreateInvoiceParams) (db.Invoice, error) {
				return db.Invoice{
					ID:            invoiceID,
					InvoiceNumber: arg.InvoiceNumber,
					Status:        arg.Status,
					TotalCents:    arg.TotalCents,
					BalanceCents:  arg.BalanceCents,
				}, nil
			})
		store.EXPECT().CreateInvoiceLineItem(ctx, gomock.Any()).Return(db.InvoiceLineItem{}, nil).Times(2)
		store.EXPECT().CreatePayment(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CreatePaymentParams) (db.Payment, error) {
				assert.Equal(t, int64(10000), arg.AmountCents)
				assert.Equal(t, db.PaymentStatusCompleted, arg.Status)
				return db.Payment{ID: uuid.New(), InvoiceID: arg.InvoiceID, AmountCents: arg.AmountCents}, nil
			})
		store.EXPECT().GetCompletedPaymentTotal(ctx, invoiceID).Return(int64(10000), nil)
		store.EXPECT().UpdateInvoiceFinancials(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.UpdateInvoiceFinancialsParams) (db.Invoice, error) {
				assert.Equal(t, int64(10000), arg.PaidCents)
				assert.Equal(t, int64(13625), arg.BalanceCents)
				assert.Equal(t, db.InvoiceStatusPartial, arg.Status)
				return db.Invoice{
					ID:           arg.ID,
					Status:       arg.Status,
					TotalCents:   23625,
					PaidCents:    arg.PaidCents,
					BalanceCents: arg.BalanceCents,
				}, nil
			})

		details, err := service.CreateInvoice(ctx, services.CreateInvoiceParams{
			PatientID:           patientID,
			Items:               items,
			BillDiscountPercent: 10,
			TaxPercent:          5,
			InitialPayment:      &services.InitialPaymentParams{Amount: 100, Method: "cash"},
			CreatedBy:           "reception-1",
		})

		require.NoError(t, err)
		assert.Equal(t, db.InvoiceStatusPartial, details.Invoice.Status)
		assert.Equal(t, int64(13625), details.Invoice.BalanceCents)
	})

	t.Run("transaction failure surfaces as an error", func(t *testing.T) {
		store.EXPECT().GetPatient(ctx, patientID).Return(db.Patient{ID: patientID}, nil)
		store.EXPECT().ExecTx(gomock.Any(), gomock.Any()).Return(errors.New("deadlock detected"))

		_, err := service.CreateInvoice(ctx, services.CreateInvoiceParams{
			PatientID: patientID,
			Items:     items,
		})

		require.Error(t, err)
		assert.Equal(t, services.KindInternal, services.Kind(err))
	})
}

func TestInvoiceService_GetInvoiceDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	service := services.NewInvoiceService(store, audit.NewLogSink(logger.Log))
	ctx := context.Background()

	invoiceID := uuid.New()

	t.Run("returns invoice with line items", func(t *testing.T) {
		store.EXPECT().GetInvoice(ctx, invoiceID).Return(db.Invoice{ID: invoiceID, TotalCents: 23625}, nil)
		store.EXPECT().GetInvoiceLineItems(ctx, invoiceID).Return([]db.InvoiceLineItem{
			{InvoiceID: invoiceID, Description: "Consultation"},
		}, nil)

		details, err := service.GetInvoiceDetails(ctx, invoiceID)

		require.NoError(t, err)
		assert.Equal(t, invoiceID, details.Invoice.ID)
		require.Len(t, details.LineItems, 1)
	})

	t.Run("unknown invoice", func(t *testing.T) {
		store.EXPECT().GetInvoice(ctx, invoiceID).Return(db.Invoice{}, db.ErrNoRows)

		_, err := service.GetInvoiceDetails(ctx, invoiceID)

		var nf *services.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "invoice", nf.Resource)
	})
}

func TestInvoiceService_ListInvoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	service := services.NewInvoiceService(store, audit.NewLogSink(logger.Log))
	ctx := context.Background()

	t.Run("applies the default page size", func(t *testing.T) {
		store.EXPECT().ListInvoices(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.ListInvoicesParams) ([]db.Invoice, error) {
				assert.Equal(t, int32(20), arg.Limit)
				assert.Equal(t, int32(0), arg.Offset)
				return []db.Invoice{}, nil
			})

		_, err := service.ListInvoices(ctx, services.ListInvoicesParams{})
		require.NoError(t, err)
	})

	t.Run("caps the page size", func(t *testing.T) {
		store.EXPECT().ListInvoices(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.ListInvoicesParams) ([]db.Invoice, error) {
				assert.Equal(t, int32(100), arg.Limit)
				return []db.Invoice{}, nil
			})

		_, err := service.ListInvoices(ctx, services.ListInvoicesParams{Limit: 500})
		require.NoError(t, err)
	})

	t.Run("passes status and patient filters through", func(t *testing.T) {
		patientID := uuid.New()
		store.EXPECT().ListInvoices(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.ListInvoicesParams) ([]db.Invoice, error) {
				assert.Equal(t, "partial", arg.Status)
				require.True(t, arg.PatientID.Valid)
				assert.Equal(t, patientID[:], arg.PatientID.Bytes[:])
				return []db.Invoice{{Status: db.InvoiceStatusPartial}}, nil
			})

		invoices, err := service.ListInvoices(ctx, services.ListInvoicesParams{
			Status:    "partial",
			PatientID: &patientID,
		})
		require.NoError(t, err)
		require.Len(t, invoices, 1)
	})
}

func TestInvoiceService_UpdateInvoiceDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	service := services.NewInvoiceService(store, audit.NewLogSink(logger.Log))
	ctx := context.Background()

	invoiceID := uuid.New()
	notes := "follow-up scheduled"

	t.Run("edits notes on an open invoice", func(t *testing.T) {
		store.EXPECT().GetInvoice(ctx, invoiceID).Return(db.Invoice{ID: invoiceID, Status: db.InvoiceStatusPending}, nil)
		store.EXPECT().UpdateInvoiceDetails(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.UpdateInvoiceDetailsParams) (db.Invoice, error) {
				assert.Equal(t, notes, arg.Notes.String)
				assert.True(t, arg.Notes.Valid)
				assert.False(t, arg.PaymentMethodLabel.Valid)
				return db.Invoice{ID: invoiceID, Notes: arg.Notes}, nil
			})

		invoice, err := service.UpdateInvoiceDetails(ctx, invoiceID, services.UpdateInvoiceDetailsParams{
			Notes: &notes,
			Actor: "reception-1",
		})

		require.NoError(t, err)
		assert.Equal(t, notes, invoice.Notes.String)
	})

	t.Run("terminal invoices cannot be edited", func(t *testing.T) {
		store.EXPECT().GetInvoice(ctx, invoiceID).Return(db.Invoice{ID: invoiceID, Status: db.InvoiceStatusCancelled}, nil)

		_, err := service.UpdateInvoiceDetails(ctx, invoiceID, services.UpdateInvoiceDetailsParams{Notes: &notes})

		var ce *services.ConflictError
		require.ErrorAs(t, err, &ce)
	})
}

func TestInvoiceService_CancelInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	service := services.NewInvoiceService(store, audit.NewLogSink(logger.Log))
	ctx := context.Background()

	invoiceID := uuid.New()

	t.Run("cancels a never-paid invoice", func(t *testing.T) {
		passthroughTx(store)
		store.EXPECT().GetInvoiceForUpdate(ctx, invoiceID).Return(db.Invoice{
			ID:           invoiceID,
			Status:       db.InvoiceStatusPending,
			TotalCents:   23625,
			BalanceCents: 23625,
		}, nil)
		store.EXPECT().CancelInvoice(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CancelInvoiceParams) (db.Invoice, error) {
				assert.Equal(t, "duplicate entry", arg.Reason.String)
				return db.Invoice{ID: invoiceID, Status: db.InvoiceStatusCancelled, CancelReason: arg.Reason}, nil
			})

		invoice, err := service.CancelInvoice(ctx, invoiceID, "duplicate entry", "reception-1")

		require.NoError(t, err)
		assert.Equal(t, db.InvoiceStatusCancelled, invoice.Status)
	})

	t.Run("refuses once payments exist", func(t *testing.T) {
		passthroughTx(store)
		store.EXPECT().GetInvoiceForUpdate(ctx, invoiceID).Return(db.Invoice{
			ID:        invoiceID,
			Status:    db.InvoiceStatusPartial,
			PaidCents: 10000,
		}, nil)

		_, err := service.CancelInvoice(ctx, invoiceID, "duplicate entry", "reception-1")

		var ce *services.ConflictError
		require.ErrorAs(t, err, &ce)
		assert.Contains(t, ce.Message, "recorded payments")
	})

	t.Run("unknown invoice", func(t *testing.T) {
		passthroughTx(store)
		store.EXPECT().GetInvoiceForUpdate(ctx, invoiceID).Return(db.Invoice{}, db.ErrNoRows)

		_, err := service.CancelInvoice(ctx, invoiceID, "", "reception-1")

		var nf *services.NotFoundError
		require.ErrorAs(t, err, &nf)
	})
}

func TestInvoiceService_RefundInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	service := services.NewInvoiceService(store, audit.NewLogSink(logger.Log))
	ctx := context.Background()

	invoiceID := uuid.New()

	t.Run("refunds a paid invoice", func(t *testing.T) {
		passthroughTx(store)
		store.EXPECT().GetInvoiceForUpdate(ctx, invoiceID).Return(db.Invoice{
			ID:         invoiceID,
			Status:     db.InvoiceStatusPaid,
			TotalCents: 23625,
			PaidCents:  23625,
		}, nil)
		store.EXPECT().RefundInvoice(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.RefundInvoiceParams) (db.Invoice, error) {
				return db.Invoice{ID: invoiceID, Status: db.InvoiceStatusRefunded, RefundReason: arg.Reason}, nil
			})

		invoice, err := service.RefundInvoice(ctx, invoiceID, "billing dispute", "billing-admin")

		require.NoError(t, err)
		assert.Equal(t, db.InvoiceStatusRefunded, invoice.Status)
	})

	t.Run("only paid invoices can be refunded", func(t *testing.T) {
		passthroughTx(store)
		store.EXPECT().GetInvoiceForUpdate(ctx, invoiceID).Return(db.Invoice{
			ID:     invoiceID,
			Status: db.InvoiceStatusPartial,
		}, nil)

		_, err := service.RefundInvoice(ctx, invoiceID, "billing dispute", "billing-admin")

		var ce *services.ConflictError
		require.ErrorAs(t, err, &ce)
	})
}
