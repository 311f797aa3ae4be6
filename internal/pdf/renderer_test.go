package pdf_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medibill-api/internal/db"
	"medibill-api/internal/pdf"
)

func TestRenderer_Render(t *testing.T) {
	renderer := pdf.NewRenderer("General Hospital")

	invoiceID := uuid.New()
	invoice := db.Invoice{
		ID:                invoiceID,
		InvoiceNumber:     "INV-2026-000012",
		Status:            db.InvoiceStatusPartial,
		SubtotalCents:     25000,
		BillDiscountCents: 2500,
		TaxPercent:        5,
		TaxCents:          1125,
		TotalCents:        23625,
		PaidCents:         10000,
		BalanceCents:      13625,
		Notes:             pgtype.Text{String: "settled at discharge", Valid: true},
	}
	items := []db.InvoiceLineItem{
		{InvoiceID: invoiceID, Description: "Consultation", Quantity: 2, UnitPriceCents: 10000, LineTotalCents: 20000, FinalCents: 20000},
		{InvoiceID: invoiceID, Description: "Lab work", Quantity: 1, UnitPriceCents: 5000, LineTotalCents: 5000, FinalCents: 5000},
	}
	patient := db.Patient{ID: uuid.New(), Mrn: "MRN-10001", FullName: "Asha Verma"}

	out, err := renderer.Render(invoice, items, patient)

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderer_RenderEmptyItems(t *testing.T) {
	renderer := pdf.NewRenderer("")

	out, err := renderer.Render(db.Invoice{InvoiceNumber: "INV-2026-000013"}, nil, db.Patient{FullName: "Asha Verma", Mrn: "MRN-10001"})

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
