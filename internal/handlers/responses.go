package handlers

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"medibill-api/internal/db"
	"medibill-api/internal/services"
)

// PatientResponse is the API shape of a patient.
type PatientResponse struct {
	ID        string    `json:"id"`
	Object    string    `json:"object"`
	MRN       string    `json:"mrn"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LineItemResponse is the API shape of one invoice line item. Money fields
// are decimal amounts; cents stay internal.
type LineItemResponse struct {
	ID              string  `json:"id"`
	Description     string  `json:"description"`
	Category        string  `json:"category,omitempty"`
	Quantity        int32   `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
	LineTotal       float64 `json:"line_total"`
	Discount        float64 `json:"discount"`
	Amount          float64 `json:"amount"`
}

// InvoiceResponse is the API shape of an invoice.
type InvoiceResponse struct {
	ID                  string             `json:"id"`
	Object              string             `json:"object"`
	InvoiceNumber       string             `json:"invoice_number"`
	PatientID           string             `json:"patient_id"`
	Status              string             `json:"status"`
	Subtotal            float64            `json:"subtotal"`
	BillDiscountPercent float64            `json:"bill_discount_percent"`
	BillDiscount        float64            `json:"bill_discount"`
	TaxPercent          float64            `json:"tax_percent"`
	Tax                 float64            `json:"tax"`
	Total               float64            `json:"total"`
	Paid                float64            `json:"paid"`
	Balance             float64            `json:"balance"`
	Notes               string             `json:"notes,omitempty"`
	PaymentMethodLabel  string             `json:"payment_method_label,omitempty"`
	CancelReason        string             `json:"cancel_reason,omitempty"`
	RefundReason        string             `json:"refund_reason,omitempty"`
	CreatedBy           string             `json:"created_by"`
	CreatedAt           time.Time          `json:"created_at"`
	LineItems           []LineItemResponse `json:"line_items,omitempty"`
}

// PaymentResponse is the API shape of one ledger entry.
type PaymentResponse struct {
	ID          string    `json:"id"`
	InvoiceID   string    `json:"invoice_id"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	Reference   string    `json:"reference,omitempty"`
	ProcessedBy string    `json:"processed_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// PaymentResultResponse reports the invoice position after a payment.
type PaymentResultResponse struct {
	PaymentID string  `json:"payment_id"`
	Balance   float64 `json:"balance"`
	Status    string  `json:"status"`
}

func toPatientResponse(p db.Patient) PatientResponse {
	return PatientResponse{
		ID:        p.ID.String(),
		Object:    "patient",
		MRN:       p.Mrn,
		FullName:  p.FullName,
		Email:     p.Email.String,
		Phone:     p.Phone.String,
		CreatedAt: timeOf(p.CreatedAt),
	}
}

func toLineItemResponse(item db.InvoiceLineItem) LineItemResponse {
	return LineItemResponse{
		ID:              item.ID.String(),
		Description:     item.Description,
		Category:        item.Category.String,
		Quantity:        item.Quantity,
		UnitPrice:       services.FromCents(item.UnitPriceCents),
		DiscountPercent: item.DiscountPercent,
		LineTotal:       services.FromCents(item.LineTotalCents),
		Discount:        services.FromCents(item.DiscountCents),
		Amount:          services.FromCents(item.FinalCents),
	}
}

func toInvoiceResponse(inv db.Invoice, items []db.InvoiceLineItem) InvoiceResponse {
	resp := InvoiceResponse{
		ID:                  inv.ID.String(),
		Object:              "invoice",
		InvoiceNumber:       inv.InvoiceNumber,
		PatientID:           inv.PatientID.String(),
		Status:              string(inv.Status),
		Subtotal:            services.FromCents(inv.SubtotalCents),
		BillDiscountPercent: inv.BillDiscountPercent,
		BillDiscount:        services.FromCents(inv.BillDiscountCents),
		TaxPercent:          inv.TaxPercent,
		Tax:                 services.FromCents(inv.TaxCents),
		Total:               services.FromCents(inv.TotalCents),
		Paid:                services.FromCents(inv.PaidCents),
		Balance:             services.FromCents(inv.BalanceCents),
		Notes:               inv.Notes.String,
		PaymentMethodLabel:  inv.PaymentMethodLabel.String,
		CancelReason:        inv.CancelReason.String,
		RefundReason:        inv.RefundReason.String,
		CreatedBy:           inv.CreatedBy,
		CreatedAt:           timeOf(inv.CreatedAt),
	}
	for _, item := range items {
		resp.LineItems = append(resp.LineItems, toLineItemResponse(item))
	}
	return resp
}

func toInvoiceListResponse(invoices []db.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceResponse(inv, nil))
	}
	return out
}

func toPaymentResponse(p db.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID.String(),
		InvoiceID:   p.InvoiceID.String(),
		Amount:      services.FromCents(p.AmountCents),
		Method:      p.Method,
		Status:      string(p.Status),
		Reference:   p.Reference.String,
		ProcessedBy: p.ProcessedBy,
		CreatedAt:   timeOf(p.CreatedAt),
	}
}

func timeOf(ts pgtype.Timestamptz) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return ts.Time
}
