// Package pdf renders printable invoice documents.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"medibill-api/internal/db"
)

const (
	pageLeftMargin = 10.0
	tableRowHeight = 8.0
)

// Renderer produces PDF invoices.
type Renderer struct {
	hospitalName string
}

// NewRenderer creates a renderer stamping documents with the hospital name.
func NewRenderer(hospitalName string) *Renderer {
	if hospitalName == "" {
		hospitalName = "MediBill"
	}
	return &Renderer{hospitalName: hospitalName}
}

// Render lays out a single invoice with its line items and totals and
// returns the PDF bytes.
func (r *Renderer) Render(invoice db.Invoice, items []db.InvoiceLineItem, patient db.Patient) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Arial", "B", 16)
	doc.Cell(0, 10, r.hospitalName)
	doc.Ln(12)

	doc.SetFont("Arial", "B", 12)
	doc.Cell(0, 8, "Invoice "+invoice.InvoiceNumber)
	doc.Ln(8)

	doc.SetFont("Arial", "", 10)
	doc.Cell(0, 6, "Patient: "+patient.FullName+" (MRN "+patient.Mrn+")")
	doc.Ln(6)
	if invoice.CreatedAt.Valid {
		doc.Cell(0, 6, "Date: "+invoice.CreatedAt.Time.Format(time.DateOnly))
		doc.Ln(6)
	}
	doc.Cell(0, 6, "Status: "+string(invoice.Status))
	doc.Ln(10)

	r.renderItemTable(doc, items)
	r.renderTotals(doc, invoice)

	if invoice.Notes.Valid {
		doc.Ln(6)
		doc.SetFont("Arial", "I", 9)
		doc.MultiCell(0, 5, "Notes: "+invoice.Notes.String, "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) renderItemTable(doc *gofpdf.Fpdf, items []db.InvoiceLineItem) {
	headers := []struct {
		label string
		width float64
	}{
		{"Description", 80},
		{"Qty", 15},
		{"Unit Price", 30},
		{"Discount", 30},
		{"Amount", 30},
	}

	doc.SetFont("Arial", "B", 10)
	doc.SetFillColor(240, 240, 240)
	for _, h := range headers {
		doc.CellFormat(h.width, tableRowHeight, h.label, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Arial", "", 10)
	for _, item := range items {
		doc.CellFormat(80, tableRowHeight, item.Description, "1", 0, "L", false, 0, "")
		doc.CellFormat(15, tableRowHeight, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		doc.CellFormat(30, tableRowHeight, money(item.UnitPriceCents), "1", 0, "R", false, 0, "")
		doc.CellFormat(30, tableRowHeight, money(item.DiscountCents), "1", 0, "R", false, 0, "")
		doc.CellFormat(30, tableRowHeight, money(item.FinalCents), "1", 0, "R", false, 0, "")
		doc.Ln(-1)
	}
}

func (r *Renderer) renderTotals(doc *gofpdf.Fpdf, invoice db.Invoice) {
	rows := []struct {
		label string
		value int64
	}{
		{"Subtotal", invoice.SubtotalCents},
		{"Discount", invoice.BillDiscountCents},
		{fmt.Sprintf("Tax (%.2f%%)", invoice.TaxPercent), invoice.TaxCents},
		{"Total", invoice.TotalCents},
		{"Paid", invoice.PaidCents},
		{"Balance Due", invoice.BalanceCents},
	}

	doc.Ln(4)
	for _, row := range rows {
		doc.SetFont("Arial", "", 10)
		if row.label == "Total" || row.label == "Balance Due" {
			doc.SetFont("Arial", "B", 10)
		}
		doc.CellFormat(155, 6, row.label, "", 0, "R", false, 0, "")
		doc.CellFormat(30, 6, money(row.value), "", 0, "R", false, 0, "")
		doc.Ln(-1)
	}
}

func money(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}
