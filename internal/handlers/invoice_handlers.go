package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medibill-api/internal/pdf"
	"medibill-api/internal/services"
)

// InvoiceHandler handles invoice lifecycle operations.
type InvoiceHandler struct {
	invoiceService *services.InvoiceService
	patientService *services.PatientService
	renderer       *pdf.Renderer
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(invoiceService *services.InvoiceService, patientService *services.PatientService, renderer *pdf.Renderer) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		patientService: patientService,
		renderer:       renderer,
	}
}

// LineItemRequest is one chargeable item in a create request.
type LineItemRequest struct {
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Quantity        int32   `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
}

// InitialPaymentRequest is an optional payment taken at creation time.
type InitialPaymentRequest struct {
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
}

// CreateInvoiceRequest is the invoice creation payload.
type CreateInvoiceRequest struct {
	PatientID           string                 `json:"patient_id" binding:"required"`
	Items               []LineItemRequest      `json:"items"`
	BillDiscountPercent float64                `json:"bill_discount_percent"`
	BillDiscountAmount  float64                `json:"bill_discount_amount"`
	TaxPercent          float64                `json:"tax_percent"`
	InitialPayment      *InitialPaymentRequest `json:"initial_payment"`
	Notes               string                 `json:"notes"`
	PaymentMethodLabel  string                 `json:"payment_method_label"`
}

// UpdateInvoiceRequest edits the non-financial fields of an invoice.
type UpdateInvoiceRequest struct {
	Notes              *string `json:"notes"`
	PaymentMethodLabel *string `json:"payment_method_label"`
}

// ReasonRequest carries the reason for a cancel or refund.
type ReasonRequest struct {
	Reason string `json:"reason"`
}

// CreateInvoice godoc
// @Summary Create an invoice
// @Description Validates line items, computes discount and tax, and creates the invoice atomically
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBadRequest(c, "", "invalid request body: "+err.Error())
		return
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		sendBadRequest(c, "patient_id", "invalid patient ID format")
		return
	}

	items := make([]services.LineItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.LineItemInput{
			Description:     item.Description,
			Category:        item.Category,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountPercent: item.DiscountPercent,
		})
	}

	params := services.CreateInvoiceParams{
		PatientID:           patientID,
		Items:               items,
		BillDiscountPercent: req.BillDiscountPercent,
		BillDiscountAmount:  req.BillDiscountAmount,
		TaxPercent:          req.TaxPercent,
		Notes:               req.Notes,
		PaymentMethodLabel:  req.PaymentMethodLabel,
		CreatedBy:           actorFrom(c),
	}
	if req.InitialPayment != nil {
		params.InitialPayment = &services.InitialPaymentParams{
			Amount:    req.InitialPayment.Amount,
			Method:    req.InitialPayment.Method,
			Reference: req.InitialPayment.Reference,
		}
	}

	details, err := h.invoiceService.CreateInvoice(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, toInvoiceResponse(details.Invoice, details.LineItems))
}

// GetInvoice godoc
// @Summary Get invoice by ID
// @Tags invoices
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{invoice_id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	details, err := h.invoiceService.GetInvoiceDetails(c.Request.Context(), invoiceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toInvoiceResponse(details.Invoice, details.LineItems))
}

// ListInvoices godoc
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param status query string false "Filter by status"
// @Param patient_id query string false "Filter by patient"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Number of invoices to skip"
// @Success 200 {object} map[string]interface{}
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	limit, offset, err := parsePageParams(c)
	if err != nil {
		sendBadRequest(c, "", err.Error())
		return
	}

	params := services.ListInvoicesParams{
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	}
	if raw := c.Query("patient_id"); raw != "" {
		patientID, err := uuid.Parse(raw)
		if err != nil {
			sendBadRequest(c, "patient_id", "invalid patient ID format")
			return
		}
		params.PatientID = &patientID
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendList(c, toInvoiceListResponse(invoices))
}

// UpdateInvoice godoc
// @Summary Update invoice details
// @Description Edits notes and payment method label; financial fields are immutable
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Param request body UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /invoices/{invoice_id} [patch]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	var req UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBadRequest(c, "", "invalid request body: "+err.Error())
		return
	}

	invoice, err := h.invoiceService.UpdateInvoiceDetails(c.Request.Context(), invoiceID, services.UpdateInvoiceDetailsParams{
		Notes:              req.Notes,
		PaymentMethodLabel: req.PaymentMethodLabel,
		Actor:              actorFrom(c),
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toInvoiceResponse(*invoice, nil))
}

// CancelInvoice godoc
// @Summary Cancel an invoice
// @Description Cancels an invoice that has no recorded payments
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Param request body ReasonRequest false "Cancellation reason"
// @Success 200 {object} InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /invoices/{invoice_id}/cancel [post]
func (h *InvoiceHandler) CancelInvoice(c *gin.Context) {
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	var req ReasonRequest
	_ = c.ShouldBindJSON(&req)

	invoice, err := h.invoiceService.CancelInvoice(c.Request.Context(), invoiceID, req.Reason, actorFrom(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toInvoiceResponse(*invoice, nil))
}

// RefundInvoice godoc
// @Summary Refund a paid invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Param request body ReasonRequest false "Refund reason"
// @Success 200 {object} InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /invoices/{invoice_id}/refund [post]
func (h *InvoiceHandler) RefundInvoice(c *gin.Context) {
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	var req ReasonRequest
	_ = c.ShouldBindJSON(&req)

	invoice, err := h.invoiceService.RefundInvoice(c.Request.Context(), invoiceID, req.Reason, actorFrom(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, toInvoiceResponse(*invoice, nil))
}

// DownloadInvoicePDF godoc
// @Summary Download invoice as PDF
// @Tags invoices
// @Produce application/pdf
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{invoice_id}/pdf [get]
func (h *InvoiceHandler) DownloadInvoicePDF(c *gin.Context) {
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	details, err := h.invoiceService.GetInvoiceDetails(c.Request.Context(), invoiceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	patient, err := h.patientService.GetPatient(c.Request.Context(), details.Invoice.PatientID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	out, err := h.renderer.Render(details.Invoice, details.LineItems, *patient)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("%s.pdf", details.Invoice.InvoiceNumber)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", out)
}

func parseInvoiceID(c *gin.Context) (uuid.UUID, bool) {
	invoiceID, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		sendBadRequest(c, "invoice_id", "invalid invoice ID format")
		return uuid.UUID{}, false
	}
	return invoiceID, true
}
