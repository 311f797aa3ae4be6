package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medibill-api/internal/services"
)

// PaymentHandler exposes the payment ledger of an invoice.
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// AddPaymentRequest is the payload for recording one payment.
type AddPaymentRequest struct {
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
}

// AddPayment godoc
// @Summary Record a payment
// @Description Appends a payment to the invoice ledger and recomputes balance and status atomically
// @Tags payments
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Param request body AddPaymentRequest true "Payment details"
// @Success 200 {object} PaymentResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Overpayment or terminal invoice"
// @Router /invoices/{invoice_id}/payments [post]
func (h *PaymentHandler) AddPayment(c *gin.Context) {
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	var req AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBadRequest(c, "", "invalid request body: "+err.Error())
		return
	}

	result, err := h.paymentService.AddPayment(c.Request.Context(), invoiceID, services.AddPaymentParams{
		Amount:      req.Amount,
		Method:      req.Method,
		Reference:   req.Reference,
		ProcessedBy: actorFrom(c),
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, PaymentResultResponse{
		PaymentID: result.PaymentID.String(),
		Balance:   services.FromCents(result.BalanceCents),
		Status:    string(result.Status),
	})
}

// ListPayments godoc
// @Summary List payments for an invoice
// @Tags payments
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{invoice_id}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	invoiceID, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), invoiceID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	sendList(c, out)
}
