package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playden/backend/internal/services"
)

// GetInvoiceQR returns a scan-to-pay QR for an invoice
// @Summary Invoice payment QR
// @Description UPI pay intent and QR image for an invoice with an amount due
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice id"
// @Success 200 {object} object{invoice_id=string,upi_intent=string,qr_image=string}
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /invoices/{invoiceID}/qr [get]
func (h *POSHandler) GetInvoiceQR(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "invoiceID")

	intent, image, err := h.service.InvoiceQR(invoiceID)
	if err != nil {
		services.SendErrorResponse(w, err.Error(), services.HTTPStatus(err), nil)
		return
	}

	services.SendJSON(w, http.StatusOK, map[string]any{
		"invoice_id": invoiceID,
		"upi_intent": intent,
		"qr_image":   "data:image/png;base64," + image,
	})
}
