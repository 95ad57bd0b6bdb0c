package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type paymentPayload struct {
	RentalID int64  `json:"rental_id" binding:"required"`
	Method   string `json:"method" binding:"required"`
}

// GET /api/payments/pending
func (h Handler) ListPendingPayments(c *gin.Context) {
	list, err := h.payments(c).ListPending(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rentals": list})
}

// POST /api/payments
func (h Handler) RecordPayment(c *gin.Context) {
	var p paymentPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	pay, err := h.payments(c).RecordPayment(c.Request.Context(), p.RentalID, p.Method)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pay)
}

// GET /api/payments/:id/receipt returns the receipt PDF inline.
func (h Handler) GetPaymentReceipt(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	pdfBytes, filename, err := h.docs(c).GenerateReceipt(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
