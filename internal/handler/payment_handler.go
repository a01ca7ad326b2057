package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gmottab/cine-reservas/internal/app"
)

type PaymentHandler struct {
	app *app.App
}

func NewPaymentHandler(app *app.App) *PaymentHandler {
	return &PaymentHandler{
		app: app,
	}
}

type RequestPaymentRequest struct {
	ClientID      string  `json:"client_id" binding:"required,uuid"`
	ReservationID string  `json:"reservation_id" binding:"required,uuid"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
}

func (h *PaymentHandler) HandleRequestPayment(ctx *gin.Context) {
	var req RequestPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	err := h.app.PaymentWorkflow.RequestPayment(ctx.Request.Context(), req.ClientID, req.ReservationID, req.Amount)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(202, gin.H{
		"message": "Payment request accepted",
		"status":  "PENDING_CONFIRMATION",
	})
}
