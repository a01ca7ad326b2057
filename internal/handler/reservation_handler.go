package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gmottab/cine-reservas/internal/app"
	"github.com/gmottab/cine-reservas/internal/model"
)

type ReservationHandler struct {
	app *app.App
}

func NewReservationHandler(app *app.App) *ReservationHandler {
	return &ReservationHandler{
		app: app,
	}
}

type CreateReservationRequest struct {
	ClientID  string `json:"client_id" binding:"required,uuid"`
	SessionID uint   `json:"session_id" binding:"required"`
}

type ReservationResponse struct {
	ID            string `json:"id"`
	ClientID      string `json:"client_id"`
	SessionID     uint   `json:"session_id"`
	Confirmed     bool   `json:"confirmed"`
	Active        bool   `json:"active"`
	StatusMessage string `json:"message"`
}

func toReservationResponse(r *model.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:            r.ID,
		ClientID:      r.ClientID,
		SessionID:     r.SessionID,
		Confirmed:     r.Confirmed,
		Active:        r.Active,
		StatusMessage: r.StatusMessage,
	}
}

func (h *ReservationHandler) HandleCreate(ctx *gin.Context) {
	var req CreateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	reservation, err := h.app.ReservationService.CreateReservation(ctx.Request.Context(), req.ClientID, req.SessionID)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(201, toReservationResponse(reservation))
}

// HandleGet serves the lookup the payments deployment runs before emitting
// a payment request. The owning client id comes in the query string; a
// mismatch looks exactly like a missing reservation.
func (h *ReservationHandler) HandleGet(ctx *gin.Context) {
	clientID := ctx.Query("client_id")
	if clientID == "" {
		ctx.JSON(400, gin.H{"error": "client_id is required"})
		return
	}

	reservation, err := h.app.ReservationService.GetReservation(clientID, ctx.Param("id"))
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(200, toReservationResponse(reservation))
}

type CancelReservationRequest struct {
	ClientID string `json:"client_id" binding:"required,uuid"`
}

func (h *ReservationHandler) HandleCancel(ctx *gin.Context) {
	var req CancelReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	if err := h.app.ReservationService.CancelReservation(req.ClientID, ctx.Param("id")); err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(200, gin.H{"message": "Reservation cancelled"})
}
