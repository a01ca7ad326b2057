package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gmottab/cine-reservas/internal/app"
	"github.com/gmottab/cine-reservas/internal/model"
)

type SessionHandler struct {
	app *app.App
}

func NewSessionHandler(app *app.App) *SessionHandler {
	return &SessionHandler{
		app: app,
	}
}

type CreateSessionRequest struct {
	FilmTitle string    `json:"film_title" binding:"required"`
	Room      int       `json:"room" binding:"required,min=1,max=5"`
	Price     float64   `json:"price" binding:"required,min=15,max=70"`
	StartsAt  time.Time `json:"starts_at" binding:"required"`
}

type SessionResponse struct {
	ID              uint      `json:"id"`
	FilmTitle       string    `json:"film_title"`
	FilmDurationMin int       `json:"film_duration_min"`
	FilmGenre       string    `json:"film_genre"`
	FilmAuthor      string    `json:"film_author"`
	FilmReleaseDate time.Time `json:"film_release_date"`
	Room            int       `json:"room"`
	Price           float64   `json:"price"`
	StartsAt        time.Time `json:"starts_at"`
	Active          bool      `json:"active"`
}

func toSessionResponse(s *model.Session) SessionResponse {
	return SessionResponse{
		ID:              s.ID,
		FilmTitle:       s.FilmTitle,
		FilmDurationMin: s.FilmDurationMin,
		FilmGenre:       s.FilmGenre,
		FilmAuthor:      s.FilmAuthor,
		FilmReleaseDate: s.FilmReleaseDate,
		Room:            s.Room,
		Price:           s.Price,
		StartsAt:        s.StartsAt,
		Active:          s.Active,
	}
}

func (h *SessionHandler) HandleCreate(ctx *gin.Context) {
	var req CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	session, err := h.app.SessionService.CreateSession(ctx.Request.Context(), req.FilmTitle, req.Room, req.Price, req.StartsAt)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(201, toSessionResponse(session))
}

func (h *SessionHandler) HandleList(ctx *gin.Context) {
	sessions, err := h.app.SessionService.ListSessions()
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	resp := make([]SessionResponse, 0, len(sessions))
	for i := range sessions {
		resp = append(resp, toSessionResponse(&sessions[i]))
	}
	ctx.JSON(200, resp)
}

func (h *SessionHandler) HandleGet(ctx *gin.Context) {
	id, err := parseSessionID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(400, gin.H{"error": "Invalid session id"})
		return
	}
	session, err := h.app.SessionService.GetSessionByID(id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(200, toSessionResponse(session))
}

func (h *SessionHandler) HandleCancel(ctx *gin.Context) {
	id, err := parseSessionID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(400, gin.H{"error": "Invalid session id"})
		return
	}
	if err := h.app.SessionService.CancelSession(id); err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(200, gin.H{"message": "Session cancelled"})
}

func (h *SessionHandler) HandleReservations(ctx *gin.Context) {
	id, err := parseSessionID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(400, gin.H{"error": "Invalid session id"})
		return
	}
	reservations, err := h.app.SessionService.ReservationsOfSession(id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	resp := make([]ReservationResponse, 0, len(reservations))
	for i := range reservations {
		resp = append(resp, toReservationResponse(&reservations[i]))
	}
	ctx.JSON(200, resp)
}

func parseSessionID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
