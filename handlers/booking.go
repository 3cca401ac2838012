package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"urbanpilgrim/models"
	"urbanpilgrim/services/booking"
	"urbanpilgrim/utils"
)

// BookingHandler exposes the booking configurator over HTTP. Each endpoint is
// a single one-shot mutation of a Redis-held session; there are no retries and
// no server-side booking state beyond the session itself.
type BookingHandler struct {
	Service booking.SessionService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.SessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// StartSession creates a configurator session for an experience.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		ExperienceID string `json:"experienceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	session, err := h.Service.StartSession(input.ExperienceID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetSession returns the live session and its derived quote.
func (h *BookingHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.Service.GetSession(sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	quote, err := h.Service.Quote(sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "quote": quote})
}

// SelectDateRange sets the selected package window.
func (h *BookingHandler) SelectDateRange(c *gin.Context) {
	var input models.DateRange
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date range", err.Error())
		return
	}

	session, err := h.Service.SelectDateRange(c.Param("sessionID"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectOccupancy sets the occupancy type.
func (h *BookingHandler) SelectOccupancy(c *gin.Context) {
	var input struct {
		Occupancy models.Occupancy `json:"occupancy" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid occupancy", err.Error())
		return
	}

	session, err := h.Service.SelectOccupancy(c.Param("sessionID"), input.Occupancy)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ChangeQuantity adjusts the quantity by a delta (floored at 1).
func (h *BookingHandler) ChangeQuantity(c *gin.Context) {
	var input struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid quantity delta", err.Error())
		return
	}

	session, err := h.Service.ChangeQuantity(c.Param("sessionID"), input.Delta)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetQuote returns the derived price snapshot.
func (h *BookingHandler) GetQuote(c *gin.Context) {
	quote, err := h.Service.Quote(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": quote})
}

// BookNow produces the review hand-off URL. The route carries optional auth:
// anonymous callers get the login-wrapped URL so the selection survives the
// redirect round trip.
func (h *BookingHandler) BookNow(c *gin.Context) {
	_, authenticated := c.Get("userID")

	handoffURL, err := h.Service.BookNow(c.Param("sessionID"), authenticated)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirectUrl": handoffURL})
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONError(c, http.StatusUnprocessableEntity, vErr.Message, "")
		return
	}
	h.Logger.Error("booking handler failure", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, utils.GenericErrorMessage, err.Error())
}
