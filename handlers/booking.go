package handlers

import (
	"errors"
	"net/http"

	"pickbook/models"
	"pickbook/services/booking"
	"pickbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the reservation session flow and booking reads.
type BookingHandler struct {
	SessionSvc booking.BookingSessionService
	BookingSvc booking.BookingService
}

// respondSessionError maps service errors onto HTTP statuses: missing or
// foreign sessions are 404, selection problems are 422, wrong-stage calls
// are 409, everything else is 500 with a generic message.
func respondSessionError(c *gin.Context, err error) {
	var nferr *booking.NotFoundError
	if errors.As(err, &nferr) {
		c.JSON(http.StatusNotFound, gin.H{"error": nferr.Message})
		return
	}
	var verr *booking.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Message})
		return
	}
	var serr *booking.StageError
	if errors.As(err, &serr) {
		c.JSON(http.StatusConflict, gin.H{"error": serr.Error()})
		return
	}
	utils.GetLogger().Error("Booking session error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
}

// StartSessionHandler handles POST /api/booking/session.
func (h *BookingHandler) StartSessionHandler(c *gin.Context) {
	var input struct {
		AreaID string `json:"areaId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	userID := c.GetString("userID")

	session, slots, err := h.SessionSvc.InitiateSession(input.AreaID, userID)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session, "timeSlots": slots})
}

// GetSessionHandler handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSessionHandler(c *gin.Context) {
	session, slots, err := h.SessionSvc.GetSession(c.Param("sessionID"), c.GetString("userID"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "timeSlots": slots})
}

// ApplyActionHandler handles PUT /api/booking/session/:sessionID.
func (h *BookingHandler) ApplyActionHandler(c *gin.Context) {
	var action models.SessionAction
	if err := c.ShouldBindJSON(&action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.SessionSvc.ApplyAction(c.Param("sessionID"), c.GetString("userID"), action)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ConfirmSessionHandler handles POST /api/booking/session/:sessionID/confirm.
func (h *BookingHandler) ConfirmSessionHandler(c *gin.Context) {
	summary, err := h.SessionSvc.ConfirmSession(c.Param("sessionID"), c.GetString("userID"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// ReopenSessionHandler handles POST /api/booking/session/:sessionID/reopen.
func (h *BookingHandler) ReopenSessionHandler(c *gin.Context) {
	session, err := h.SessionSvc.ReopenSession(c.Param("sessionID"), c.GetString("userID"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SubmitBookingHandler handles POST /api/booking/session/:sessionID/submit.
// On success it returns the persisted booking plus the manager's payment
// details for the pending-payment dialog.
func (h *BookingHandler) SubmitBookingHandler(c *gin.Context) {
	var contact models.ContactDetails
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bookingRec, manager, err := h.SessionSvc.SubmitBooking(c.Param("sessionID"), c.GetString("userID"), contact)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": bookingRec, "manager": manager})
}

// CloseSessionHandler handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CloseSessionHandler(c *gin.Context) {
	if err := h.SessionSvc.CloseSession(c.Param("sessionID"), c.GetString("userID")); err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session closed"})
}

// GetBookingHandler handles GET /api/booking/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	id := c.Param("id")
	bookingRec, err := h.BookingSvc.GetBooking(id, c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookingRec)
}

// SendDetailsEmailHandler handles POST /api/booking/send-details-to-email.
func (h *BookingHandler) SendDetailsEmailHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input struct {
		BookingID string `json:"bookingId" binding:"required"`
		Email     string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.BookingSvc.SendDetailsEmail(input.BookingID, c.GetString("userID"), input.Email); err != nil {
		logger.Error("Failed to queue details email", zap.String("bookingId", input.BookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Email queued"})
}

// DecideBookingHandler handles PUT /api/booking/:id/decision (manager only).
func (h *BookingHandler) DecideBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input struct {
		Approved *bool `json:"approved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bookingRec, err := h.BookingSvc.DecideBooking(c.Param("id"), *input.Approved)
	if err != nil {
		logger.Error("Booking decision failed", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookingRec)
}
