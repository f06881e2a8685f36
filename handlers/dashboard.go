package handlers

import (
	"net/http"

	"pickbook/services/dashboard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the per-user dashboard views.
type DashboardHandler struct {
	DashboardSvc dashboard.DashboardService
}

// GetSummaryHandler handles GET /api/dashboard/summary.
func (h *DashboardHandler) GetSummaryHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.GetString("userID")

	summary, err := h.DashboardSvc.GetSummary(userID)
	if err != nil {
		logger.Error("Failed to build dashboard summary", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetMyBookingsHandler handles GET /api/dashboard/my-bookings.
func (h *DashboardHandler) GetMyBookingsHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.GetString("userID")

	bookings, err := h.DashboardSvc.GetMyBookings(userID)
	if err != nil {
		logger.Error("Failed to fetch bookings", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetNotificationsHandler handles GET /api/dashboard/notifications.
func (h *DashboardHandler) GetNotificationsHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.GetString("userID")

	notifs, err := h.DashboardSvc.GetNotifications(userID)
	if err != nil {
		logger.Error("Failed to fetch notifications", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifs})
}

// MarkNotificationReadHandler handles PUT /api/dashboard/notifications/:id/read.
func (h *DashboardHandler) MarkNotificationReadHandler(c *gin.Context) {
	userID := c.GetString("userID")
	notifID := c.Param("id")

	if err := h.DashboardSvc.MarkNotificationRead(userID, notifID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked read"})
}

// GetMembershipAreasHandler handles GET /api/dashboard/membership-areas.
func (h *DashboardHandler) GetMembershipAreasHandler(c *gin.Context) {
	logger := getLogger(c)

	areas, err := h.DashboardSvc.GetMembershipAreas()
	if err != nil {
		logger.Error("Failed to fetch membership areas", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

// GetMembershipPlansHandler handles GET /api/dashboard/membership-plans/:areaId.
func (h *DashboardHandler) GetMembershipPlansHandler(c *gin.Context) {
	logger := getLogger(c)
	areaID := c.Param("areaId")

	plans, err := h.DashboardSvc.GetMembershipPlans(areaID)
	if err != nil {
		logger.Error("Failed to fetch membership plans", zap.String("areaId", areaID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}
