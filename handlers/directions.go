package handlers

import (
	"net/http"

	"pickbook/models"
	"pickbook/services/directions"
	"pickbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DirectionsHandler proxies route lookups for the area map.
type DirectionsHandler struct {
	DirectionsSvc directions.DirectionsService
}

// GetDirectionsHandler handles POST /api/booking/directions.
func (h *DirectionsHandler) GetDirectionsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.DirectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	route, err := h.DirectionsSvc.GetRoute(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Directions lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "No route found", err.Error())
		return
	}
	c.JSON(http.StatusOK, route)
}
