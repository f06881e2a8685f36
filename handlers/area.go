package handlers

import (
	"net/http"

	"pickbook/models"
	"pickbook/services/area"
	"pickbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AreaHandler serves the area catalogue.
type AreaHandler struct {
	AreaService area.AreaService
}

// GetAreasHandler handles GET /api/areas/fetch.
func (h *AreaHandler) GetAreasHandler(c *gin.Context) {
	logger := utils.GetLogger()

	areas, err := h.AreaService.GetAreas()
	if err != nil {
		logger.Error("Failed to fetch areas", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch areas"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

// GetAreaHandler handles GET /api/booking/areas/:areaId.
func (h *AreaHandler) GetAreaHandler(c *gin.Context) {
	logger := utils.GetLogger()
	areaID := c.Param("areaId")

	a, err := h.AreaService.GetArea(areaID)
	if err != nil {
		logger.Warn("Area not found", zap.String("areaId", areaID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

// SearchAreasHandler handles GET /api/areas/search?q=.
func (h *AreaHandler) SearchAreasHandler(c *gin.Context) {
	logger := utils.GetLogger()
	query := c.Query("q")

	areas, err := h.AreaService.SearchAreas(query)
	if err != nil {
		logger.Error("Area search failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

// CreateAreaHandler handles POST /api/areas (manager only).
func (h *AreaHandler) CreateAreaHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var a models.Area
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	if err := h.AreaService.CreateArea(&a); err != nil {
		logger.Error("Failed to create area", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, a)
}

// UpdateAreaHandler handles PUT /api/areas/:areaId (manager only).
func (h *AreaHandler) UpdateAreaHandler(c *gin.Context) {
	logger := utils.GetLogger()
	areaID := c.Param("areaId")

	var a models.Area
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	a.ID = areaID

	if err := h.AreaService.UpdateArea(&a); err != nil {
		logger.Error("Failed to update area", zap.String("areaId", areaID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteAreaHandler handles DELETE /api/areas/:areaId (manager only).
func (h *AreaHandler) DeleteAreaHandler(c *gin.Context) {
	logger := utils.GetLogger()
	areaID := c.Param("areaId")

	if err := h.AreaService.DeleteArea(areaID); err != nil {
		logger.Error("Failed to delete area", zap.String("areaId", areaID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Area deleted"})
}
