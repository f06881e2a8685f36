package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"pickbook/database/repository/area"
	"pickbook/services/storage"
	"pickbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler stores area and court images (manager only).
type StorageHandler struct {
	StorageSvc storage.StorageService
	AreaRepo   areaRepo.AreaRepository
}

func NewStorageHandler(svc storage.StorageService, repo areaRepo.AreaRepository) *StorageHandler {
	return &StorageHandler{StorageSvc: svc, AreaRepo: repo}
}

func (h *StorageHandler) uploadFormFile(c *gin.Context, folder string) (string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return "", false
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload", "detail": err.Error()})
		return "", false
	}
	defer os.Remove(tempFilePath)

	url, err := h.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, folder)
	if err != nil {
		utils.GetLogger().Error("Upload failed", zap.String("folder", folder), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return "", false
	}
	return url, true
}

// UploadAreaImageHandler handles POST /api/areas/:areaId/image.
func (h *StorageHandler) UploadAreaImageHandler(c *gin.Context) {
	areaID := c.Param("areaId")

	url, ok := h.uploadFormFile(c, "areas")
	if !ok {
		return
	}
	if err := h.AreaRepo.SetAreaImage(areaID, url); err != nil {
		utils.GetLogger().Error("Failed to store area image URL", zap.String("areaId", areaID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}

// UploadCourtImageHandler handles POST /api/areas/:areaId/courts/:courtId/image.
func (h *StorageHandler) UploadCourtImageHandler(c *gin.Context) {
	areaID := c.Param("areaId")
	courtID := c.Param("courtId")

	url, ok := h.uploadFormFile(c, "courts")
	if !ok {
		return
	}
	if err := h.AreaRepo.SetCourtImage(areaID, courtID, url); err != nil {
		utils.GetLogger().Error("Failed to store court image URL",
			zap.String("areaId", areaID), zap.String("courtId", courtID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
