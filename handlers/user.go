package handlers

import (
	"net/http"

	"pickbook/models"
	"pickbook/services/user"
	"pickbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves registration, sign-in, and profile endpoints.
type UserHandler struct {
	UserService user.UserService
}

// RegisterUserHandler handles POST /api/users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.UserRegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.UserService.RegisterUser(req)
	if err != nil {
		logger.Error("Registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.UserService.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		logger.Warn("Authentication failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfileHandler handles GET /api/users/me.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	usr, err := h.UserService.GetUserByID(userID)
	if err != nil {
		logger.Error("User not found", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateProfileHandler handles PUT /api/users/me.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	var req models.UserProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	usr, err := h.UserService.UpdateProfile(userID, req)
	if err != nil {
		logger.Error("Profile update failed", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdatePasswordHandler handles PUT /api/users/me/password.
func (h *UserHandler) UpdatePasswordHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.UserService.UpdatePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		logger.Warn("Password update failed", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// RevokeUserAuthTokenHandler handles DELETE /api/users/me/token.
func (h *UserHandler) RevokeUserAuthTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	if err := h.UserService.RevokeAuthToken(userID); err != nil {
		logger.Error("Token revocation failed", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// DeleteUserHandler handles DELETE /api/users/me.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	if err := h.UserService.DeleteUser(userID); err != nil {
		logger.Error("Delete error", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
