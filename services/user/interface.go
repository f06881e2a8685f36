package user

import (
	"pickbook/database/repository/user"
	"pickbook/models"
)

// UserService handles registration, authentication, and profile management.
type UserService interface {
	RegisterUser(req models.UserRegistrationData) (*models.AuthResponse, error)
	AuthenticateUser(email, password string) (*models.AuthResponse, error)
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateProfile(userID string, update models.UserProfileUpdate) (*models.User, error)
	UpdatePassword(userID, currentPassword, newPassword string) error
	RevokeAuthToken(userID string) error
	DeleteUser(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
