package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pickbook/models"
	"pickbook/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenValidity = 72 * time.Hour

// RegisterUser validates the sign-up payload, checks for duplicates, persists
// the user, and returns an authenticated session.
func (s *DefaultUserService) RegisterUser(req models.UserRegistrationData) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return nil, fmt.Errorf("all fields are required")
	}

	existing, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	userRec := &models.User{
		ID:           uuid.New().String(),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		Role:         "user",
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(userRec); err != nil {
		utils.GetLogger().Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(userRec)
}

// AuthenticateUser verifies the credentials and returns a fresh token. The
// error message never reveals which of email or password was wrong.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	userRec, err := s.Repo.GetByEmailWithProjection(email, nil)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(userRec)
}

// RevokeAuthToken invalidates the user's current token: the stored hash is
// cleared and the cached copy dropped, so middleware validation fails.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"token_hash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	ctx := context.Background()
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("failed to drop cached token", zap.String("userId", userID), zap.Error(err))
	}
	return nil
}

// UpdatePassword verifies the current password before storing the new hash.
// The existing token is revoked so other sessions sign out.
func (s *DefaultUserService) UpdatePassword(userID, currentPassword, newPassword string) error {
	userRec, err := s.Repo.GetByIDWithProjection(userID, nil)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if userRec == nil {
		return fmt.Errorf("user not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Repo.UpdateSetDocument(userID, bson.M{
		"password_hash": string(hash),
		"updated_at":    time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return s.RevokeAuthToken(userID)
}

// issueToken signs a JWT, stores its hash on the user record, and caches the
// hash for the auth middleware's fast path.
func (s *DefaultUserService) issueToken(userRec *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(userRec.ID, bson.M{"token_hash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	ctx := context.Background()
	cacheKey := utils.AuthCachePrefix + userRec.ID
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, tokenHash, tokenValidity).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache token hash", zap.String("userId", userRec.ID), zap.Error(err))
	}

	userRec.TokenHash = tokenHash
	return &models.AuthResponse{Token: token, User: *userRec}, nil
}
