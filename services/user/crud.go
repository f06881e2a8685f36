package user

import (
	"fmt"
	"strings"
	"time"

	"pickbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetUserByID fetches a user without the credential fields.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByIDWithProjection(userID, bson.M{"password_hash": 0, "token_hash": 0})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if userRec == nil {
		return nil, fmt.Errorf("user with id %s not found", userID)
	}
	return userRec, nil
}

func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	userRec, err := s.Repo.GetByEmailWithProjection(strings.ToLower(strings.TrimSpace(email)), bson.M{"password_hash": 0, "token_hash": 0})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if userRec == nil {
		return nil, fmt.Errorf("user with email %s not found", email)
	}
	return userRec, nil
}

// UpdateProfile sets the provided fields; blanks leave the stored value alone.
func (s *DefaultUserService) UpdateProfile(userID string, update models.UserProfileUpdate) (*models.User, error) {
	set := bson.M{"updated_at": time.Now()}
	if v := strings.TrimSpace(update.FirstName); v != "" {
		set["first_name"] = v
	}
	if v := strings.TrimSpace(update.LastName); v != "" {
		set["last_name"] = v
	}
	if v := strings.TrimSpace(update.Phone); v != "" {
		set["phone"] = v
	}

	if err := s.Repo.UpdateSetDocument(userID, set); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.GetUserByID(userID)
}

func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.RevokeAuthToken(userID); err != nil {
		return err
	}
	return s.Repo.Delete(userID)
}
