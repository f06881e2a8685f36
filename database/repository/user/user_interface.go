package userRepo

import (
	"pickbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	GetByEmailWithProjection(email string, projection bson.M) (*models.User, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
}
