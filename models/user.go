package models

import "time"

// User represents a platform user and their profile record.
type User struct {
	ID           string    `bson:"id" json:"id"`
	FirstName    string    `bson:"first_name" json:"firstName"`
	LastName     string    `bson:"last_name" json:"lastName"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         string    `bson:"role" json:"role"` // "user" or "manager"
	PasswordHash string    `bson:"password_hash" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserRegistrationData is the sign-up payload.
type UserRegistrationData struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" binding:"required,min=8"`
}

// UserProfileUpdate carries the editable profile fields.
type UserProfileUpdate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// AuthResponse is returned on successful sign-in or sign-up.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
