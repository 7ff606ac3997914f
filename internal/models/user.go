package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account stored in the users collection
type User struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name"`
	Email             string             `json:"email" bson:"email"` // unique index, see user repository
	Password          string             `json:"-" bson:"password"`  // bcrypt hash, never serialized
	ProfilePictureURL string             `json:"profilePictureUrl,omitempty" bson:"profile_picture_url,omitempty"`
	FirebaseUID       string             `json:"-" bson:"firebase_uid,omitempty"`
	CreatedAt         time.Time          `json:"createdAt" bson:"created_at"`
}

// UserSummary is the author projection joined into post and comment responses
type UserSummary struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
}

// Summary projects a user down to the fields exposed alongside posts and comments.
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:                u.ID.Hex(),
		Name:              u.Name,
		ProfilePictureURL: u.ProfilePictureURL,
	}
}

// RegisterRequest defines the request body for local registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest defines the request body for local sign-in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the request body for profile updates
type UpdateProfileRequest struct {
	Name              string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty" validate:"omitempty,url"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
