package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role classifies what a user can do on the platform
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
	RoleMentor    Role = "mentor"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleRecruiter, RoleMentor, RoleAdmin:
		return true
	}
	return false
}

// User represents a platform account stored in MongoDB
type User struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Username    string               `json:"username" bson:"username"`
	Email       string               `json:"email" bson:"email"`
	Password    string               `json:"-" bson:"password"` // bcrypt hash, never serialized
	Role        Role                 `json:"role" bson:"role"`
	Headline    string               `json:"headline" bson:"headline"`
	Bio         string               `json:"bio" bson:"bio"`
	Skills      []string             `json:"skills" bson:"skills"`
	Education   string               `json:"education" bson:"education"`
	Location    string               `json:"location" bson:"location"`
	Industry    string               `json:"industry" bson:"industry"`
	Website     string               `json:"website" bson:"website"`
	Connections []primitive.ObjectID `json:"connections" bson:"connections"`
	SavedPosts  []primitive.ObjectID `json:"saved_posts" bson:"saved_posts"`
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
}

// RegisterRequest defines the request body for account registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=candidate recruiter mentor admin"`
}

// LoginRequest defines the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the request body for profile updates.
// All fields are optional; Skills accepts either an array of strings or a
// single comma-separated string.
type UpdateProfileRequest struct {
	Username  string      `json:"username" validate:"omitempty,min=3,max=30"`
	Headline  *string     `json:"headline"`
	Bio       *string     `json:"bio"`
	Education *string     `json:"education"`
	Location  *string     `json:"location"`
	Industry  *string     `json:"industry"`
	Website   *string     `json:"website"`
	Skills    interface{} `json:"skills"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
