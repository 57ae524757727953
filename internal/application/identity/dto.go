package identity

import (
	"github.com/emprendia/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// SignupRequest is the input for creating a business account with its owner
type SignupRequest struct {
	BusinessName        string `json:"business_name" binding:"required,max=200"`
	BusinessDescription string `json:"business_description"`
	OwnerName           string `json:"owner_name" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	Password            string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the input for authenticating a user
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse is returned on signup and login
type AuthResponse struct {
	TenantID uuid.UUID       `json:"tenant_id"`
	UserID   uuid.UUID       `json:"user_id"`
	Email    string          `json:"email"`
	Tokens   *auth.TokenPair `json:"tokens"`
}
