package dto

import (
	"github.com/golang-jwt/jwt/v5"

	"lumina/internal/domain"
)

// AuthClaims defines the custom claims for JWT.
type AuthClaims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"` // always "access"
	jwt.RegisteredClaims
}

// LoginRequest represents the request body for a local login.
// @Description Request body for logging in with a name and email
type LoginRequest struct {
	Name  string `json:"name" example:"Ada Lovelace"`
	Email string `json:"email" example:"ada@example.com"`
}

// LoginResponse carries the session token and the learner's profile.
// @Description Response body for a successful login
type LoginResponse struct {
	AccessToken string              `json:"access_token"`
	TokenType   string              `json:"token_type" example:"Bearer"`
	User        *domain.UserProfile `json:"user"`
}

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Message string `json:"message"`
}
