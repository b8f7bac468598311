package dto

import "github.com/dccc/clubportal/internal/app/models"

// RegisterRequest represents a member registration request
type RegisterRequest struct {
	Name     string          `json:"name" binding:"required,min=2,max=100"`
	Email    string          `json:"email" binding:"required,email"`
	Phone    string          `json:"phone" binding:"required"`
	Batch    string          `json:"batch" binding:"required"`
	Province models.Province `json:"province" binding:"required"`
}

// LoginRequest represents a login request. The portal authenticates by
// e-mail only.
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}
