package dto

import (
	"time"

	"github.com/google/uuid"
)

// LoginRequest represents the admin login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// AdminResponse represents the signed-in admin account
type AdminResponse struct {
	ID        uuid.UUID `json:"adminId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	AdminID     uuid.UUID `json:"adminId"`
	Email       string    `json:"email"`
}
