package auth

import (
	"goalpool/internal/user"
)

// LoginRequest is a player login: the playercode is the credential.
type LoginRequest struct {
	PlayerCode string `json:"playercode" binding:"required" example:"12345678"`
}

// AdminLoginRequest enters admin mode: playercode plus the account password.
type AdminLoginRequest struct {
	PlayerCode string `json:"playercode" binding:"required" example:"12345678"`
	Password   string `json:"password" binding:"required" example:"password123"`
}

// SetPasswordRequest assigns an admin account its password.
type SetPasswordRequest struct {
	UserID   uint   `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// AuthResponse is the payload of a successful login.
type AuthResponse struct {
	AccessToken string    `json:"access_token"`
	User        user.User `json:"user"`
}
