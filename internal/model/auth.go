package model

import (
	"errors"
	"time"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse is returned on successful login.
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Name      string    `json:"name"`
	Redirect  string    `json:"redirect"`
}

// Auth errors
var ErrInvalidCredentials = errors.New("invalid email or password")
