package models

import "time"

// User is a demo account held in the in-memory user store.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserView is the public part of a user.
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// View strips private fields.
func (u User) View() UserView {
	return UserView{ID: u.ID, Username: u.Username, Email: u.Email}
}

// RegisterRequest is the request body for registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User    UserView `json:"user"`
	Token   string   `json:"token"`
	Success bool     `json:"success"`
	Message string   `json:"message"`
}

// ChatRequest is the request body for the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the chat endpoint reply.
type ChatResponse struct {
	Response  string `json:"response"`
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
}

// MaxChatMessageLength bounds chat input, in characters.
const MaxChatMessageLength = 1000
