package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"movie-discovery/internal/models"
	"movie-discovery/internal/repository"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// AuthService registers and logs in demo users.
type AuthService struct {
	users    *repository.UserStore
	tokens   *TokenManager
	demoMode bool
}

// NewAuthService creates an AuthService. In demo mode login accepts any
// password and creates unknown users.
func NewAuthService(users *repository.UserStore, tokens *TokenManager, demoMode bool) *AuthService {
	return &AuthService{users: users, tokens: tokens, demoMode: demoMode}
}

// Register creates a user and returns a token for it.
func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidRequest, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user, err := s.users.CreateUser(strings.TrimSpace(req.Username), req.Email, string(hash))
	if err != nil {
		return nil, err
	}

	slog.Info("user registered", "user_id", user.ID)
	return s.respond(user, "User registered successfully")
}

// Login authenticates a user by email.
func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidRequest, err)
	}

	user, err := s.users.GetUserByEmail(req.Email)
	switch {
	case errors.Is(err, models.ErrNotFound) && s.demoMode:
		user, err = s.createDemoUser(req)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, models.ErrNotFound):
		return nil, fmt.Errorf("%w: unknown email", models.ErrInvalidCredentials)
	case err != nil:
		return nil, err
	case !s.demoMode:
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			return nil, fmt.Errorf("%w: password mismatch", models.ErrInvalidCredentials)
		}
	}

	return s.respond(user, "Login successful")
}

// Profile returns the public view of a user.
func (s *AuthService) Profile(userID string) (models.UserView, error) {
	user, err := s.users.GetUser(userID)
	if err != nil {
		return models.UserView{}, err
	}
	return user.View(), nil
}

// Authenticate validates a bearer token and returns the user id in it.
func (s *AuthService) Authenticate(token string) (string, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

func (s *AuthService) createDemoUser(req models.LoginRequest) (*models.User, error) {
	username, _, _ := strings.Cut(strings.TrimSpace(req.Email), "@")
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user, err := s.users.CreateUser(username, req.Email, string(hash))
	if err != nil {
		return nil, err
	}
	slog.Info("demo user created on login", "user_id", user.ID)
	return user, nil
}

func (s *AuthService) respond(user *models.User, msg string) (*models.AuthResponse, error) {
	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: user.View(), Token: token, Success: true, Message: msg}, nil
}
