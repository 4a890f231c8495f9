package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-vault/internal/shared/auth"
	"resume-vault/internal/shared/metrics"
)

var (
	// ErrMissingFields is returned when email or password is empty.
	ErrMissingFields = errors.New("email and password required")
	// ErrWrongPassword is returned when the password does not match.
	ErrWrongPassword = errors.New("incorrect password")
)

// Service contains signup and login logic.
type Service struct {
	Repo   Repo
	Tokens *auth.TokenService
}

// NewService constructs a Service.
func NewService(repo Repo, tokens *auth.TokenService) *Service {
	return &Service{Repo: repo, Tokens: tokens}
}

// Signup registers a new account and returns a session token.
func (s *Service) Signup(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrMissingFields
	}

	start := time.Now()
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}
	metrics.ObservePasswordHashMs(float64(time.Since(start).Microseconds()) / 1000.0)

	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return "", err
	}

	metrics.IncSignup()
	return s.Tokens.Sign(user.ID, user.Email)
}

// Login verifies credentials and returns a session token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrMissingFields
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", ErrWrongPassword
	}

	metrics.IncLogin()
	return s.Tokens.Sign(user.ID, user.Email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
