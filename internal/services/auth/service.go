package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"alerta-vecinal/internal/config"
	"alerta-vecinal/internal/utils/crypto"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service handles authentication business logic
type Service struct {
	repo   UsersRepo
	config config.Config
	log    *slog.Logger
}

// NewService creates a new auth service
func NewService(repo UsersRepo, cfg config.Config, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		config: cfg,
		log:    log,
	}
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a user login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents the result of successful authentication
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Register creates a new user and issues a token for it.
//
// The FindByEmail call is only an advisory fast path: two concurrent
// registrations can both pass it. The unique index on email created by the
// users repository is the hard backstop, surfacing here as ErrDuplicate
// from Create.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.Nombre == "" || req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	email := normalizeEmail(req.Email)

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrDuplicate
	}

	hashedPassword, err := crypto.HashPassword(req.Password, s.config.BcryptCost)
	if err != nil {
		s.log.Error("failed to hash password", "error", err)
		return nil, errors.New("failed to process password")
	}

	now := time.Now()
	user := &User{
		ID:           bson.NewObjectID(),
		Nombre:       req.Nombre,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, ErrDuplicate
		}
		s.log.Error("failed to create user", "error", err)
		return nil, errors.New("failed to create user")
	}

	token, err := signToken(user, s.config.JWTSecret, now)
	if err != nil {
		s.log.Error("failed to sign token", "error", err)
		return nil, ErrGenToken
	}

	return &AuthResponse{User: user, Token: token}, nil
}

// Login authenticates a user and issues a fresh token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := normalizeEmail(req.Email)

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		s.log.Debug("login lookup failed", "error", err)
		return nil, ErrInvalidCredentials
	}

	if err := crypto.CheckPassword(req.Password, user.PasswordHash); err != nil {
		s.log.Debug("password mismatch", "user_id", user.ID.Hex())
		return nil, ErrInvalidCredentials
	}

	token, err := signToken(user, s.config.JWTSecret, time.Now())
	if err != nil {
		s.log.Error("failed to sign token", "error", err)
		return nil, ErrGenToken
	}

	return &AuthResponse{User: user, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
