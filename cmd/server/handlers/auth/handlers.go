package auth

import (
	"context"
	"errors"

	"alerta-vecinal/cmd/server/handlers/httperr"
	"alerta-vecinal/internal/logger"
	"alerta-vecinal/internal/services/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Wire messages kept verbatim from the legacy API.
const (
	MsgMissingFields      = "Todos los campos son obligatorios"
	MsgUserExists         = "Usuario ya existe"
	MsgRegistered         = "Registrado exitosamente"
	MsgInvalidCredentials = "Credenciales inválidas"
	MsgRegisterFailed     = "Error al registrar usuario"
	MsgLoginFailed        = "Error interno"
)

// AuthService defines the interface for auth service
type AuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest) (*auth.AuthResponse, error)
	Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error)
}

// Handlers contains the auth HTTP handlers
type Handlers struct {
	authService AuthService
	validator   *validator.Validate
}

// NewHandlers creates new auth handlers
func NewHandlers(authService AuthService, validator *validator.Validate) *Handlers {
	return &Handlers{
		authService: authService,
		validator:   validator,
	}
}

// RegisterResponse is the legacy success envelope for /register
type RegisterResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Token     string `json:"token"`
	UsuarioID string `json:"usuarioId,omitempty"`
	Nombre    string `json:"nombre,omitempty"`
}

// LoginResponse is the legacy success envelope for /login
type LoginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	Nombre    string `json:"nombre"`
	UsuarioID string `json:"usuarioId,omitempty"`
}

// Register handles user registration
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req auth.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.L().Warn("failed to parse register request body", "handler", "Register", "error", err)
		return httperr.Auth(400, MsgMissingFields)
	}

	if err := h.validator.Struct(req); err != nil {
		logger.L().Warn("register request validation failed", "handler", "Register", "error", err)
		return httperr.Auth(400, MsgMissingFields)
	}

	resp, err := h.authService.Register(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			return httperr.Auth(400, MsgMissingFields)
		case errors.Is(err, auth.ErrDuplicate):
			return httperr.Auth(400, MsgUserExists)
		default:
			logger.L().Error("register service failed", "handler", "Register", "email", req.Email, "error", err)
			return httperr.Auth(500, MsgRegisterFailed)
		}
	}

	return c.JSON(RegisterResponse{
		Success:   true,
		Message:   MsgRegistered,
		Token:     resp.Token,
		UsuarioID: resp.User.ID.Hex(),
		Nombre:    resp.User.Nombre,
	})
}

// Login handles user authentication
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req auth.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.L().Warn("failed to parse login request body", "handler", "Login", "error", err)
		return httperr.Auth(401, MsgInvalidCredentials)
	}

	if err := h.validator.Struct(req); err != nil {
		logger.L().Warn("login request validation failed", "handler", "Login", "error", err)
		return httperr.Auth(401, MsgInvalidCredentials)
	}

	resp, err := h.authService.Login(c.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			// Deliberately the same body for unknown email and wrong password.
			return httperr.Auth(401, MsgInvalidCredentials)
		}
		logger.L().Error("login service failed", "handler", "Login", "error", err)
		return httperr.Auth(500, MsgLoginFailed)
	}

	return c.JSON(LoginResponse{
		Success:   true,
		Token:     resp.Token,
		Nombre:    resp.User.Nombre,
		UsuarioID: resp.User.ID.Hex(),
	})
}
