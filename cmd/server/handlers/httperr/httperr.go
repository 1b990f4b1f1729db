package httperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Envelope selects which legacy JSON error shape gets rendered. The auth
// endpoints historically answered {"success":false,"message":...} while the
// record endpoints answered {"ok":false,"mensaje":...}; both are preserved.
type Envelope int

const (
	// EnvelopeAPI renders {"ok":false,"mensaje":"..."}
	EnvelopeAPI Envelope = iota
	// EnvelopeAuth renders {"success":false,"message":"..."}
	EnvelopeAuth
)

// E represents an HTTP error with status code, message and wire envelope
type E struct {
	Status   int
	Message  string
	Envelope Envelope
}

// Error implements the error interface
func (e E) Error() string {
	return e.Message
}

// JSON renders the error in its envelope
func (e E) JSON(c *fiber.Ctx) error {
	switch e.Envelope {
	case EnvelopeAuth:
		return c.Status(e.Status).JSON(fiber.Map{"success": false, "message": e.Message})
	default:
		return c.Status(e.Status).JSON(fiber.Map{"ok": false, "mensaje": e.Message})
	}
}

// Fail returns the error for Fiber's global error handler to process
func Fail(err E) error {
	return err
}

// Auth builds an auth-envelope error
func Auth(status int, message string) error {
	return Fail(E{Status: status, Message: message, Envelope: EnvelopeAuth})
}

// API builds a record-envelope error
func API(status int, message string) error {
	return Fail(E{Status: status, Message: message, Envelope: EnvelopeAPI})
}

// Pre-defined HTTP errors
var (
	ErrBadRequest   = E{Status: 400, Message: "Solicitud inválida"}
	ErrUnauthorized = E{Status: 401, Message: "Token inválido o expirado"}
	ErrInternal     = E{Status: 500, Message: "Error interno del servidor"}
)

// Handler is the global error handler for Fiber. Domain errors are expected
// to arrive already mapped to an E; anything else collapses to a generic 500
// so no internal detail leaks to the caller.
func Handler(c *fiber.Ctx, err error) error {
	var e E
	if errors.As(err, &e) {
		return e.JSON(c)
	}

	var fiberError *fiber.Error
	if errors.As(err, &fiberError) {
		return c.Status(fiberError.Code).JSON(fiber.Map{"ok": false, "mensaje": fiberError.Message})
	}

	return ErrInternal.JSON(c)
}
