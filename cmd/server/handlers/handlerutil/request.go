package handlerutil

import (
	"alerta-vecinal/cmd/server/handlers/httperr"
	"alerta-vecinal/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ParseAndValidateBody parses the request body into req and validates it.
// Both failure modes surface as the supplied fail error so each endpoint
// keeps its legacy status code and envelope.
func ParseAndValidateBody(c *fiber.Ctx, req any, v *validator.Validate, handlerName string, fail httperr.E) error {
	if err := c.BodyParser(req); err != nil {
		logger.L().Warn("failed to parse request body", "handler", handlerName, "error", err)
		return httperr.Fail(fail)
	}

	if err := v.Struct(req); err != nil {
		logger.L().Warn("request validation failed", "handler", handlerName, "error", err)
		return httperr.Fail(fail)
	}

	return nil
}
