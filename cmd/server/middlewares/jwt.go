package middlewares

import (
	"alerta-vecinal/cmd/server/handlers/httperr"
	"alerta-vecinal/internal/config"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWT returns a configured Fiber middleware that:
//
//   - validates the Bearer token signature using cfg.JWTSecret
//   - makes sure the token carries "user_id" and "nombre" claims
//   - stores those values in ctx.Locals("usuarioID") / ctx.Locals("nombre") so
//     downstream handlers can trust them.
//
// On any problem it bubbles up a 401 via the global httperr handler.
func JWT(cfg config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		SuccessHandler: func(c *fiber.Ctx) error {
			// Token already verified at this point.
			token := c.Locals("user").(*jwt.Token)
			claims, _ := token.Claims.(jwt.MapClaims)

			usuarioID, ok := claims["user_id"].(string)
			if !ok || usuarioID == "" {
				return httperr.Fail(httperr.ErrUnauthorized)
			}

			nombre, ok := claims["nombre"].(string)
			if !ok || nombre == "" {
				return httperr.Fail(httperr.ErrUnauthorized)
			}

			c.Locals("usuarioID", usuarioID)
			c.Locals("nombre", nombre)
			return c.Next()
		},

		// Override the default "unauthorized" JSON to match the project style
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return httperr.Fail(httperr.ErrUnauthorized)
		},
	})
}
