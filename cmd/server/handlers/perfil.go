package handlers

import "github.com/gofiber/fiber/v2"

// Perfil echoes the identity recovered from a verified token. It is the only
// protected endpoint and mostly exists to exercise token verification.
func Perfil(c *fiber.Ctx) error {
	usuarioID := c.Locals("usuarioID").(string)
	nombre := c.Locals("nombre").(string)
	return c.JSON(fiber.Map{
		"ok":        true,
		"usuarioId": usuarioID,
		"nombre":    nombre,
	})
}
