package http

import "github.com/gofiber/fiber/v2"

// renderErro responde con el template error.html y el status indicado.
// Las variables del template siguen el contrato "nombre + variables -> HTML".
func renderErro(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).Render("error", fiber.Map{
		"ErrorCode": status,
		"ErrorMsg":  msg,
	})
}
