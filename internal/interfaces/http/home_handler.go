package http

import "github.com/gofiber/fiber/v2"

// HomeHandler renderiza la página de inicio.
type HomeHandler struct {
	sessao *SessaoManager
}

// NewHomeHandler construye el handler.
func NewHomeHandler(sessao *SessaoManager) *HomeHandler {
	return &HomeHandler{sessao: sessao}
}

// Home siempre responde 200 con el template de inicio. Si hay sesión activa
// se pasa el usuario al template para el saludo.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	return c.Render("home", fiber.Map{
		"Usuario": h.sessao.Atual(c),
	})
}
