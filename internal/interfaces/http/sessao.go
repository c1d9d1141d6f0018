package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/sessao"
)

// UsuarioSessao identidad del usuario autenticado tomada de la cookie de sesión.
type UsuarioSessao struct {
	ID   int64
	Nome string
}

// SessaoManager lee y escribe la cookie de sesión firmada.
// El secreto llega por configuración al construirlo: no hay estado de proceso.
type SessaoManager struct {
	cfg config.SessaoConfig
}

// NewSessaoManager construye el manager con la configuración de sesión.
func NewSessaoManager(cfg config.SessaoConfig) *SessaoManager {
	return &SessaoManager{cfg: cfg}
}

// Iniciar emite el token de sesión del usuario y lo guarda en la cookie.
func (m *SessaoManager) Iniciar(c *fiber.Ctx, usuarioID int64, nome string) error {
	token, err := sessao.Generate(m.cfg.Secret, usuarioID, nome, m.cfg.ExpMinutes)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     m.cfg.CookieName,
		Value:    token,
		Expires:  time.Now().Add(time.Duration(m.cfg.ExpMinutes) * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// Encerrar borra la cookie de sesión incondicionalmente.
func (m *SessaoManager) Encerrar(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     m.cfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Atual devuelve el usuario de la sesión, o nil si no hay cookie o el token
// es inválido/expirado (ambos equivalen a anónimo).
func (m *SessaoManager) Atual(c *fiber.Ctx) *UsuarioSessao {
	token := c.Cookies(m.cfg.CookieName)
	if token == "" {
		return nil
	}
	id, nome, err := sessao.Parse(m.cfg.Secret, token)
	if err != nil {
		return nil
	}
	return &UsuarioSessao{ID: id, Nome: nome}
}
