package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

const (
	msgCamposObrigatorios = "Todos os campos são obrigatórios!"
	msgEmailJaCadastrado  = "Email já cadastrado!"
	msgCredenciaisRuins   = "Email ou senha incorretos!"
	msgErroInesperado     = "Erro inesperado, tente novamente mais tarde."
)

// AuthHandler maneja registro, login y logout con cookie de sesión.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	sessao *SessaoManager
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, sessao *SessaoManager) *AuthHandler {
	return &AuthHandler{uc: uc, sessao: sessao}
}

// CadastroForm renderiza el formulario de registro.
func (h *AuthHandler) CadastroForm(c *fiber.Ctx) error {
	return c.Render("cadastro", fiber.Map{})
}

// Cadastro godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        nome   formData  string  true  "Nombre"
// @Param        email  formData  string  true  "Email (único)"
// @Param        senha  formData  string  true  "Contraseña"
// @Success      302
// @Failure      400
// @Failure      500
// @Router       /cadastro [post]
func (h *AuthHandler) Cadastro(c *fiber.Ctx) error {
	var form dto.CadastroForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(msgCamposObrigatorios)
	}
	if !form.Completo() {
		return c.Status(fiber.StatusBadRequest).SendString(msgCamposObrigatorios)
	}
	if _, err := h.uc.Register(form); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusBadRequest).SendString(msgEmailJaCadastrado)
		}
		// Política uniforme: el detalle interno va al log, nunca al cuerpo de la respuesta.
		log.Error().Err(err).Str("email", form.Email).Msg("registrar usuario")
		return c.Status(fiber.StatusInternalServerError).SendString(msgErroInesperado)
	}
	return c.Redirect("/login")
}

// LoginForm renderiza el formulario de login.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        email  formData  string  true  "Email"
// @Param        senha  formData  string  true  "Contraseña"
// @Success      302
// @Failure      401
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusUnauthorized).SendString(msgCredenciaisRuins)
	}
	usuario, err := h.uc.Login(form)
	if err != nil {
		// Email desconocido y senha incorrecta responden idéntico (sin enumeración de cuentas).
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).SendString(msgCredenciaisRuins)
		}
		log.Error().Err(err).Msg("login")
		return c.Status(fiber.StatusInternalServerError).SendString(msgErroInesperado)
	}
	if err := h.sessao.Iniciar(c, usuario.ID, usuario.Nome); err != nil {
		log.Error().Err(err).Msg("emitir sesión")
		return c.Status(fiber.StatusInternalServerError).SendString(msgErroInesperado)
	}
	return c.Redirect("/")
}

// Logout limpia la sesión incondicionalmente y redirige al login.
// No requiere estar autenticado.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessao.Encerrar(c)
	return c.Redirect("/login")
}
