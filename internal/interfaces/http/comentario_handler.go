package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// ComentarioHandler maneja el alta de comentarios de un producto.
type ComentarioHandler struct {
	uc *usecase.ComentarioUseCase
}

// NewComentarioHandler construye el handler.
func NewComentarioHandler(uc *usecase.ComentarioUseCase) *ComentarioHandler {
	return &ComentarioHandler{uc: uc}
}

// Add godoc
// @Summary      Agregar comentario a un producto
// @Tags         comentarios
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        id         path      int     true   "ID del producto"
// @Param        autor      formData  string  false  "Autor"
// @Param        texto      formData  string  false  "Texto"
// @Param        n_estrela  formData  int     false  "Calificación"
// @Success      200
// @Failure      400
// @Failure      404
// @Router       /add_comentario/{id} [post]
func (h *ComentarioHandler) Add(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return renderErro(c, fiber.StatusNotFound, msgProdutoNaoEncontrado)
	}
	var form dto.AdicionarComentarioForm
	if err := c.BodyParser(&form); err != nil {
		return renderErro(c, fiber.StatusBadRequest, "comentário inválido")
	}
	cmd, err := form.Command()
	if err != nil {
		var ev *dto.ErroValidacao
		if errors.As(err, &ev) {
			return renderErro(c, fiber.StatusBadRequest, ev.Campo+" "+ev.Mensagem)
		}
		return renderErro(c, fiber.StatusBadRequest, "comentário inválido")
	}
	produto, err := h.uc.Add(c.UserContext(), id, *cmd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return renderErro(c, fiber.StatusNotFound, msgProdutoNaoEncontrado)
		}
		log.Error().Err(err).Int64("produto_id", id).Msg("agregar comentario")
		return renderErro(c, fiber.StatusInternalServerError, "não foi possível salvar o comentário")
	}
	return c.Render("produto", fiber.Map{"Produto": produto})
}
