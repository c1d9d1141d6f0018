package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

const (
	msgProdutoNaoEncontrado = "Produto não encontrado na base :/"
	msgProdutoDuplicado     = "Produto de mesmo nome já salvo na base :/"
	msgProdutoNaoSalvo      = "Não foi possível salvar novo item :/"
)

// ProdutoHandler maneja las peticiones HTTP del catálogo de productos.
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

// NewProdutoHandler construye el handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         produtos
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        nome        formData  string  true   "Nombre (único)"
// @Param        quantidade  formData  int     false  "Cantidad"
// @Param        valor       formData  number  false  "Valor"
// @Success      200
// @Failure      400
// @Failure      409
// @Router       /add_produto [post]
func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	var form dto.CriarProdutoForm
	if err := c.BodyParser(&form); err != nil {
		return renderErro(c, fiber.StatusBadRequest, msgProdutoNaoSalvo)
	}
	cmd, err := form.Command()
	if err != nil {
		var ev *dto.ErroValidacao
		if errors.As(err, &ev) {
			return renderErro(c, fiber.StatusBadRequest, ev.Campo+" "+ev.Mensagem)
		}
		return renderErro(c, fiber.StatusBadRequest, msgProdutoNaoSalvo)
	}
	produto, err := h.uc.Create(*cmd)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return renderErro(c, fiber.StatusConflict, msgProdutoDuplicado)
		}
		// Detalle interno solo al log, nunca al caller.
		log.Error().Err(err).Str("nome", cmd.Nome).Msg("crear producto")
		return renderErro(c, fiber.StatusBadRequest, msgProdutoNaoSalvo)
	}
	return c.Render("produto", fiber.Map{"Produto": produto})
}

// GetByID godoc
// @Summary      Obtener producto por ID (con comentarios)
// @Tags         produtos
// @Produce      html
// @Param        id   path  int  true  "ID del producto"
// @Success      200
// @Failure      404
// @Router       /get_produto/{id} [get]
func (h *ProdutoHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return renderErro(c, fiber.StatusNotFound, msgProdutoNaoEncontrado)
	}
	produto, err := h.uc.GetByID(id)
	if err != nil {
		log.Error().Err(err).Int64("produto_id", id).Msg("obtener producto")
		return renderErro(c, fiber.StatusInternalServerError, msgProdutoNaoEncontrado)
	}
	if produto == nil {
		return renderErro(c, fiber.StatusNotFound, msgProdutoNaoEncontrado)
	}
	return c.Render("produto", fiber.Map{"Produto": produto})
}

// Delete godoc
// @Summary      Borrar producto por ID
// @Tags         produtos
// @Produce      html
// @Param        id   path  int  true  "ID del producto"
// @Success      200
// @Failure      404
// @Router       /del_produto/{id} [delete]
func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return renderErro(c, fiber.StatusNotFound, msgProdutoNaoEncontrado)
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		log.Error().Err(err).Int64("produto_id", id).Msg("borrar producto")
		return renderErro(c, fiber.StatusInternalServerError, msgProdutoNaoEncontrado)
	}
	if !deleted {
		return renderErro(c, fiber.StatusNotFound, msgProdutoNaoEncontrado)
	}
	return c.Render("deletado", fiber.Map{"ProdutoID": id})
}

// List godoc
// @Summary      Listar todos los productos
// @Tags         produtos
// @Produce      json
// @Success      200  {object}  dto.ProdutosResponse
// @Router       /produtos [get]
func (h *ProdutoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		log.Error().Err(err).Msg("listar productos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao listar produtos"})
	}
	return c.JSON(out)
}

// parseID lee el :id numérico del path. Un id no numérico no puede existir en la
// base, así que los callers lo tratan como not-found.
func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
