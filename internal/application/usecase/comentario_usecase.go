package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// TxRunner puerto para ejecutar un callback dentro de una transacción,
// con el repositorio de productos atado a la tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(produtos repository.ProdutoRepository) error) error
}

// ComentarioUseCase agrega comentarios a un producto existente.
type ComentarioUseCase struct {
	tx TxRunner
}

// NewComentarioUseCase construye el caso de uso.
func NewComentarioUseCase(tx TxRunner) *ComentarioUseCase {
	return &ComentarioUseCase{tx: tx}
}

// Add verifica que el producto exista y persiste el comentario en la misma transacción.
// Devuelve domain.ErrNotFound si el producto no existe; en éxito devuelve el producto
// con el comentario ya incluido al final de la colección.
func (uc *ComentarioUseCase) Add(ctx context.Context, produtoID int64, cmd dto.AdicionarComentarioCommand) (*dto.ProdutoView, error) {
	var view *dto.ProdutoView
	err := uc.tx.Run(ctx, func(produtos repository.ProdutoRepository) error {
		produto, err := produtos.GetByID(produtoID)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrNotFound
		}
		comentario := entity.Comentario{
			ProdutoID: produto.ID,
			Autor:     cmd.Autor,
			Texto:     cmd.Texto,
			NEstrelas: cmd.NEstrelas,
		}
		if err := produtos.AddComentario(&comentario); err != nil {
			return err
		}
		produto.AdicionaComentario(comentario)
		view = toProdutoView(produto)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
