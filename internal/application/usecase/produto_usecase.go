package usecase

import (
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProdutoUseCase casos de uso del catálogo de productos.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase construye el caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Create crea un nuevo producto. Devuelve domain.ErrDuplicate si el nome ya existe.
func (uc *ProdutoUseCase) Create(cmd dto.CriarProdutoCommand) (*dto.ProdutoView, error) {
	produto := &entity.Produto{
		Nome:       cmd.Nome,
		Quantidade: cmd.Quantidade,
		Valor:      cmd.Valor,
	}
	if err := uc.repo.Create(produto); err != nil {
		return nil, err
	}
	return toProdutoView(produto), nil
}

// GetByID obtiene un producto con sus comentarios, o (nil, nil) si no existe.
func (uc *ProdutoUseCase) GetByID(id int64) (*dto.ProdutoView, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, nil
	}
	return toProdutoView(produto), nil
}

// Delete borra un producto por ID. Devuelve true si se eliminó exactamente una fila.
func (uc *ProdutoUseCase) Delete(id int64) (bool, error) {
	count, err := uc.repo.DeleteByID(id)
	if err != nil {
		return false, err
	}
	return count == 1, nil
}

// List devuelve el listado JSON de todos los productos.
func (uc *ProdutoUseCase) List() (*dto.ProdutosResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	produtos := make([]dto.ProdutoResumo, 0, len(list))
	for _, p := range list {
		produtos = append(produtos, dto.ProdutoResumo{
			Nome:       p.Nome,
			Quantidade: p.Quantidade,
			Valor:      p.Valor,
		})
	}
	return &dto.ProdutosResponse{Produtos: produtos}, nil
}

func toProdutoView(p *entity.Produto) *dto.ProdutoView {
	if p == nil {
		return nil
	}
	view := &dto.ProdutoView{
		ID:         p.ID,
		Nome:       p.Nome,
		Quantidade: p.Quantidade,
		Valor:      p.Valor,
	}
	for _, c := range p.Comentarios {
		view.Comentarios = append(view.Comentarios, dto.ComentarioView{
			Autor:     c.Autor,
			Texto:     c.Texto,
			NEstrelas: c.NEstrelas,
			CriadoEm:  c.CriadoEm,
		})
	}
	return view
}
