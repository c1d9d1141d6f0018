package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ProdutoRepository define el puerto de persistencia para Produto (DIP).
// Los comentarios solo se crean a través del producto, por eso AddComentario vive aquí
// y no existe un repositorio propio de comentarios.
type ProdutoRepository interface {
	// Create persiste el producto y asigna su ID. Devuelve domain.ErrDuplicate
	// si ya existe un producto con el mismo nome.
	Create(produto *entity.Produto) error
	// GetByID devuelve el producto con sus comentarios en orden de inserción,
	// o (nil, nil) si no existe.
	GetByID(id int64) (*entity.Produto, error)
	// DeleteByID borra por id y devuelve cuántas filas se eliminaron (0 o 1).
	DeleteByID(id int64) (int64, error)
	// List devuelve todos los productos en orden natural del storage.
	List() ([]*entity.Produto, error)
	// AddComentario persiste un comentario del producto y asigna su ID.
	AddComentario(comentario *entity.Comentario) error
}
