package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa un producto del catálogo.
// Comentarios es una composición: los comentarios nacen y mueren con el producto
// (borrado en cascada) y mantienen el orden de inserción.
type Produto struct {
	ID          int64
	Nome        string // único en todo el catálogo
	Quantidade  int
	Valor       decimal.Decimal
	Comentarios []Comentario
	CriadoEm    time.Time
}

// AdicionaComentario agrega un comentario al final de la colección del producto.
func (p *Produto) AdicionaComentario(c Comentario) {
	c.ProdutoID = p.ID
	p.Comentarios = append(p.Comentarios, c)
}
