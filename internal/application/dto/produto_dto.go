package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CriarProdutoForm campos crudos del formulario de alta de producto.
// La conversión tipada ocurre en Command(): un solo punto de decodificación
// en lugar de lookups sueltos de strings en el handler.
type CriarProdutoForm struct {
	Nome       string `form:"nome"`
	Quantidade string `form:"quantidade"`
	Valor      string `form:"valor"`
}

// CriarProdutoCommand entrada tipada para crear un producto.
type CriarProdutoCommand struct {
	Nome       string
	Quantidade int
	Valor      decimal.Decimal
}

// Command valida y convierte el formulario. Campos numéricos vacíos valen cero;
// valores no numéricos devuelven *ErroValidacao.
func (f CriarProdutoForm) Command() (*CriarProdutoCommand, error) {
	nome := strings.TrimSpace(f.Nome)
	if nome == "" {
		return nil, &ErroValidacao{Campo: "nome", Mensagem: "é obrigatório"}
	}
	cmd := &CriarProdutoCommand{Nome: nome, Valor: decimal.Zero}
	if q := strings.TrimSpace(f.Quantidade); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			return nil, &ErroValidacao{Campo: "quantidade", Mensagem: "deve ser um número inteiro"}
		}
		cmd.Quantidade = n
	}
	if v := strings.TrimSpace(f.Valor); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, &ErroValidacao{Campo: "valor", Mensagem: "deve ser um número"}
		}
		cmd.Valor = d
	}
	return cmd, nil
}

// AdicionarComentarioForm campos crudos del formulario de comentario.
type AdicionarComentarioForm struct {
	Autor    string `form:"autor"`
	Texto    string `form:"texto"`
	NEstrela string `form:"n_estrela"`
}

// AdicionarComentarioCommand entrada tipada para agregar un comentario.
// NEstrelas es nil cuando el formulario no envió calificación.
type AdicionarComentarioCommand struct {
	Autor     string
	Texto     string
	NEstrelas *int
}

// Command valida y convierte el formulario. Todos los campos son opcionales;
// una calificación no numérica se rechaza con *ErroValidacao.
func (f AdicionarComentarioForm) Command() (*AdicionarComentarioCommand, error) {
	cmd := &AdicionarComentarioCommand{Autor: f.Autor, Texto: f.Texto}
	if s := strings.TrimSpace(f.NEstrela); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, &ErroValidacao{Campo: "n_estrela", Mensagem: "deve ser um número inteiro"}
		}
		cmd.NEstrelas = &n
	}
	return cmd, nil
}

// ComentarioView comentario listo para el template.
type ComentarioView struct {
	Autor     string
	Texto     string
	NEstrelas *int
	CriadoEm  time.Time
}

// ProdutoView producto listo para el template produto.html.
type ProdutoView struct {
	ID          int64
	Nome        string
	Quantidade  int
	Valor       decimal.Decimal
	Comentarios []ComentarioView
}

// ProdutoResumo entrada del listado JSON de /produtos.
type ProdutoResumo struct {
	Nome       string          `json:"nome"`
	Quantidade int             `json:"quantidade"`
	Valor      decimal.Decimal `json:"valor"`
}

// ProdutosResponse cuerpo JSON de /produtos.
type ProdutosResponse struct {
	Produtos []ProdutoResumo `json:"produtos"`
}
