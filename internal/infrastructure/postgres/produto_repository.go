package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementación del puerto ProdutoRepository sobre PostgreSQL (usable con pool o tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProdutoRepo) Create(produto *entity.Produto) error {
	query := `
		INSERT INTO produtos (nome, quantidade, valor)
		VALUES ($1, $2, $3)
		RETURNING id, criado_em`
	err := r.q.QueryRow(context.Background(), query,
		produto.Nome, produto.Quantidade, produto.Valor,
	).Scan(&produto.ID, &produto.CriadoEm)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con sus comentarios en orden de inserción.
func (r *ProdutoRepo) GetByID(id int64) (*entity.Produto, error) {
	query := `
		SELECT id, nome, quantidade, valor, criado_em
		FROM produtos WHERE id = $1`
	var p entity.Produto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nome, &p.Quantidade, &p.Valor, &p.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	comentarios, err := r.listComentarios(p.ID)
	if err != nil {
		return nil, err
	}
	p.Comentarios = comentarios
	return &p, nil
}

// DeleteByID borra un producto por ID y devuelve las filas afectadas.
// Los comentarios caen en cascada (ON DELETE CASCADE).
func (r *ProdutoRepo) DeleteByID(id int64) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete produto: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// List devuelve todos los productos en orden natural del storage (sin comentarios).
func (r *ProdutoRepo) List() ([]*entity.Produto, error) {
	query := `SELECT id, nome, quantidade, valor, criado_em FROM produtos ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(&p.ID, &p.Nome, &p.Quantidade, &p.Valor, &p.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// AddComentario persiste un comentario del producto y asigna el ID generado.
func (r *ProdutoRepo) AddComentario(comentario *entity.Comentario) error {
	query := `
		INSERT INTO comentarios (produto_id, autor, texto, n_estrelas)
		VALUES ($1, $2, $3, $4)
		RETURNING id, criado_em`
	err := r.q.QueryRow(context.Background(), query,
		comentario.ProdutoID, comentario.Autor, comentario.Texto, comentario.NEstrelas,
	).Scan(&comentario.ID, &comentario.CriadoEm)
	if err != nil {
		return fmt.Errorf("insert comentario: %w", err)
	}
	return nil
}

func (r *ProdutoRepo) listComentarios(produtoID int64) ([]entity.Comentario, error) {
	query := `
		SELECT id, produto_id, autor, texto, n_estrelas, criado_em
		FROM comentarios WHERE produto_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, produtoID)
	if err != nil {
		return nil, fmt.Errorf("list comentarios: %w", err)
	}
	defer rows.Close()
	var list []entity.Comentario
	for rows.Next() {
		var c entity.Comentario
		if err := rows.Scan(&c.ID, &c.ProdutoID, &c.Autor, &c.Texto, &c.NEstrelas, &c.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan comentario: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
