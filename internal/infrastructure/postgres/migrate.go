package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL idempotente del catálogo. Se ejecuta en el arranque, equivalente
// al create_all de un ORM. comentarios depende de produtos con borrado en cascada.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS produtos (
		id         BIGSERIAL PRIMARY KEY,
		nome       TEXT NOT NULL UNIQUE,
		quantidade INTEGER NOT NULL DEFAULT 0,
		valor      NUMERIC(12,2) NOT NULL DEFAULT 0,
		criado_em  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS comentarios (
		id         BIGSERIAL PRIMARY KEY,
		produto_id BIGINT NOT NULL REFERENCES produtos(id) ON DELETE CASCADE,
		autor      TEXT NOT NULL DEFAULT '',
		texto      TEXT NOT NULL DEFAULT '',
		n_estrelas INTEGER,
		criado_em  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comentarios_produto ON comentarios (produto_id, id)`,
	`CREATE TABLE IF NOT EXISTS usuarios (
		id        BIGSERIAL PRIMARY KEY,
		nome      VARCHAR(100) NOT NULL,
		email     VARCHAR(100) NOT NULL UNIQUE,
		senha     VARCHAR(255) NOT NULL,
		criado_em TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate crea las tablas del catálogo si no existen.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, ddl := range schema {
		if _, err := pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("aplicar schema: %w", err)
		}
	}
	return nil
}
