package entity

import "time"

// Comentario reseña de un producto. Todos los campos de contenido son opcionales;
// NEstrelas es nil cuando el formulario no envió calificación.
type Comentario struct {
	ID        int64
	ProdutoID int64
	Autor     string
	Texto     string
	NEstrelas *int
	CriadoEm  time.Time
}
