package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	// Create persiste el usuario y asigna su ID. Devuelve domain.ErrEmailAlreadyExists
	// si el email ya está registrado.
	Create(usuario *entity.Usuario) error
	// FindByEmail devuelve el usuario o (nil, nil) si no existe.
	FindByEmail(email string) (*entity.Usuario, error)
}
