package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarios repository.UsuarioRepository) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios}
}

// Register hashea la senha con bcrypt y persiste el usuario.
// Devuelve domain.ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.CadastroForm) (*entity.Usuario, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		Nome:      in.Nome,
		Email:     in.Email,
		SenhaHash: string(hash),
	}
	if err := uc.usuarios.Create(usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// Login verifica email/senha contra el hash almacenado.
// Devuelve domain.ErrUnauthorized tanto si el email no existe como si la senha
// no coincide: el caller no puede distinguir los dos casos.
func (uc *AuthUseCase) Login(in dto.LoginForm) (*entity.Usuario, error) {
	usuario, err := uc.usuarios.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(in.Senha)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return usuario, nil
}
