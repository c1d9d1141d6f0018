package dto

// CadastroForm entrada del formulario de registro (senha en texto, se hashea en el use case).
type CadastroForm struct {
	Nome  string `form:"nome"`
	Email string `form:"email"`
	Senha string `form:"senha"`
}

// Completo indica si los tres campos obligatorios están presentes.
func (f CadastroForm) Completo() bool {
	return f.Nome != "" && f.Email != "" && f.Senha != ""
}

// LoginForm entrada del formulario de login.
type LoginForm struct {
	Email string `form:"email"`
	Senha string `form:"senha"`
}
