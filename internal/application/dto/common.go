package dto

// ErroValidacao error estructurado de decodificación/validación de formularios.
// El handler lo mapea a HTTP 400.
type ErroValidacao struct {
	Campo    string
	Mensagem string
}

func (e *ErroValidacao) Error() string {
	return e.Campo + ": " + e.Mensagem
}

// ErrorResponse cuerpo de error JSON (solo para endpoints que responden JSON).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
