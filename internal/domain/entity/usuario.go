package entity

import "time"

// Usuario cuenta registrada del sistema.
type Usuario struct {
	ID        int64
	Nome      string
	Email     string // único a nivel de storage
	SenhaHash string // bcrypt hash, nunca texto plano después de persistir
	CriadoEm  time.Time
}
