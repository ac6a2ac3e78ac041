package entity

import "time"

// User usuario del sistema. Se crea únicamente por el seed de arranque;
// no existe endpoint de registro.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
