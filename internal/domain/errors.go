package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrAttractionNotFound = errors.New("atracción no encontrada")
	ErrRecordNotFound     = errors.New("registro no encontrado")
	// ErrInvalidCredentials cubre tanto usuario inexistente como password
	// incorrecto: un solo valor impide enumerar usuarios por la respuesta.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)
