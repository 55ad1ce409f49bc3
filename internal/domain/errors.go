package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrEnUso        = errors.New("el recurso está en uso y no puede eliminarse")
	ErrConflict     = errors.New("conflicto con el estado actual")
)
