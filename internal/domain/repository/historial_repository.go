package repository

import "github.com/jmorenoc/ipv-backend/internal/domain/entity"

// HistorialRepository define el puerto del log de auditoría (append-only).
type HistorialRepository interface {
	Record(cambio *entity.HistorialCambio) error
	ListByEntityType(entidadTipo string) ([]*entity.HistorialCambio, error)
}
