package repository

import "github.com/jmorenoc/ipv-backend/internal/domain/entity"

// AreaRepository define el puerto de persistencia para Area.
type AreaRepository interface {
	Create(area *entity.Area) error
	GetByID(id string) (*entity.Area, error)
	FindByName(nombre string) (*entity.Area, error)
	ListAll() ([]*entity.Area, error)
	Update(area *entity.Area) error
	Delete(id string) error
	// InUse reporta si el área está referenciada por ingredientes, registros
	// de IPV, modelos de IPV o movimientos.
	InUse(id string) (bool, error)
}
