package repository

import (
	"time"

	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
)

// VentaRepository define el puerto de persistencia para Venta.
type VentaRepository interface {
	Create(venta *entity.Venta) error
	CreateBatch(ventas []*entity.Venta) error
	GetByID(id string) (*entity.Venta, error)
	ListAll() ([]*entity.Venta, error)
	FindByDate(fecha time.Time) ([]*entity.Venta, error)
	Update(venta *entity.Venta) error
	Delete(id string) error
	DeleteBatch(ids []string) error
}
