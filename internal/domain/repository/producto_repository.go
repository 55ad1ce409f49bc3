package repository

import "github.com/jmorenoc/ipv-backend/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	FindByName(nombre string) (*entity.Producto, error)
	// ListAll acepta sortBy: "nombre", "modificado" (último cambio registrado
	// en historial) o "recientes" (orden de inserción descendente).
	ListAll(sortBy string) ([]*entity.Producto, error)
	Update(producto *entity.Producto) error
	Delete(id string) error
	// InUse reporta si el producto está referenciado por ingredientes,
	// registros de IPV, modelos de IPV o movimientos.
	InUse(id string) (bool, error)
}
