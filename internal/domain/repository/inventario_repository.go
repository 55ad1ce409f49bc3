package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
)

// InventarioRepository define el puerto de persistencia del IPV: registros
// diarios y modelo de productos por área.
type InventarioRepository interface {
	FindByDate(fecha time.Time) ([]*entity.InventarioDiario, error)
	// FindAllDates devuelve las fechas únicas con registros, descendente.
	FindAllDates() ([]time.Time, error)
	// PreviousDayClosing devuelve el final_fisico del día calendario anterior
	// para el área y producto, o cero si no existe registro. La búsqueda es de
	// exactamente un día hacia atrás: un hueco en los registros reinicia la
	// apertura en cero.
	PreviousDayClosing(fecha time.Time, areaID, productoID string) (decimal.Decimal, error)
	// SaveAll inserta o actualiza cada registro según su llave
	// (fecha, area_id, producto_id). Nunca produce filas duplicadas.
	SaveAll(registros []*entity.InventarioDiario) error
	// GetModelos devuelve el modelo de IPV agrupado por area_id, con los
	// productos en el orden configurado.
	GetModelos() (map[string][]entity.ModeloProducto, error)
	// SaveModelo reemplaza por completo el modelo del área.
	SaveModelo(areaID string, productos []entity.ModeloProducto) error
}
