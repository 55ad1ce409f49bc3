package ipv

import (
	"github.com/jmorenoc/ipv-backend/internal/application/dto"
	"github.com/jmorenoc/ipv-backend/internal/domain"
	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
	"github.com/jmorenoc/ipv-backend/internal/domain/repository"
)

// ModeloUseCase administra el modelo de IPV (qué productos se controlan en
// cada área y en qué orden) y el índice de fechas con registros.
type ModeloUseCase struct {
	inventario repository.InventarioRepository
}

// NewModeloUseCase construye el caso de uso.
func NewModeloUseCase(inventario repository.InventarioRepository) *ModeloUseCase {
	return &ModeloUseCase{inventario: inventario}
}

// GetModelos devuelve el modelo agrupado por area_id.
func (uc *ModeloUseCase) GetModelos() (map[string][]dto.ModeloProductoResponse, error) {
	modelos, err := uc.inventario.GetModelos()
	if err != nil {
		return nil, err
	}
	out := make(map[string][]dto.ModeloProductoResponse, len(modelos))
	for areaID, productos := range modelos {
		entradas := make([]dto.ModeloProductoResponse, 0, len(productos))
		for _, p := range productos {
			entradas = append(entradas, dto.ModeloProductoResponse{ProductoID: p.ProductoID, Orden: p.Orden})
		}
		out[areaID] = entradas
	}
	return out, nil
}

// SaveModelo reemplaza por completo el modelo del área.
func (uc *ModeloUseCase) SaveModelo(in dto.SaveModeloRequest) error {
	if in.AreaID == "" {
		return domain.ErrInvalidInput
	}
	productos := make([]entity.ModeloProducto, 0, len(in.Productos))
	for _, p := range in.Productos {
		if p.ID == "" {
			return domain.ErrInvalidInput
		}
		productos = append(productos, entity.ModeloProducto{ProductoID: p.ID, Orden: p.Orden})
	}
	return uc.inventario.SaveModelo(in.AreaID, productos)
}

// GetFechas devuelve las fechas con registros de IPV, más reciente primero.
func (uc *ModeloUseCase) GetFechas() ([]dto.FechaRegistroResponse, error) {
	fechas, err := uc.inventario.FindAllDates()
	if err != nil {
		return nil, err
	}
	out := make([]dto.FechaRegistroResponse, 0, len(fechas))
	for _, f := range fechas {
		out = append(out, dto.FechaRegistroResponse{Fecha: f.Format(domain.FechaLayout)})
	}
	return out, nil
}
