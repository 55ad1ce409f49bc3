package ipv

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
	"github.com/jmorenoc/ipv-backend/internal/domain/repository"
)

// EstadoUseCase responde "¿cuál es el estado del IPV de esta fecha?":
// los registros guardados si existen, o una plantilla vacía armada desde el
// modelo de cada área con la apertura arrastrada del día anterior.
type EstadoUseCase struct {
	inventario repository.InventarioRepository
	productos  repository.ProductoRepository
	areas      repository.AreaRepository
}

// NewEstadoUseCase construye el caso de uso.
func NewEstadoUseCase(
	inventario repository.InventarioRepository,
	productos repository.ProductoRepository,
	areas repository.AreaRepository,
) *EstadoUseCase {
	return &EstadoUseCase{inventario: inventario, productos: productos, areas: areas}
}

// Execute devuelve los registros agrupados por nombre de área. Toda área del
// catálogo aparece como llave del resultado aunque no tenga filas; los
// llamadores dependen de esa garantía para pintar pestañas vacías.
func (uc *EstadoUseCase) Execute(fecha time.Time) (map[string][]*entity.InventarioDiario, error) {
	registros, err := uc.inventario.FindByDate(fecha)
	if err != nil {
		return nil, err
	}
	areas, err := uc.areas.ListAll()
	if err != nil {
		return nil, err
	}

	if len(registros) == 0 {
		return uc.plantillaVacia(fecha, areas)
	}

	porArea := make(map[string][]*entity.InventarioDiario, len(areas))
	areasPorID := make(map[string]*entity.Area, len(areas))
	for _, a := range areas {
		porArea[a.Nombre] = []*entity.InventarioDiario{}
		areasPorID[a.ID] = a
	}

	productosPorID, err := uc.productosPorID()
	if err != nil {
		return nil, err
	}

	for _, reg := range registros {
		area, ok := areasPorID[reg.AreaID]
		if !ok {
			// Registro huérfano de un área eliminada: se omite.
			continue
		}
		reg.AreaNombre = area.Nombre
		if p, ok := productosPorID[reg.ProductoID]; ok {
			reg.ProductoNombre = p.Nombre
		} else {
			reg.ProductoNombre = "Producto no encontrado"
		}
		porArea[area.Nombre] = append(porArea[area.Nombre], reg)
	}
	return porArea, nil
}

// plantillaVacia arma un esqueleto del día: una fila en cero por cada
// (área, producto) del modelo, con la apertura tomada del cierre físico del
// día anterior. Entradas del modelo que apuntan a productos ya eliminados se
// saltan sin error.
func (uc *EstadoUseCase) plantillaVacia(fecha time.Time, areas []*entity.Area) (map[string][]*entity.InventarioDiario, error) {
	modelos, err := uc.inventario.GetModelos()
	if err != nil {
		return nil, err
	}
	productosPorID, err := uc.productosPorID()
	if err != nil {
		return nil, err
	}

	plantilla := make(map[string][]*entity.InventarioDiario, len(areas))
	for _, area := range areas {
		plantilla[area.Nombre] = []*entity.InventarioDiario{}
		for _, entrada := range modelos[area.ID] {
			producto, ok := productosPorID[entrada.ProductoID]
			if !ok {
				continue
			}
			inicio, err := uc.inventario.PreviousDayClosing(fecha, area.ID, producto.ID)
			if err != nil {
				return nil, err
			}
			plantilla[area.Nombre] = append(plantilla[area.Nombre], &entity.InventarioDiario{
				ID:             uuid.New().String(),
				Fecha:          fecha,
				AreaID:         area.ID,
				ProductoID:     producto.ID,
				Inicio:         inicio,
				ProductoNombre: producto.Nombre,
				AreaNombre:     area.Nombre,
			})
		}
	}
	return plantilla, nil
}

func (uc *EstadoUseCase) productosPorID() (map[string]*entity.Producto, error) {
	productos, err := uc.productos.ListAll("nombre")
	if err != nil {
		return nil, err
	}
	porID := make(map[string]*entity.Producto, len(productos))
	for _, p := range productos {
		porID[p.ID] = p
	}
	return porID, nil
}
