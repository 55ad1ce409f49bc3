package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jmorenoc/ipv-backend/internal/application/dto"
	"github.com/jmorenoc/ipv-backend/internal/domain"
	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
	"github.com/jmorenoc/ipv-backend/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos. Los nombres se normalizan
// a mayúsculas, por lo que la unicidad es insensible a mayúsculas en efecto.
type ProductoUseCase struct {
	repo      repository.ProductoRepository
	historial *HistorialUseCase
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, historial *HistorialUseCase) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, historial: historial}
}

// Create crea un producto evitando duplicados por nombre.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	nombre := strings.ToUpper(strings.TrimSpace(in.Nombre))
	unidad := strings.ToUpper(strings.TrimSpace(in.UnidadMedida))
	if nombre == "" || unidad == "" {
		return nil, domain.ErrInvalidInput
	}
	if existente, err := uc.repo.FindByName(nombre); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, domain.ErrDuplicate
	}

	producto := &entity.Producto{
		ID:           uuid.New().String(),
		Nombre:       nombre,
		UnidadMedida: unidad,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	if err := uc.historial.RegistrarCambio("Producto", producto.ID, "Creación", "",
		fmt.Sprintf("Producto '%s' creado", producto.Nombre)); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return toProductoResponse(producto), nil
}

// List lista los productos. sortBy: nombre (defecto), modificado, recientes.
func (uc *ProductoUseCase) List(sortBy string) ([]dto.ProductoResponse, error) {
	if sortBy == "" {
		sortBy = "nombre"
	}
	productos, err := uc.repo.ListAll(sortBy)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		items = append(items, *toProductoResponse(p))
	}
	return items, nil
}

// Update actualiza un producto registrando en historial cada campo que cambió.
func (uc *ProductoUseCase) Update(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	actual, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if actual == nil {
		return nil, domain.ErrNotFound
	}

	nombre := strings.ToUpper(strings.TrimSpace(in.Nombre))
	unidad := strings.ToUpper(strings.TrimSpace(in.UnidadMedida))
	if nombre == "" || unidad == "" {
		return nil, domain.ErrInvalidInput
	}
	if nombre != actual.Nombre {
		if existente, err := uc.repo.FindByName(nombre); err != nil {
			return nil, err
		} else if existente != nil && existente.ID != id {
			return nil, domain.ErrDuplicate
		}
		if err := uc.historial.RegistrarCambio("Producto", id, "nombre", actual.Nombre, nombre); err != nil {
			return nil, err
		}
	}
	if unidad != actual.UnidadMedida {
		if err := uc.historial.RegistrarCambio("Producto", id, "unidad_medida", actual.UnidadMedida, unidad); err != nil {
			return nil, err
		}
	}

	actualizado := &entity.Producto{ID: id, Nombre: nombre, UnidadMedida: unidad}
	if err := uc.repo.Update(actualizado); err != nil {
		return nil, err
	}
	return toProductoResponse(actualizado), nil
}

// Delete elimina un producto. Se bloquea si está referenciado por recetas,
// registros o modelos de IPV, o movimientos.
func (uc *ProductoUseCase) Delete(id string) error {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	enUso, err := uc.repo.InUse(id)
	if err != nil {
		return err
	}
	if enUso {
		return domain.ErrEnUso
	}
	if err := uc.historial.RegistrarCambio("Producto", id, "Eliminación",
		fmt.Sprintf("Producto '%s' eliminado", producto.Nombre), ""); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{ID: p.ID, Nombre: p.Nombre, UnidadMedida: p.UnidadMedida}
}
