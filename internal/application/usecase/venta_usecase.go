package usecase

import (
	"github.com/google/uuid"

	"github.com/jmorenoc/ipv-backend/internal/application/dto"
	"github.com/jmorenoc/ipv-backend/internal/domain"
	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
	"github.com/jmorenoc/ipv-backend/internal/domain/repository"
)

// VentaUseCase casos de uso CRUD para ventas diarias. El nombre de receta es
// texto libre: no se valida contra el catálogo al registrar la venta.
type VentaUseCase struct {
	repo repository.VentaRepository
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(repo repository.VentaRepository) *VentaUseCase {
	return &VentaUseCase{repo: repo}
}

// Create registra una venta.
func (uc *VentaUseCase) Create(in dto.CreateVentaRequest) (*dto.VentaResponse, error) {
	if in.RecetaNombre == "" || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	fecha, err := domain.ParseFecha(in.Fecha)
	if err != nil {
		return nil, err
	}
	venta := &entity.Venta{
		ID:           uuid.New().String(),
		RecetaNombre: in.RecetaNombre,
		Cantidad:     in.Cantidad,
		Fecha:        fecha,
	}
	if err := uc.repo.Create(venta); err != nil {
		return nil, err
	}
	return toVentaResponse(venta), nil
}

// GetByID obtiene una venta por ID.
func (uc *VentaUseCase) GetByID(id string) (*dto.VentaResponse, error) {
	venta, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}
	return toVentaResponse(venta), nil
}

// List lista todas las ventas.
func (uc *VentaUseCase) List() ([]dto.VentaResponse, error) {
	ventas, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		items = append(items, *toVentaResponse(v))
	}
	return items, nil
}

// Update actualiza una venta.
func (uc *VentaUseCase) Update(id string, in dto.UpdateVentaRequest) (*dto.VentaResponse, error) {
	actual, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if actual == nil {
		return nil, domain.ErrNotFound
	}
	if in.RecetaNombre == "" || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	fecha, err := domain.ParseFecha(in.Fecha)
	if err != nil {
		return nil, err
	}
	venta := &entity.Venta{ID: id, RecetaNombre: in.RecetaNombre, Cantidad: in.Cantidad, Fecha: fecha}
	if err := uc.repo.Update(venta); err != nil {
		return nil, err
	}
	return toVentaResponse(venta), nil
}

// Delete elimina una venta por ID.
func (uc *VentaUseCase) Delete(id string) error {
	venta, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if venta == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// DeleteBatch elimina varias ventas por ID.
func (uc *VentaUseCase) DeleteBatch(ids []string) error {
	if len(ids) == 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.DeleteBatch(ids)
}

func toVentaResponse(v *entity.Venta) *dto.VentaResponse {
	return &dto.VentaResponse{
		ID:           v.ID,
		RecetaNombre: v.RecetaNombre,
		Cantidad:     v.Cantidad,
		Fecha:        v.Fecha.Format(domain.FechaLayout),
	}
}
