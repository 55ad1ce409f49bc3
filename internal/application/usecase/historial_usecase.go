package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmorenoc/ipv-backend/internal/application/dto"
	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
	"github.com/jmorenoc/ipv-backend/internal/domain/repository"
)

// HistorialUseCase registra y consulta el log de cambios. Los casos de uso
// mutadores lo invocan en línea; un fallo al registrar aborta la mutación
// que lo originó (comportamiento heredado, ver DESIGN.md).
type HistorialUseCase struct {
	repo repository.HistorialRepository
}

// NewHistorialUseCase construye el caso de uso.
func NewHistorialUseCase(repo repository.HistorialRepository) *HistorialUseCase {
	return &HistorialUseCase{repo: repo}
}

// RegistrarCambio agrega una entrada al log de auditoría.
func (uc *HistorialUseCase) RegistrarCambio(entidadTipo, entidadID, campo, valorAnterior, valorNuevo string) error {
	return uc.repo.Record(&entity.HistorialCambio{
		ID:              uuid.New().String(),
		EntidadTipo:     entidadTipo,
		EntidadID:       entidadID,
		CampoModificado: campo,
		ValorAnterior:   valorAnterior,
		ValorNuevo:      valorNuevo,
		FechaCambio:     time.Now(),
	})
}

// ListByEntityType lista el historial de un tipo de entidad (Producto, Receta).
func (uc *HistorialUseCase) ListByEntityType(entidadTipo string) ([]dto.HistorialResponse, error) {
	cambios, err := uc.repo.ListByEntityType(entidadTipo)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistorialResponse, 0, len(cambios))
	for _, c := range cambios {
		items = append(items, dto.HistorialResponse{
			ID:              c.ID,
			EntidadTipo:     c.EntidadTipo,
			EntidadID:       c.EntidadID,
			CampoModificado: c.CampoModificado,
			ValorAnterior:   c.ValorAnterior,
			ValorNuevo:      c.ValorNuevo,
			FechaCambio:     c.FechaCambio.Format(time.RFC3339),
		})
	}
	return items, nil
}
