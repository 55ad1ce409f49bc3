package ipv

import (
	"github.com/google/uuid"

	"github.com/jmorenoc/ipv-backend/internal/application/dto"
	"github.com/jmorenoc/ipv-backend/internal/domain"
	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
	"github.com/jmorenoc/ipv-backend/internal/domain/repository"
)

// GuardarUseCase persiste el día completo del IPV. Cada fila se recalcula con
// la fórmula de balance antes de guardar y se upserta por su llave
// (fecha, area_id, producto_id): el guardado repetido del mismo día actualiza
// filas, nunca duplica.
type GuardarUseCase struct {
	inventario repository.InventarioRepository
}

// NewGuardarUseCase construye el caso de uso.
func NewGuardarUseCase(inventario repository.InventarioRepository) *GuardarUseCase {
	return &GuardarUseCase{inventario: inventario}
}

// Execute valida, recalcula y guarda las filas recibidas. Los campos
// final_teorico y diferencia que traiga el cliente se descartan.
func (uc *GuardarUseCase) Execute(filas []dto.RegistroIPVRequest) ([]*entity.InventarioDiario, error) {
	if len(filas) == 0 {
		return nil, domain.ErrInvalidInput
	}

	registros := make([]*entity.InventarioDiario, 0, len(filas))
	for _, fila := range filas {
		if fila.AreaID == "" || fila.ProductoID == "" {
			return nil, domain.ErrInvalidInput
		}
		fecha, err := domain.ParseFecha(fila.Fecha)
		if err != nil {
			return nil, err
		}
		id := fila.ID
		if id == "" {
			id = uuid.New().String()
		}
		registro := &entity.InventarioDiario{
			ID:           id,
			Fecha:        fecha,
			AreaID:       fila.AreaID,
			ProductoID:   fila.ProductoID,
			Inicio:       fila.Inicio,
			Entradas:     fila.Entradas,
			Consumo:      fila.Consumo,
			Merma:        fila.Merma,
			OtrasSalidas: fila.OtrasSalidas,
			FinalFisico:  fila.FinalFisico,
			Comentario:   fila.Comentario,
		}
		registro.CalcularDiferencias()
		registros = append(registros, registro)
	}

	if err := uc.inventario.SaveAll(registros); err != nil {
		return nil, err
	}
	return registros, nil
}
