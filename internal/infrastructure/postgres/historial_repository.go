package postgres

import (
	"context"
	"fmt"

	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
	"github.com/jmorenoc/ipv-backend/internal/domain/repository"
)

var _ repository.HistorialRepository = (*HistorialRepo)(nil)

// HistorialRepo implementación del log de auditoría sobre PostgreSQL.
type HistorialRepo struct {
	q Querier
}

func NewHistorialRepository(q Querier) *HistorialRepo {
	return &HistorialRepo{q: q}
}

// Record agrega una entrada al log.
func (r *HistorialRepo) Record(cambio *entity.HistorialCambio) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO historial_cambios
			(id, entidad_tipo, entidad_id, campo_modificado, valor_anterior, valor_nuevo, fecha_cambio)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		cambio.ID, cambio.EntidadTipo, cambio.EntidadID,
		cambio.CampoModificado, cambio.ValorAnterior, cambio.ValorNuevo, cambio.FechaCambio,
	)
	if err != nil {
		return fmt.Errorf("insert historial: %w", err)
	}
	return nil
}

// ListByEntityType lista el historial de un tipo de entidad, más reciente
// primero.
func (r *HistorialRepo) ListByEntityType(entidadTipo string) ([]*entity.HistorialCambio, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, entidad_tipo, entidad_id, campo_modificado, valor_anterior, valor_nuevo, fecha_cambio
		FROM historial_cambios
		WHERE entidad_tipo = $1
		ORDER BY fecha_cambio DESC`, entidadTipo)
	if err != nil {
		return nil, fmt.Errorf("list historial: %w", err)
	}
	defer rows.Close()

	var list []*entity.HistorialCambio
	for rows.Next() {
		var h entity.HistorialCambio
		err := rows.Scan(&h.ID, &h.EntidadTipo, &h.EntidadID,
			&h.CampoModificado, &h.ValorAnterior, &h.ValorNuevo, &h.FechaCambio)
		if err != nil {
			return nil, fmt.Errorf("scan historial: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
