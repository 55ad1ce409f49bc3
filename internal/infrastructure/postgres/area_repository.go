package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmorenoc/ipv-backend/internal/domain"
	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
	"github.com/jmorenoc/ipv-backend/internal/domain/repository"
)

var _ repository.AreaRepository = (*AreaRepo)(nil)

// AreaRepo implementación del puerto AreaRepository sobre PostgreSQL.
type AreaRepo struct {
	q Querier
}

func NewAreaRepository(q Querier) *AreaRepo {
	return &AreaRepo{q: q}
}

func (r *AreaRepo) Create(area *entity.Area) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO areas (id, nombre, codigo) VALUES ($1, $2, $3)`,
		area.ID, area.Nombre, area.Codigo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert area: %w", err)
	}
	return nil
}

func (r *AreaRepo) GetByID(id string) (*entity.Area, error) {
	var a entity.Area
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, codigo FROM areas WHERE id = $1`, id,
	).Scan(&a.ID, &a.Nombre, &a.Codigo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get area: %w", err)
	}
	return &a, nil
}

func (r *AreaRepo) FindByName(nombre string) (*entity.Area, error) {
	var a entity.Area
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, codigo FROM areas WHERE nombre = $1`, nombre,
	).Scan(&a.ID, &a.Nombre, &a.Codigo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find area por nombre: %w", err)
	}
	return &a, nil
}

func (r *AreaRepo) ListAll() ([]*entity.Area, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, codigo FROM areas ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Area
	for rows.Next() {
		var a entity.Area
		if err := rows.Scan(&a.ID, &a.Nombre, &a.Codigo); err != nil {
			return nil, fmt.Errorf("scan area: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *AreaRepo) Update(area *entity.Area) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE areas SET nombre = $2, codigo = $3 WHERE id = $1`,
		area.ID, area.Nombre, area.Codigo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update area: %w", err)
	}
	return nil
}

func (r *AreaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM areas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete area: %w", err)
	}
	return nil
}

// InUse verifica referencias en ingredientes, inventario y modelos.
func (r *AreaRepo) InUse(id string) (bool, error) {
	var enUso bool
	err := r.q.QueryRow(context.Background(), `
		SELECT EXISTS (SELECT 1 FROM ingredientes WHERE area_id = $1)
		    OR EXISTS (SELECT 1 FROM inventario_diario WHERE area_id = $1)
		    OR EXISTS (SELECT 1 FROM modelo_ipv WHERE area_id = $1)`, id,
	).Scan(&enUso)
	if err != nil {
		return false, fmt.Errorf("area en uso: %w", err)
	}
	return enUso, nil
}
