package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
	"github.com/jmorenoc/ipv-backend/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL.
type VentaRepo struct {
	q Querier
}

func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

func (r *VentaRepo) Create(venta *entity.Venta) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO ventas (id, receta_nombre, cantidad, fecha) VALUES ($1, $2, $3, $4)`,
		venta.ID, venta.RecetaNombre, venta.Cantidad, venta.Fecha,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateBatch inserta las ventas como una unidad.
func (r *VentaRepo) CreateBatch(ventas []*entity.Venta) error {
	ctx := context.Background()
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin insert ventas: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, venta := range ventas {
		_, err := tx.Exec(ctx,
			`INSERT INTO ventas (id, receta_nombre, cantidad, fecha) VALUES ($1, $2, $3, $4)`,
			venta.ID, venta.RecetaNombre, venta.Cantidad, venta.Fecha,
		)
		if err != nil {
			return fmt.Errorf("insert venta: %w", err)
		}
	}
	return tx.Commit(ctx)
}

func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	var v entity.Venta
	err := r.q.QueryRow(context.Background(),
		`SELECT id, receta_nombre, cantidad, fecha FROM ventas WHERE id = $1`, id,
	).Scan(&v.ID, &v.RecetaNombre, &v.Cantidad, &v.Fecha)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

func (r *VentaRepo) ListAll() ([]*entity.Venta, error) {
	return r.queryVentas(
		`SELECT id, receta_nombre, cantidad, fecha FROM ventas ORDER BY fecha DESC, receta_nombre`)
}

func (r *VentaRepo) FindByDate(fecha time.Time) ([]*entity.Venta, error) {
	return r.queryVentas(
		`SELECT id, receta_nombre, cantidad, fecha FROM ventas WHERE fecha = $1 ORDER BY receta_nombre`,
		fecha)
}

func (r *VentaRepo) queryVentas(query string, args ...any) ([]*entity.Venta, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(&v.ID, &v.RecetaNombre, &v.Cantidad, &v.Fecha); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

func (r *VentaRepo) Update(venta *entity.Venta) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE ventas SET receta_nombre = $2, cantidad = $3, fecha = $4 WHERE id = $1`,
		venta.ID, venta.RecetaNombre, venta.Cantidad, venta.Fecha,
	)
	if err != nil {
		return fmt.Errorf("update venta: %w", err)
	}
	return nil
}

func (r *VentaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ventas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	return nil
}

// DeleteBatch elimina las ventas indicadas como una unidad.
func (r *VentaRepo) DeleteBatch(ids []string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM ventas WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("delete ventas: %w", err)
	}
	return nil
}
