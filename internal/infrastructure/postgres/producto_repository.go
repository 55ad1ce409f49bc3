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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO productos (id, nombre, unidad_medida) VALUES ($1, $2, $3)`,
		producto.ID, producto.Nombre, producto.UnidadMedida,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, unidad_medida FROM productos WHERE id = $1`, id,
	).Scan(&p.ID, &p.Nombre, &p.UnidadMedida)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// FindByName obtiene un producto por nombre exacto. Devuelve nil si no existe.
func (r *ProductoRepo) FindByName(nombre string) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, unidad_medida FROM productos WHERE nombre = $1`, nombre,
	).Scan(&p.ID, &p.Nombre, &p.UnidadMedida)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find producto por nombre: %w", err)
	}
	return &p, nil
}

// ListAll lista los productos según el criterio de orden.
func (r *ProductoRepo) ListAll(sortBy string) ([]*entity.Producto, error) {
	query := `SELECT id, nombre, unidad_medida FROM productos ORDER BY nombre`
	switch sortBy {
	case "modificado":
		query = `
			SELECT p.id, p.nombre, p.unidad_medida FROM productos p
			ORDER BY (
				SELECT MAX(h.fecha_cambio) FROM historial_cambios h WHERE h.entidad_id = p.id
			) DESC NULLS LAST`
	case "recientes":
		query = `SELECT id, nombre, unidad_medida FROM productos ORDER BY created_at DESC`
	}

	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.UnidadMedida); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza nombre y unidad de medida.
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET nombre = $2, unidad_medida = $3 WHERE id = $1`,
		producto.ID, producto.Nombre, producto.UnidadMedida,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

// InUse verifica referencias en las cuatro tablas dependientes.
func (r *ProductoRepo) InUse(id string) (bool, error) {
	var enUso bool
	err := r.q.QueryRow(context.Background(), `
		SELECT EXISTS (SELECT 1 FROM ingredientes WHERE producto_id = $1)
		    OR EXISTS (SELECT 1 FROM inventario_diario WHERE producto_id = $1)
		    OR EXISTS (SELECT 1 FROM modelo_ipv WHERE producto_id = $1)
		    OR EXISTS (SELECT 1 FROM movimientos WHERE producto_id = $1)`, id,
	).Scan(&enUso)
	if err != nil {
		return false, fmt.Errorf("producto en uso: %w", err)
	}
	return enUso, nil
}
