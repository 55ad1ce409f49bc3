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

var _ repository.RecetaRepository = (*RecetaRepo)(nil)

// RecetaRepo implementación del puerto RecetaRepository sobre PostgreSQL.
// Receta e ingredientes se persisten juntos: cada escritura multi-sentencia
// corre en su propia transacción (o savepoint, si el Querier ya es una tx).
type RecetaRepo struct {
	q Querier
}

func NewRecetaRepository(q Querier) *RecetaRepo {
	return &RecetaRepo{q: q}
}

func (r *RecetaRepo) Create(receta *entity.Receta) error {
	return r.CreateBatch([]*entity.Receta{receta})
}

// CreateBatch inserta recetas con sus ingredientes como una unidad.
func (r *RecetaRepo) CreateBatch(recetas []*entity.Receta) error {
	ctx := context.Background()
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin insert recetas: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, receta := range recetas {
		_, err := tx.Exec(ctx,
			`INSERT INTO recetas (id, nombre, activa) VALUES ($1, $2, $3)`,
			receta.ID, receta.Nombre, receta.Activa,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert receta: %w", err)
		}
		if err := insertIngredientes(ctx, tx, receta.ID, receta.Ingredientes); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func insertIngredientes(ctx context.Context, tx pgx.Tx, recetaID string, ingredientes []entity.Ingrediente) error {
	for _, ing := range ingredientes {
		_, err := tx.Exec(ctx,
			`INSERT INTO ingredientes (id, receta_id, producto_id, area_id, cantidad)
			 VALUES ($1, $2, $3, $4, $5)`,
			ing.ID, recetaID, ing.ProductoID, ing.AreaID, ing.Cantidad,
		)
		if err != nil {
			return fmt.Errorf("insert ingrediente: %w", err)
		}
	}
	return nil
}

func (r *RecetaRepo) GetByID(id string) (*entity.Receta, error) {
	var receta entity.Receta
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, activa FROM recetas WHERE id = $1`, id,
	).Scan(&receta.ID, &receta.Nombre, &receta.Activa)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receta: %w", err)
	}
	if err := r.loadIngredientes(&receta); err != nil {
		return nil, err
	}
	return &receta, nil
}

func (r *RecetaRepo) FindByName(nombre string) (*entity.Receta, error) {
	var receta entity.Receta
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, activa FROM recetas WHERE nombre = $1`, nombre,
	).Scan(&receta.ID, &receta.Nombre, &receta.Activa)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find receta por nombre: %w", err)
	}
	if err := r.loadIngredientes(&receta); err != nil {
		return nil, err
	}
	return &receta, nil
}

func (r *RecetaRepo) loadIngredientes(receta *entity.Receta) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, receta_id, producto_id, area_id, cantidad
		 FROM ingredientes WHERE receta_id = $1`, receta.ID)
	if err != nil {
		return fmt.Errorf("ingredientes de receta: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ing entity.Ingrediente
		if err := rows.Scan(&ing.ID, &ing.RecetaID, &ing.ProductoID, &ing.AreaID, &ing.Cantidad); err != nil {
			return fmt.Errorf("scan ingrediente: %w", err)
		}
		receta.Ingredientes = append(receta.Ingredientes, ing)
	}
	return rows.Err()
}

// ListAll lista recetas con sus ingredientes en una sola pasada (dos queries,
// sin N+1). filterBy "sin_ingredientes" deja solo las recetas con BOM vacío.
func (r *RecetaRepo) ListAll(sortBy, filterBy string) ([]*entity.Receta, error) {
	query := `SELECT id, nombre, activa FROM recetas ORDER BY nombre`
	switch sortBy {
	case "modificado":
		query = `
			SELECT rc.id, rc.nombre, rc.activa FROM recetas rc
			ORDER BY (
				SELECT MAX(h.fecha_cambio) FROM historial_cambios h WHERE h.entidad_id = rc.id
			) DESC NULLS LAST`
	case "recientes":
		query = `SELECT id, nombre, activa FROM recetas ORDER BY created_at DESC`
	}

	ctx := context.Background()
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list recetas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Receta
	porID := make(map[string]*entity.Receta)
	for rows.Next() {
		var receta entity.Receta
		if err := rows.Scan(&receta.ID, &receta.Nombre, &receta.Activa); err != nil {
			return nil, fmt.Errorf("scan receta: %w", err)
		}
		list = append(list, &receta)
		porID[receta.ID] = &receta
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	ingRows, err := r.q.Query(ctx,
		`SELECT id, receta_id, producto_id, area_id, cantidad FROM ingredientes`)
	if err != nil {
		return nil, fmt.Errorf("list ingredientes: %w", err)
	}
	defer ingRows.Close()

	for ingRows.Next() {
		var ing entity.Ingrediente
		if err := ingRows.Scan(&ing.ID, &ing.RecetaID, &ing.ProductoID, &ing.AreaID, &ing.Cantidad); err != nil {
			return nil, fmt.Errorf("scan ingrediente: %w", err)
		}
		if receta, ok := porID[ing.RecetaID]; ok {
			receta.Ingredientes = append(receta.Ingredientes, ing)
		}
	}
	if err := ingRows.Err(); err != nil {
		return nil, err
	}

	if filterBy == "sin_ingredientes" {
		var filtradas []*entity.Receta
		for _, receta := range list {
			if len(receta.Ingredientes) == 0 {
				filtradas = append(filtradas, receta)
			}
		}
		return filtradas, nil
	}
	return list, nil
}

// Update reemplaza la receta y la totalidad de sus ingredientes.
func (r *RecetaRepo) Update(receta *entity.Receta) error {
	ctx := context.Background()
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update receta: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`UPDATE recetas SET nombre = $2, activa = $3 WHERE id = $1`,
		receta.ID, receta.Nombre, receta.Activa,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update receta: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM ingredientes WHERE receta_id = $1`, receta.ID); err != nil {
		return fmt.Errorf("limpiar ingredientes: %w", err)
	}
	if err := insertIngredientes(ctx, tx, receta.ID, receta.Ingredientes); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Delete elimina la receta; los ingredientes caen por ON DELETE CASCADE.
func (r *RecetaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM recetas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete receta: %w", err)
	}
	return nil
}
