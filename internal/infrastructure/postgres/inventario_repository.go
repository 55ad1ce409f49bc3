package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
	"github.com/jmorenoc/ipv-backend/internal/domain/repository"
)

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// InventarioRepo implementación del puerto InventarioRepository sobre
// PostgreSQL: registros diarios del IPV y modelo de productos por área.
type InventarioRepo struct {
	q Querier
}

func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

// FindByDate devuelve los registros del día con los nombres de producto y
// área ya resueltos. LEFT JOIN: un registro cuyo producto fue borrado (no
// debería pasar, InUse lo impide) sale con nombre vacío y la capa de
// aplicación decide qué hacer con él.
func (r *InventarioRepo) FindByDate(fecha time.Time) ([]*entity.InventarioDiario, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT i.id, i.fecha, i.area_id, i.producto_id,
		       i.inicio, i.entradas, i.consumo, i.merma, i.otras_salidas,
		       i.final_fisico, i.final_teorico, i.diferencia, i.comentario,
		       COALESCE(p.nombre, ''), COALESCE(a.nombre, '')
		FROM inventario_diario i
		LEFT JOIN productos p ON p.id = i.producto_id
		LEFT JOIN areas a ON a.id = i.area_id
		WHERE i.fecha = $1
		ORDER BY a.nombre, p.nombre`, fecha)
	if err != nil {
		return nil, fmt.Errorf("inventario por fecha: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventarioDiario
	for rows.Next() {
		var reg entity.InventarioDiario
		err := rows.Scan(
			&reg.ID, &reg.Fecha, &reg.AreaID, &reg.ProductoID,
			&reg.Inicio, &reg.Entradas, &reg.Consumo, &reg.Merma, &reg.OtrasSalidas,
			&reg.FinalFisico, &reg.FinalTeorico, &reg.Diferencia, &reg.Comentario,
			&reg.ProductoNombre, &reg.AreaNombre,
		)
		if err != nil {
			return nil, fmt.Errorf("scan registro: %w", err)
		}
		list = append(list, &reg)
	}
	return list, rows.Err()
}

// FindAllDates devuelve las fechas únicas con registros, más reciente primero.
func (r *InventarioRepo) FindAllDates() ([]time.Time, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT DISTINCT fecha FROM inventario_diario ORDER BY fecha DESC`)
	if err != nil {
		return nil, fmt.Errorf("fechas de inventario: %w", err)
	}
	defer rows.Close()

	var fechas []time.Time
	for rows.Next() {
		var f time.Time
		if err := rows.Scan(&f); err != nil {
			return nil, fmt.Errorf("scan fecha: %w", err)
		}
		fechas = append(fechas, f)
	}
	return fechas, rows.Err()
}

// PreviousDayClosing devuelve el final_fisico de exactamente un día calendario
// atrás, o cero si ese día no tiene registro. Un hueco reinicia la apertura.
func (r *InventarioRepo) PreviousDayClosing(fecha time.Time, areaID, productoID string) (decimal.Decimal, error) {
	anterior := fecha.AddDate(0, 0, -1)
	var final decimal.Decimal
	err := r.q.QueryRow(context.Background(), `
		SELECT final_fisico FROM inventario_diario
		WHERE fecha = $1 AND area_id = $2 AND producto_id = $3`,
		anterior, areaID, productoID,
	).Scan(&final)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("cierre día anterior: %w", err)
	}
	return final, nil
}

// SaveAll inserta o actualiza cada registro según (fecha, area_id,
// producto_id) como una unidad. El upsert garantiza que guardar dos veces el
// mismo día no duplica filas.
func (r *InventarioRepo) SaveAll(registros []*entity.InventarioDiario) error {
	ctx := context.Background()
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin guardar inventario: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, reg := range registros {
		_, err := tx.Exec(ctx, `
			INSERT INTO inventario_diario
				(id, fecha, area_id, producto_id,
				 inicio, entradas, consumo, merma, otras_salidas,
				 final_fisico, final_teorico, diferencia, comentario)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			ON CONFLICT (fecha, area_id, producto_id) DO UPDATE SET
				inicio = EXCLUDED.inicio,
				entradas = EXCLUDED.entradas,
				consumo = EXCLUDED.consumo,
				merma = EXCLUDED.merma,
				otras_salidas = EXCLUDED.otras_salidas,
				final_fisico = EXCLUDED.final_fisico,
				final_teorico = EXCLUDED.final_teorico,
				diferencia = EXCLUDED.diferencia,
				comentario = EXCLUDED.comentario`,
			reg.ID, reg.Fecha, reg.AreaID, reg.ProductoID,
			reg.Inicio, reg.Entradas, reg.Consumo, reg.Merma, reg.OtrasSalidas,
			reg.FinalFisico, reg.FinalTeorico, reg.Diferencia, reg.Comentario,
		)
		if err != nil {
			return fmt.Errorf("upsert registro: %w", err)
		}
	}
	return tx.Commit(ctx)
}

// GetModelos devuelve el modelo de IPV agrupado por area_id, productos en el
// orden configurado.
func (r *InventarioRepo) GetModelos() (map[string][]entity.ModeloProducto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT area_id, producto_id, orden FROM modelo_ipv ORDER BY area_id, orden`)
	if err != nil {
		return nil, fmt.Errorf("modelos de IPV: %w", err)
	}
	defer rows.Close()

	modelos := make(map[string][]entity.ModeloProducto)
	for rows.Next() {
		var areaID string
		var mp entity.ModeloProducto
		if err := rows.Scan(&areaID, &mp.ProductoID, &mp.Orden); err != nil {
			return nil, fmt.Errorf("scan modelo: %w", err)
		}
		modelos[areaID] = append(modelos[areaID], mp)
	}
	return modelos, rows.Err()
}

// SaveModelo reemplaza por completo el modelo del área (delete + insert).
func (r *InventarioRepo) SaveModelo(areaID string, productos []entity.ModeloProducto) error {
	ctx := context.Background()
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin guardar modelo: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM modelo_ipv WHERE area_id = $1`, areaID); err != nil {
		return fmt.Errorf("limpiar modelo: %w", err)
	}
	for _, mp := range productos {
		_, err := tx.Exec(ctx, `
			INSERT INTO modelo_ipv (id, area_id, producto_id, orden)
			VALUES (gen_random_uuid(), $1, $2, $3)`,
			areaID, mp.ProductoID, mp.Orden,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("producto repetido en el modelo: %w", err)
			}
			return fmt.Errorf("insert modelo: %w", err)
		}
	}
	return tx.Commit(ctx)
}
