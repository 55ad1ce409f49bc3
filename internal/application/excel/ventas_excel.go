package excel

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/jmorenoc/ipv-backend/internal/domain"
	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
	"github.com/jmorenoc/ipv-backend/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que las recetas auto-creadas y las
// ventas importadas se confirmen o reviertan juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		recetas repository.RecetaRepository,
		ventas repository.VentaRepository,
	) error) error
}

// VentasExcelUseCase importa ventas desde el reporte .xlsx del punto de
// venta (columnas Nombre y Cantidad). Las recetas que no existen en el
// catálogo se crean automáticamente, activas y sin ingredientes, para que el
// encargado complete su BOM después.
type VentasExcelUseCase struct {
	txRunner TxRunner
	recetas  repository.RecetaRepository
}

// ImportVentasResult resultado de la importación.
type ImportVentasResult struct {
	Ventas        []*entity.Venta
	NuevasRecetas []*entity.Receta
}

// NewVentasExcelUseCase construye el caso de uso.
func NewVentasExcelUseCase(txRunner TxRunner, recetas repository.RecetaRepository) *VentasExcelUseCase {
	return &VentasExcelUseCase{txRunner: txRunner, recetas: recetas}
}

// Import procesa el archivo. fecha en formato YYYY-MM-DD; vacía usa el día
// actual. Cualquier fila con cantidad no positiva aborta la importación
// reportando cada fila ofensora con su número en la planilla.
func (uc *VentasExcelUseCase) Import(ctx context.Context, r io.Reader, fecha string) (*ImportVentasResult, error) {
	dia := time.Now().Truncate(24 * time.Hour)
	if fecha != "" {
		var err error
		if dia, err = domain.ParseFecha(fecha); err != nil {
			return nil, err
		}
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: no es un archivo xlsx válido", domain.ErrInvalidInput)
	}
	defer f.Close()

	filas, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("leer hoja: %w", err)
	}
	if len(filas) == 0 {
		return nil, fmt.Errorf("%w: el archivo está vacío", domain.ErrInvalidInput)
	}

	colNombre, colCantidad := -1, -1
	for i, encabezado := range filas[0] {
		switch strings.TrimSpace(encabezado) {
		case "Nombre":
			colNombre = i
		case "Cantidad":
			colCantidad = i
		}
	}
	if colNombre < 0 || colCantidad < 0 {
		return nil, fmt.Errorf("%w: el archivo debe contener las columnas 'Nombre' y 'Cantidad'", domain.ErrInvalidInput)
	}

	var (
		ventas  []*entity.Venta
		errores []string
		nombres = map[string]bool{}
	)
	for idx, fila := range filas[1:] {
		if colNombre >= len(fila) {
			continue
		}
		nombre := strings.TrimSpace(fila[colNombre])
		if nombre == "" {
			continue
		}
		cantidadTexto := ""
		if colCantidad < len(fila) {
			cantidadTexto = strings.TrimSpace(fila[colCantidad])
		}
		cantidad, err := strconv.ParseFloat(cantidadTexto, 64)
		if err != nil || cantidad <= 0 {
			errores = append(errores, fmt.Sprintf(
				"Fila %d: Cantidad inválida (%s) para la receta '%s'", idx+2, cantidadTexto, nombre))
			continue
		}
		nombres[nombre] = true
		ventas = append(ventas, &entity.Venta{
			ID:           uuid.New().String(),
			RecetaNombre: nombre,
			Cantidad:     int(cantidad),
			Fecha:        dia,
		})
	}
	if len(errores) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(errores, "\n"))
	}

	// Recetas referenciadas que aún no existen en el catálogo.
	var faltantes []*entity.Receta
	for nombre := range nombres {
		existente, err := uc.recetas.FindByName(nombre)
		if err != nil {
			return nil, err
		}
		if existente == nil {
			faltantes = append(faltantes, &entity.Receta{
				ID:     uuid.New().String(),
				Nombre: nombre,
				Activa: true,
			})
		}
	}

	err = uc.txRunner.Run(ctx, func(recetas repository.RecetaRepository, ventasRepo repository.VentaRepository) error {
		if len(faltantes) > 0 {
			if err := recetas.CreateBatch(faltantes); err != nil {
				return err
			}
		}
		return ventasRepo.CreateBatch(ventas)
	})
	if err != nil {
		return nil, err
	}
	return &ImportVentasResult{Ventas: ventas, NuevasRecetas: faltantes}, nil
}
