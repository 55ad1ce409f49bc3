// Package excel implementa el intercambio de catálogos y ventas en formato
// .xlsx, el formato con el que el restaurante ya trabaja sus planillas.
package excel

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/jmorenoc/ipv-backend/internal/domain"
	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
	"github.com/jmorenoc/ipv-backend/internal/domain/repository"
)

const hojaProductos = "Productos"

// ProductosExcelUseCase exporta e importa el catálogo de productos.
type ProductosExcelUseCase struct {
	productos repository.ProductoRepository
}

// NewProductosExcelUseCase construye el caso de uso.
func NewProductosExcelUseCase(productos repository.ProductoRepository) *ProductosExcelUseCase {
	return &ProductosExcelUseCase{productos: productos}
}

// Export genera un .xlsx con columnas nombre y unidad_medida.
func (uc *ProductosExcelUseCase) Export() ([]byte, error) {
	productos, err := uc.productos.ListAll("nombre")
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", hojaProductos); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}

	f.SetCellValue(hojaProductos, "A1", "nombre")
	f.SetCellValue(hojaProductos, "B1", "unidad_medida")
	for i, p := range productos {
		fila := fmt.Sprint(i + 2)
		f.SetCellValue(hojaProductos, "A"+fila, p.Nombre)
		f.SetCellValue(hojaProductos, "B"+fila, p.UnidadMedida)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("escribir xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// Import carga productos desde un .xlsx con columnas nombre y unidad_medida.
// Las filas cuyo nombre ya existe en el catálogo se omiten sin error.
func (uc *ProductosExcelUseCase) Import(r io.Reader) error {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return fmt.Errorf("%w: no es un archivo xlsx válido", domain.ErrInvalidInput)
	}
	defer f.Close()

	filas, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return fmt.Errorf("leer hoja: %w", err)
	}
	if len(filas) == 0 {
		return fmt.Errorf("%w: el archivo está vacío", domain.ErrInvalidInput)
	}

	colNombre, colUnidad := -1, -1
	for i, encabezado := range filas[0] {
		switch strings.ToLower(strings.TrimSpace(encabezado)) {
		case "nombre":
			colNombre = i
		case "unidad_medida":
			colUnidad = i
		}
	}
	if colNombre < 0 || colUnidad < 0 {
		return fmt.Errorf("%w: el archivo debe contener las columnas nombre y unidad_medida", domain.ErrInvalidInput)
	}

	for _, fila := range filas[1:] {
		if colNombre >= len(fila) || colUnidad >= len(fila) {
			continue
		}
		nombre := strings.ToUpper(strings.TrimSpace(fila[colNombre]))
		unidad := strings.ToUpper(strings.TrimSpace(fila[colUnidad]))
		if nombre == "" || unidad == "" {
			continue
		}
		existente, err := uc.productos.FindByName(nombre)
		if err != nil {
			return err
		}
		if existente != nil {
			continue
		}
		if err := uc.productos.Create(&entity.Producto{
			ID:           uuid.New().String(),
			Nombre:       nombre,
			UnidadMedida: unidad,
		}); err != nil {
			return err
		}
	}
	return nil
}
