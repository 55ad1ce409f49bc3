package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
	"github.com/jmorenoc/ipv-backend/internal/domain/repository"
)

const hojaRecetas = "Recetas"

// RecetasExcelUseCase exporta el recetario con su BOM desplegado.
type RecetasExcelUseCase struct {
	recetas   repository.RecetaRepository
	productos repository.ProductoRepository
	areas     repository.AreaRepository
}

// NewRecetasExcelUseCase construye el caso de uso.
func NewRecetasExcelUseCase(
	recetas repository.RecetaRepository,
	productos repository.ProductoRepository,
	areas repository.AreaRepository,
) *RecetasExcelUseCase {
	return &RecetasExcelUseCase{recetas: recetas, productos: productos, areas: areas}
}

// Export genera un .xlsx con una fila por ingrediente. Una receta sin
// ingredientes produce una fila con las columnas de ingrediente en blanco,
// para que el recetario completo quede visible en la planilla.
func (uc *RecetasExcelUseCase) Export() ([]byte, error) {
	recetas, err := uc.recetas.ListAll("nombre", "")
	if err != nil {
		return nil, err
	}
	productosPorID, areasPorID, err := uc.catalogos()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", hojaRecetas); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}

	encabezados := []string{"receta_nombre", "producto_nombre", "unidad_medida", "cantidad", "area_nombre"}
	for i, h := range encabezados {
		celda, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(hojaRecetas, celda, h)
	}

	fila := 2
	for _, receta := range recetas {
		if len(receta.Ingredientes) == 0 {
			f.SetCellValue(hojaRecetas, "A"+fmt.Sprint(fila), receta.Nombre)
			fila++
			continue
		}
		for _, ing := range receta.Ingredientes {
			nombreProducto, unidad := "Producto no encontrado", ""
			if p, ok := productosPorID[ing.ProductoID]; ok {
				nombreProducto, unidad = p.Nombre, p.UnidadMedida
			}
			nombreArea := "Área no encontrada"
			if a, ok := areasPorID[ing.AreaID]; ok {
				nombreArea = a.Nombre
			}
			n := fmt.Sprint(fila)
			f.SetCellValue(hojaRecetas, "A"+n, receta.Nombre)
			f.SetCellValue(hojaRecetas, "B"+n, nombreProducto)
			f.SetCellValue(hojaRecetas, "C"+n, unidad)
			f.SetCellValue(hojaRecetas, "D"+n, ing.Cantidad.InexactFloat64())
			f.SetCellValue(hojaRecetas, "E"+n, nombreArea)
			fila++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("escribir xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func (uc *RecetasExcelUseCase) catalogos() (map[string]*entity.Producto, map[string]*entity.Area, error) {
	productos, err := uc.productos.ListAll("nombre")
	if err != nil {
		return nil, nil, err
	}
	productosPorID := make(map[string]*entity.Producto, len(productos))
	for _, p := range productos {
		productosPorID[p.ID] = p
	}
	areas, err := uc.areas.ListAll()
	if err != nil {
		return nil, nil, err
	}
	areasPorID := make(map[string]*entity.Area, len(areas))
	for _, a := range areas {
		areasPorID[a.ID] = a
	}
	return productosPorID, areasPorID, nil
}
