package ipv

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jmorenoc/ipv-backend/internal/application/dto"
	"github.com/jmorenoc/ipv-backend/internal/domain"
	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
	"github.com/jmorenoc/ipv-backend/internal/domain/repository"
)

// ReporteUseCase agrega los registros de una fecha en el reporte de cierre:
// filas por área, resumen de faltantes/sobrantes/mermas y notas.
type ReporteUseCase struct {
	inventario repository.InventarioRepository
	productos  repository.ProductoRepository
	areas      repository.AreaRepository
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(
	inventario repository.InventarioRepository,
	productos repository.ProductoRepository,
	areas repository.AreaRepository,
) *ReporteUseCase {
	return &ReporteUseCase{inventario: inventario, productos: productos, areas: areas}
}

// Execute genera el reporte. Una fecha sin registros devuelve
// domain.ErrNotFound: "sin datos aún" es distinto de un reporte en ceros.
func (uc *ReporteUseCase) Execute(fecha time.Time) (*dto.ReporteIPV, error) {
	registros, err := uc.inventario.FindByDate(fecha)
	if err != nil {
		return nil, err
	}
	if len(registros) == 0 {
		return nil, domain.ErrNotFound
	}

	productos, err := uc.productos.ListAll("nombre")
	if err != nil {
		return nil, err
	}
	productosPorID := make(map[string]*entity.Producto, len(productos))
	for _, p := range productos {
		productosPorID[p.ID] = p
	}
	areas, err := uc.areas.ListAll()
	if err != nil {
		return nil, err
	}
	areasPorID := make(map[string]*entity.Area, len(areas))
	for _, a := range areas {
		areasPorID[a.ID] = a
	}

	reporte := &dto.ReporteIPV{
		Fecha:   fecha.Format(domain.FechaLayout),
		Areas:   make(map[string][]dto.FilaReporte),
		Resumen: make(map[string]*dto.ResumenArea, len(areas)),
		Notas:   []string{},
	}
	for _, a := range areas {
		reporte.Resumen[a.Nombre] = &dto.ResumenArea{
			Faltantes: []string{},
			Sobrantes: []string{},
			Mermas:    []string{},
		}
	}

	for _, reg := range registros {
		area := areasPorID[reg.AreaID]
		producto := productosPorID[reg.ProductoID]
		if area == nil || producto == nil {
			// Registro de un área o producto ya eliminado: se omite.
			continue
		}

		reporte.Areas[area.Nombre] = append(reporte.Areas[area.Nombre], dto.FilaReporte{
			Producto:     producto.Nombre,
			UM:           producto.UnidadMedida,
			Inicio:       reg.Inicio,
			Entradas:     reg.Entradas,
			Consumo:      reg.Consumo,
			Merma:        reg.Merma,
			OtrasSalidas: reg.OtrasSalidas,
			FinalTeorico: reg.FinalTeorico,
			FinalFisico:  reg.FinalFisico,
			Diferencia:   reg.Diferencia,
		})

		resumen := reporte.Resumen[area.Nombre]
		switch {
		case reg.Diferencia.IsNegative():
			resumen.Faltantes = append(resumen.Faltantes,
				fmt.Sprintf("%s: %s %s", producto.Nombre, reg.Diferencia.Abs(), producto.UnidadMedida))
		case reg.Diferencia.IsPositive():
			resumen.Sobrantes = append(resumen.Sobrantes,
				fmt.Sprintf("%s: %s %s", producto.Nombre, reg.Diferencia, producto.UnidadMedida))
		}
		if reg.Merma.IsPositive() {
			resumen.Mermas = append(resumen.Mermas,
				fmt.Sprintf("%s: %s %s", producto.Nombre, reg.Merma, producto.UnidadMedida))
		}

		reporte.Notas = append(reporte.Notas, notasDeComentario(producto.Nombre, reg.Comentario)...)
	}

	return reporte, nil
}

// notasDeComentario extrae las notas de un comentario. El campo admite dos
// variantes: un objeto JSON campo→texto escrito al anotar celdas (una nota
// por valor no vacío), o texto plano (una sola nota). El fallback a texto
// plano cubre datos históricos anteriores al formato estructurado.
func notasDeComentario(producto, comentario string) []string {
	if strings.TrimSpace(comentario) == "" {
		return nil
	}
	var campos map[string]string
	if err := json.Unmarshal([]byte(comentario), &campos); err != nil {
		return []string{fmt.Sprintf("%s: %s", producto, comentario)}
	}
	nombres := make([]string, 0, len(campos))
	for campo := range campos {
		nombres = append(nombres, campo)
	}
	sort.Strings(nombres)
	var notas []string
	for _, campo := range nombres {
		if strings.TrimSpace(campos[campo]) == "" {
			continue
		}
		notas = append(notas, fmt.Sprintf("%s (%s): %s", producto, campo, campos[campo]))
	}
	return notas
}
