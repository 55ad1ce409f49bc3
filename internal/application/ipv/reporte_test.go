package ipv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorenoc/ipv-backend/internal/application/ipv"
	"github.com/jmorenoc/ipv-backend/internal/domain"
	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
)

// TestReporte_ClasificaDiferencias un faltante (diferencia negativa) entra en
// faltantes con la magnitud en positivo; un sobrante entra tal cual; una
// merma positiva se lista aparte.
func TestReporte_ClasificaDiferencias(t *testing.T) {
	productos, areas := catalogoBase()
	inventario := newMemInventario()

	// Tomate: teórico 5, físico 4 -> faltante de 1. Merma de 0.5.
	tomate := &entity.InventarioDiario{
		ID: "x1", Fecha: fechaDe("2026-03-02"), AreaID: "a1", ProductoID: "p1",
		Inicio: dec("6"), Merma: dec("0.5"), OtrasSalidas: dec("0.5"), FinalFisico: dec("4"),
	}
	tomate.CalcularDiferencias()
	// Queso: teórico 2, físico 3 -> sobrante de 1.
	queso := &entity.InventarioDiario{
		ID: "x2", Fecha: fechaDe("2026-03-02"), AreaID: "a1", ProductoID: "p2",
		Inicio: dec("2"), FinalFisico: dec("3"),
	}
	queso.CalcularDiferencias()
	require.NoError(t, inventario.SaveAll([]*entity.InventarioDiario{tomate, queso}))

	uc := ipv.NewReporteUseCase(inventario, productos, areas)
	reporte, err := uc.Execute(fechaDe("2026-03-02"))
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", reporte.Fecha)
	require.Len(t, reporte.Areas["COCINA"], 2)

	resumen := reporte.Resumen["COCINA"]
	require.NotNil(t, resumen)
	assert.Equal(t, []string{"TOMATE: 1 KG"}, resumen.Faltantes, "el faltante se reporta en magnitud positiva")
	assert.Equal(t, []string{"QUESO: 1 KG"}, resumen.Sobrantes)
	assert.Equal(t, []string{"TOMATE: 0.5 KG"}, resumen.Mermas)

	// BARRA no tiene filas pero sí resumen vacío.
	require.NotNil(t, reporte.Resumen["BARRA"])
	assert.Empty(t, reporte.Resumen["BARRA"].Faltantes)
}

// TestReporte_FechaSinRegistros una fecha sin filas devuelve ErrNotFound:
// "sin datos aún" es distinto de un reporte en ceros.
func TestReporte_FechaSinRegistros(t *testing.T) {
	productos, areas := catalogoBase()
	uc := ipv.NewReporteUseCase(newMemInventario(), productos, areas)

	_, err := uc.Execute(fechaDe("2026-03-02"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestReporte_NotasDeComentarioJSON un comentario con objeto JSON produce una
// nota por campo no vacío, con los campos en orden alfabético.
func TestReporte_NotasDeComentarioJSON(t *testing.T) {
	productos, areas := catalogoBase()
	inventario := newMemInventario()
	require.NoError(t, inventario.SaveAll([]*entity.InventarioDiario{
		{
			ID: "x1", Fecha: fechaDe("2026-03-02"), AreaID: "a1", ProductoID: "p1",
			Comentario: `{"merma":"se dañó en nevera","entradas":"factura 443","otras_salidas":""}`,
		},
	}))

	uc := ipv.NewReporteUseCase(inventario, productos, areas)
	reporte, err := uc.Execute(fechaDe("2026-03-02"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"TOMATE (entradas): factura 443",
		"TOMATE (merma): se dañó en nevera",
	}, reporte.Notas, "los campos vacíos se suprimen y el orden es alfabético")
}

// TestReporte_NotasDeComentarioPlano un comentario que no parsea como JSON se
// reporta como una sola nota de texto plano.
func TestReporte_NotasDeComentarioPlano(t *testing.T) {
	productos, areas := catalogoBase()
	inventario := newMemInventario()
	require.NoError(t, inventario.SaveAll([]*entity.InventarioDiario{
		{
			ID: "x1", Fecha: fechaDe("2026-03-02"), AreaID: "a1", ProductoID: "p1",
			Comentario: "llegó tarde el proveedor",
		},
		{
			ID: "x2", Fecha: fechaDe("2026-03-02"), AreaID: "a1", ProductoID: "p2",
			Comentario: "   ",
		},
	}))

	uc := ipv.NewReporteUseCase(inventario, productos, areas)
	reporte, err := uc.Execute(fechaDe("2026-03-02"))
	require.NoError(t, err)

	assert.Equal(t, []string{"TOMATE: llegó tarde el proveedor"}, reporte.Notas,
		"comentario en blanco no genera nota")
}

// TestReporte_RegistroHuerfanoSeOmite un registro cuyo producto o área ya no
// existe no aparece en el reporte.
func TestReporte_RegistroHuerfanoSeOmite(t *testing.T) {
	productos, areas := catalogoBase()
	inventario := newMemInventario()
	require.NoError(t, inventario.SaveAll([]*entity.InventarioDiario{
		{ID: "x1", Fecha: fechaDe("2026-03-02"), AreaID: "a1", ProductoID: "borrado"},
		{ID: "x2", Fecha: fechaDe("2026-03-02"), AreaID: "a1", ProductoID: "p1"},
	}))

	uc := ipv.NewReporteUseCase(inventario, productos, areas)
	reporte, err := uc.Execute(fechaDe("2026-03-02"))
	require.NoError(t, err)
	require.Len(t, reporte.Areas["COCINA"], 1)
	assert.Equal(t, "TOMATE", reporte.Areas["COCINA"][0].Producto)
}
