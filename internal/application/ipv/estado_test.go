package ipv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorenoc/ipv-backend/internal/application/ipv"
	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
)

func catalogoBase() (*memProductos, *memAreas) {
	productos := &memProductos{items: []*entity.Producto{
		{ID: "p1", Nombre: "TOMATE", UnidadMedida: "KG"},
		{ID: "p2", Nombre: "QUESO", UnidadMedida: "KG"},
	}}
	areas := &memAreas{items: []*entity.Area{
		{ID: "a1", Nombre: "COCINA", Codigo: "C"},
		{ID: "a2", Nombre: "BARRA", Codigo: "B"},
	}}
	return productos, areas
}

// TestEstado_DevuelveRegistrosGuardados una fecha con registros devuelve esas
// filas agrupadas por nombre de área, con los nombres denormalizados.
func TestEstado_DevuelveRegistrosGuardados(t *testing.T) {
	productos, areas := catalogoBase()
	inventario := newMemInventario()
	require.NoError(t, inventario.SaveAll([]*entity.InventarioDiario{
		{ID: "x1", Fecha: fechaDe("2026-03-02"), AreaID: "a1", ProductoID: "p1", Inicio: dec("5")},
	}))

	uc := ipv.NewEstadoUseCase(inventario, productos, areas)
	estado, err := uc.Execute(fechaDe("2026-03-02"))
	require.NoError(t, err)

	require.Contains(t, estado, "COCINA")
	require.Contains(t, estado, "BARRA", "toda área del catálogo aparece como llave")
	require.Len(t, estado["COCINA"], 1)
	assert.Empty(t, estado["BARRA"])
	assert.Equal(t, "TOMATE", estado["COCINA"][0].ProductoNombre)
	assert.Equal(t, "COCINA", estado["COCINA"][0].AreaNombre)
}

// TestEstado_PlantillaConArrastre sin registros del día, el estado es una
// plantilla armada desde el modelo con la apertura igual al cierre físico del
// día anterior.
func TestEstado_PlantillaConArrastre(t *testing.T) {
	productos, areas := catalogoBase()
	inventario := newMemInventario()
	require.NoError(t, inventario.SaveModelo("a1", []entity.ModeloProducto{
		{ProductoID: "p1", Orden: 0},
		{ProductoID: "p2", Orden: 1},
	}))
	// Cierre del 1 de marzo: 7.5 kg de tomate en cocina.
	require.NoError(t, inventario.SaveAll([]*entity.InventarioDiario{
		{ID: "x1", Fecha: fechaDe("2026-03-01"), AreaID: "a1", ProductoID: "p1", FinalFisico: dec("7.5")},
	}))

	uc := ipv.NewEstadoUseCase(inventario, productos, areas)
	estado, err := uc.Execute(fechaDe("2026-03-02"))
	require.NoError(t, err)

	require.Len(t, estado["COCINA"], 2)
	tomate := estado["COCINA"][0]
	assert.Equal(t, "TOMATE", tomate.ProductoNombre)
	assert.True(t, dec("7.5").Equal(tomate.Inicio), "la apertura arrastra el cierre físico anterior")
	assert.True(t, tomate.FinalFisico.IsZero())
	assert.NotEmpty(t, tomate.ID, "cada fila de plantilla nace con ID propio")

	queso := estado["COCINA"][1]
	assert.True(t, queso.Inicio.IsZero(), "sin cierre anterior la apertura es cero")
}

// TestEstado_HuecoReiniciaApertura el arrastre mira exactamente un día atrás:
// si el día anterior no se registró, la apertura es cero aunque existan
// registros más antiguos.
func TestEstado_HuecoReiniciaApertura(t *testing.T) {
	productos, areas := catalogoBase()
	inventario := newMemInventario()
	require.NoError(t, inventario.SaveModelo("a1", []entity.ModeloProducto{{ProductoID: "p1", Orden: 0}}))
	// Registro del 1 de marzo; el 2 no se trabajó.
	require.NoError(t, inventario.SaveAll([]*entity.InventarioDiario{
		{ID: "x1", Fecha: fechaDe("2026-03-01"), AreaID: "a1", ProductoID: "p1", FinalFisico: dec("9")},
	}))

	uc := ipv.NewEstadoUseCase(inventario, productos, areas)
	estado, err := uc.Execute(fechaDe("2026-03-03"))
	require.NoError(t, err)

	require.Len(t, estado["COCINA"], 1)
	assert.True(t, estado["COCINA"][0].Inicio.IsZero(),
		"un hueco en los registros reinicia la apertura en cero")
}

// TestEstado_ProductoEliminadoDelModelo una entrada del modelo cuyo producto
// ya no existe se salta sin error.
func TestEstado_ProductoEliminadoDelModelo(t *testing.T) {
	productos, areas := catalogoBase()
	inventario := newMemInventario()
	require.NoError(t, inventario.SaveModelo("a1", []entity.ModeloProducto{
		{ProductoID: "p1", Orden: 0},
		{ProductoID: "fantasma", Orden: 1},
	}))

	uc := ipv.NewEstadoUseCase(inventario, productos, areas)
	estado, err := uc.Execute(fechaDe("2026-03-02"))
	require.NoError(t, err)
	require.Len(t, estado["COCINA"], 1)
	assert.Equal(t, "TOMATE", estado["COCINA"][0].ProductoNombre)
}

// TestEstado_ProductoEliminadoEnRegistro un registro guardado cuyo producto
// fue eliminado sale con nombre centinela, no desaparece.
func TestEstado_ProductoEliminadoEnRegistro(t *testing.T) {
	productos, areas := catalogoBase()
	inventario := newMemInventario()
	require.NoError(t, inventario.SaveAll([]*entity.InventarioDiario{
		{ID: "x1", Fecha: fechaDe("2026-03-02"), AreaID: "a1", ProductoID: "borrado", Inicio: dec("1")},
	}))

	uc := ipv.NewEstadoUseCase(inventario, productos, areas)
	estado, err := uc.Execute(fechaDe("2026-03-02"))
	require.NoError(t, err)
	require.Len(t, estado["COCINA"], 1)
	assert.Equal(t, "Producto no encontrado", estado["COCINA"][0].ProductoNombre)
}
