package ipv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorenoc/ipv-backend/internal/application/ipv"
	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
)

// TestConsumo_ExplotaRecetas verifica la explosión de ventas a consumo por
// (producto, área): 10 hamburguesas con 1 pan y 0.2 kg de carne cada una
// producen 10 panes y 2.0 kg de carne consumidos desde cocina.
func TestConsumo_ExplotaRecetas(t *testing.T) {
	recetas := &memRecetas{items: []*entity.Receta{
		{
			ID: "r1", Nombre: "HAMBURGUESA", Activa: true,
			Ingredientes: []entity.Ingrediente{
				{ID: "i1", RecetaID: "r1", ProductoID: "pan", AreaID: "cocina", Cantidad: dec("1")},
				{ID: "i2", RecetaID: "r1", ProductoID: "carne", AreaID: "cocina", Cantidad: dec("0.2")},
			},
		},
	}}
	ventas := &memVentas{items: []*entity.Venta{
		{ID: "v1", RecetaNombre: "HAMBURGUESA", Cantidad: 10, Fecha: fechaDe("2026-03-01")},
	}}

	uc := ipv.NewConsumoUseCase(ventas, recetas)
	consumo, err := uc.Execute(fechaDe("2026-03-01"))
	require.NoError(t, err)

	require.Len(t, consumo, 2)
	assert.True(t, dec("10").Equal(consumo[ipv.ClaveConsumo{ProductoID: "pan", AreaID: "cocina"}]),
		"10 ventas x 1 pan = 10")
	assert.True(t, dec("2").Equal(consumo[ipv.ClaveConsumo{ProductoID: "carne", AreaID: "cocina"}]),
		"10 ventas x 0.2 kg = 2.0 kg")
}

// TestConsumo_AcumulaVentasDelMismoDia dos ventas de la misma receta suman en
// el mismo balde.
func TestConsumo_AcumulaVentasDelMismoDia(t *testing.T) {
	recetas := &memRecetas{items: []*entity.Receta{
		{
			ID: "r1", Nombre: "JUGO", Activa: true,
			Ingredientes: []entity.Ingrediente{
				{ID: "i1", RecetaID: "r1", ProductoID: "naranja", AreaID: "barra", Cantidad: dec("3")},
			},
		},
	}}
	ventas := &memVentas{items: []*entity.Venta{
		{ID: "v1", RecetaNombre: "JUGO", Cantidad: 4, Fecha: fechaDe("2026-03-01")},
		{ID: "v2", RecetaNombre: "JUGO", Cantidad: 2, Fecha: fechaDe("2026-03-01")},
		{ID: "v3", RecetaNombre: "JUGO", Cantidad: 9, Fecha: fechaDe("2026-03-02")}, // otro día, no cuenta
	}}

	uc := ipv.NewConsumoUseCase(ventas, recetas)
	consumo, err := uc.Execute(fechaDe("2026-03-01"))
	require.NoError(t, err)

	assert.True(t, dec("18").Equal(consumo[ipv.ClaveConsumo{ProductoID: "naranja", AreaID: "barra"}]),
		"(4+2) ventas x 3 naranjas = 18")
}

// TestConsumo_RecetaInexistenteSeIgnora una venta cuya receta no está en el
// catálogo (o fue retirada) no aporta consumo ni produce error.
func TestConsumo_RecetaInexistenteSeIgnora(t *testing.T) {
	recetas := &memRecetas{}
	ventas := &memVentas{items: []*entity.Venta{
		{ID: "v1", RecetaNombre: "PLATO RETIRADO", Cantidad: 5, Fecha: fechaDe("2026-03-01")},
	}}

	uc := ipv.NewConsumoUseCase(ventas, recetas)
	consumo, err := uc.Execute(fechaDe("2026-03-01"))
	require.NoError(t, err)
	assert.Empty(t, consumo)
}

// TestConsumo_BusquedaPorNombreExacto la búsqueda no normaliza mayúsculas:
// "hamburguesa" y "HAMBURGUESA" son recetas distintas.
func TestConsumo_BusquedaPorNombreExacto(t *testing.T) {
	recetas := &memRecetas{items: []*entity.Receta{
		{
			ID: "r1", Nombre: "HAMBURGUESA", Activa: true,
			Ingredientes: []entity.Ingrediente{
				{ID: "i1", RecetaID: "r1", ProductoID: "pan", AreaID: "cocina", Cantidad: dec("1")},
			},
		},
	}}
	ventas := &memVentas{items: []*entity.Venta{
		{ID: "v1", RecetaNombre: "hamburguesa", Cantidad: 3, Fecha: fechaDe("2026-03-01")},
	}}

	uc := ipv.NewConsumoUseCase(ventas, recetas)
	consumo, err := uc.Execute(fechaDe("2026-03-01"))
	require.NoError(t, err)
	assert.Empty(t, consumo, "el nombre en minúsculas no debe coincidir")
}

// TestConsumo_MismoProductoDosAreas el mismo producto descontado desde dos
// áreas produce dos baldes independientes.
func TestConsumo_MismoProductoDosAreas(t *testing.T) {
	recetas := &memRecetas{items: []*entity.Receta{
		{
			ID: "r1", Nombre: "LIMONADA", Activa: true,
			Ingredientes: []entity.Ingrediente{
				{ID: "i1", RecetaID: "r1", ProductoID: "limon", AreaID: "barra", Cantidad: dec("2")},
				{ID: "i2", RecetaID: "r1", ProductoID: "limon", AreaID: "cocina", Cantidad: dec("1")},
			},
		},
	}}
	ventas := &memVentas{items: []*entity.Venta{
		{ID: "v1", RecetaNombre: "LIMONADA", Cantidad: 5, Fecha: fechaDe("2026-03-01")},
	}}

	uc := ipv.NewConsumoUseCase(ventas, recetas)
	consumo, err := uc.Execute(fechaDe("2026-03-01"))
	require.NoError(t, err)

	require.Len(t, consumo, 2)
	assert.True(t, dec("10").Equal(consumo[ipv.ClaveConsumo{ProductoID: "limon", AreaID: "barra"}]))
	assert.True(t, dec("5").Equal(consumo[ipv.ClaveConsumo{ProductoID: "limon", AreaID: "cocina"}]))
}
