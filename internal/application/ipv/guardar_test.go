package ipv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorenoc/ipv-backend/internal/application/dto"
	"github.com/jmorenoc/ipv-backend/internal/application/ipv"
	"github.com/jmorenoc/ipv-backend/internal/domain"
)

// TestGuardar_RecalculaDerivados los campos final_teorico y diferencia se
// recalculan siempre; el guardado refleja la fórmula de balance.
func TestGuardar_RecalculaDerivados(t *testing.T) {
	inventario := newMemInventario()
	uc := ipv.NewGuardarUseCase(inventario)

	registros, err := uc.Execute([]dto.RegistroIPVRequest{
		{
			Fecha: "2026-03-02", AreaID: "a1", ProductoID: "p1",
			Inicio: dec("10"), Entradas: dec("5"), Consumo: dec("3"),
			Merma: dec("1"), OtrasSalidas: dec("0.5"), FinalFisico: dec("10"),
		},
	})
	require.NoError(t, err)
	require.Len(t, registros, 1)

	reg := registros[0]
	assert.True(t, dec("10.5").Equal(reg.FinalTeorico), "(10+5)-3-1-0.5 = 10.5")
	assert.True(t, dec("-0.5").Equal(reg.Diferencia), "10 - 10.5 = -0.5")
	assert.NotEmpty(t, reg.ID, "una fila sin ID recibe uno nuevo")

	guardados, err := inventario.FindByDate(fechaDe("2026-03-02"))
	require.NoError(t, err)
	assert.Len(t, guardados, 1)
}

// TestGuardar_UpsertPorLlave guardar dos veces la misma tripleta
// (fecha, área, producto) actualiza la fila, no la duplica.
func TestGuardar_UpsertPorLlave(t *testing.T) {
	inventario := newMemInventario()
	uc := ipv.NewGuardarUseCase(inventario)

	fila := dto.RegistroIPVRequest{
		Fecha: "2026-03-02", AreaID: "a1", ProductoID: "p1", FinalFisico: dec("4"),
	}
	_, err := uc.Execute([]dto.RegistroIPVRequest{fila})
	require.NoError(t, err)

	fila.FinalFisico = dec("6")
	_, err = uc.Execute([]dto.RegistroIPVRequest{fila})
	require.NoError(t, err)

	guardados, err := inventario.FindByDate(fechaDe("2026-03-02"))
	require.NoError(t, err)
	require.Len(t, guardados, 1, "el reenvío del día no duplica filas")
	assert.True(t, dec("6").Equal(guardados[0].FinalFisico))
}

// TestGuardar_ValidaEntrada filas sin área/producto o con fecha malformada se
// rechazan con ErrInvalidInput antes de tocar la persistencia.
func TestGuardar_ValidaEntrada(t *testing.T) {
	inventario := newMemInventario()
	uc := ipv.NewGuardarUseCase(inventario)

	_, err := uc.Execute(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "lote vacío")

	_, err = uc.Execute([]dto.RegistroIPVRequest{{Fecha: "2026-03-02", ProductoID: "p1"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin area_id")

	_, err = uc.Execute([]dto.RegistroIPVRequest{{Fecha: "02/03/2026", AreaID: "a1", ProductoID: "p1"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha con formato incorrecto")

	guardados, _ := inventario.FindByDate(fechaDe("2026-03-02"))
	assert.Empty(t, guardados, "nada se persiste si alguna fila es inválida")
}
