package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// TestCalcularDiferencias la fórmula de balance del IPV:
//
//	final_teorico = (inicio + entradas) - consumo - merma - otras_salidas
//	diferencia    = final_fisico - final_teorico
func TestCalcularDiferencias(t *testing.T) {
	casos := []struct {
		nombre       string
		reg          entity.InventarioDiario
		finalTeorico string
		diferencia   string
	}{
		{
			nombre: "balance cuadrado",
			reg: entity.InventarioDiario{
				Inicio: dec("10"), Entradas: dec("5"), Consumo: dec("3"),
				Merma: dec("1"), OtrasSalidas: dec("1"), FinalFisico: dec("10"),
			},
			finalTeorico: "10",
			diferencia:   "0",
		},
		{
			nombre: "faltante",
			reg: entity.InventarioDiario{
				Inicio: dec("6"), Merma: dec("0.5"), OtrasSalidas: dec("0.5"), FinalFisico: dec("4"),
			},
			finalTeorico: "5",
			diferencia:   "-1",
		},
		{
			nombre: "sobrante",
			reg: entity.InventarioDiario{
				Inicio: dec("2"), FinalFisico: dec("3"),
			},
			finalTeorico: "2",
			diferencia:   "1",
		},
		{
			nombre:       "todo en cero",
			reg:          entity.InventarioDiario{},
			finalTeorico: "0",
			diferencia:   "0",
		},
		{
			nombre: "decimales exactos sin error de flotante",
			reg: entity.InventarioDiario{
				Inicio: dec("0.1"), Entradas: dec("0.2"), FinalFisico: dec("0.3"),
			},
			finalTeorico: "0.3",
			diferencia:   "0",
		},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			c.reg.CalcularDiferencias()
			assert.True(t, dec(c.finalTeorico).Equal(c.reg.FinalTeorico),
				"final_teorico esperado %s, fue %s", c.finalTeorico, c.reg.FinalTeorico)
			assert.True(t, dec(c.diferencia).Equal(c.reg.Diferencia),
				"diferencia esperada %s, fue %s", c.diferencia, c.reg.Diferencia)
		})
	}
}

// TestCalcularDiferencias_DescartaDerivadosDelCliente los valores que traiga
// el struct en los campos derivados se sobreescriben siempre.
func TestCalcularDiferencias_DescartaDerivadosDelCliente(t *testing.T) {
	reg := entity.InventarioDiario{
		Inicio:       dec("8"),
		FinalFisico:  dec("8"),
		FinalTeorico: dec("999"),
		Diferencia:   dec("999"),
	}
	reg.CalcularDiferencias()
	assert.True(t, dec("8").Equal(reg.FinalTeorico))
	assert.True(t, reg.Diferencia.IsZero())
}
