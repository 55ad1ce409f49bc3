package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventarioDiario es un registro del IPV para un producto en un área y una
// fecha. Existe a lo más un registro por tripleta (fecha, area_id, producto_id).
//
// Comentario admite dos variantes: texto plano, o un objeto JSON campo→nota
// escrito por el cliente al anotar celdas individuales. El agregador de
// reportes intenta primero el parseo JSON y cae a texto plano si falla.
type InventarioDiario struct {
	ID           string
	Fecha        time.Time
	AreaID       string
	ProductoID   string
	Inicio       decimal.Decimal // existencia de apertura (arrastre del día anterior)
	Entradas     decimal.Decimal
	Consumo      decimal.Decimal
	Merma        decimal.Decimal
	OtrasSalidas decimal.Decimal
	FinalFisico  decimal.Decimal // conteo físico de cierre
	FinalTeorico decimal.Decimal // derivado, nunca confiado del cliente
	Diferencia   decimal.Decimal // final_fisico - final_teorico
	Comentario   string

	// Nombres denormalizados para la capa de presentación.
	ProductoNombre string
	AreaNombre     string
}

// CalcularDiferencias recalcula el cierre teórico y la diferencia a partir de
// los seis campos de flujo. Se invoca antes de cada persistencia, descartando
// cualquier valor que traiga el cliente:
//
//	final_teorico = (inicio + entradas) - consumo - merma - otras_salidas
//	diferencia    = final_fisico - final_teorico
func (r *InventarioDiario) CalcularDiferencias() *InventarioDiario {
	r.FinalTeorico = r.Inicio.Add(r.Entradas).Sub(r.Consumo).Sub(r.Merma).Sub(r.OtrasSalidas)
	r.Diferencia = r.FinalFisico.Sub(r.FinalTeorico)
	return r
}
