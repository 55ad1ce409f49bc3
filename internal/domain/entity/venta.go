package entity

import "time"

// Venta registra la venta de una receta en una fecha. RecetaNombre es una
// referencia de texto libre, no una llave foránea: las ventas importadas
// pueden referir recetas que ya no existen o que se crean automáticamente.
type Venta struct {
	ID           string
	RecetaNombre string
	Cantidad     int
	Fecha        time.Time
}
