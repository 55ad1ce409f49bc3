package entity

import "github.com/shopspring/decimal"

// Receta es un plato vendible con su lista de materiales (ingredientes).
// Una receta sin ingredientes sigue siendo vendible: su venta no genera consumo.
type Receta struct {
	ID           string
	Nombre       string
	Activa       bool
	Ingredientes []Ingrediente
}

// Ingrediente asocia una receta con un producto consumido desde un área
// concreta. El mismo producto puede aparecer dos veces en una receta si se
// descuenta de áreas distintas.
type Ingrediente struct {
	ID         string
	RecetaID   string
	ProductoID string
	AreaID     string
	Cantidad   decimal.Decimal // cantidad consumida por unidad de receta vendida
}
