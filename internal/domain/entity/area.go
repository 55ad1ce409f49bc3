package entity

// Area representa una ubicación física u organizativa del restaurante
// (ej. COCINA, BAR). El nombre se normaliza a mayúsculas y es único.
type Area struct {
	ID     string
	Nombre string
	Codigo string // código corto opcional
}
