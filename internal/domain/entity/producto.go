package entity

// Producto representa un insumo controlado por el inventario (ej. TOMATE, HARINA).
// El nombre se normaliza a mayúsculas al crear/actualizar y es único en el catálogo.
type Producto struct {
	ID           string
	Nombre       string
	UnidadMedida string // ej. KG, G, L, UNIDADES
}
