package entity

// ModeloIPV define qué producto se controla en el IPV de un área y en qué
// posición de la planilla. Único por (area_id, producto_id).
type ModeloIPV struct {
	ID         string
	AreaID     string
	ProductoID string
	Orden      int
}

// ModeloProducto es la vista del modelo que consume el armado de plantillas:
// producto y orden, ya agrupados por área.
type ModeloProducto struct {
	ProductoID string
	Orden      int
}
