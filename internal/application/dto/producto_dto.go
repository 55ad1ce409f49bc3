package dto

// CreateProductoRequest datos para crear un producto.
type CreateProductoRequest struct {
	Nombre       string `json:"nombre"`
	UnidadMedida string `json:"unidad_medida"`
}

// UpdateProductoRequest datos para actualizar un producto.
type UpdateProductoRequest struct {
	Nombre       string `json:"nombre"`
	UnidadMedida string `json:"unidad_medida"`
}

// ProductoResponse representación de un producto en respuestas.
type ProductoResponse struct {
	ID           string `json:"id"`
	Nombre       string `json:"nombre"`
	UnidadMedida string `json:"unidad_medida"`
}
