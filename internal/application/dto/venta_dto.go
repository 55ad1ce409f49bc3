package dto

// CreateVentaRequest datos para registrar una venta.
type CreateVentaRequest struct {
	RecetaNombre string `json:"receta_nombre"`
	Cantidad     int    `json:"cantidad"`
	Fecha        string `json:"fecha"` // YYYY-MM-DD
}

// UpdateVentaRequest datos para actualizar una venta.
type UpdateVentaRequest struct {
	RecetaNombre string `json:"receta_nombre"`
	Cantidad     int    `json:"cantidad"`
	Fecha        string `json:"fecha"`
}

// VentaResponse representación de una venta en respuestas.
type VentaResponse struct {
	ID           string `json:"id"`
	RecetaNombre string `json:"receta_nombre"`
	Cantidad     int    `json:"cantidad"`
	Fecha        string `json:"fecha"`
}

// DeleteVentasRequest IDs de ventas a eliminar en lote.
type DeleteVentasRequest struct {
	IDs []string `json:"ids"`
}

// ImportVentasResult resumen de una importación de ventas desde Excel.
type ImportVentasResult struct {
	Message       string           `json:"message"`
	Ventas        []VentaResponse  `json:"ventas"`
	NuevasRecetas []RecetaResponse `json:"nuevas_recetas"`
}
