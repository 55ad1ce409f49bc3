package dto

// CreateAreaRequest datos para crear un área.
type CreateAreaRequest struct {
	Nombre string `json:"nombre"`
	Codigo string `json:"codigo"`
}

// UpdateAreaRequest datos para actualizar un área.
type UpdateAreaRequest struct {
	Nombre string `json:"nombre"`
	Codigo string `json:"codigo"`
}

// AreaResponse representación de un área en respuestas.
type AreaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Codigo string `json:"codigo,omitempty"`
}
