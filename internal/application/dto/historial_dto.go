package dto

// HistorialResponse una entrada del log de cambios.
type HistorialResponse struct {
	ID              string `json:"id"`
	EntidadTipo     string `json:"entidad_tipo"`
	EntidadID       string `json:"entidad_id"`
	CampoModificado string `json:"campo_modificado"`
	ValorAnterior   string `json:"valor_anterior"`
	ValorNuevo      string `json:"valor_nuevo"`
	FechaCambio     string `json:"fecha_cambio"`
}
