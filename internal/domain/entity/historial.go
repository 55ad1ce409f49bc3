package entity

import "time"

// HistorialCambio es una entrada del log de auditoría append-only. Lo escriben
// los casos de uso que mutan productos y recetas; nunca se actualiza ni borra.
type HistorialCambio struct {
	ID              string
	EntidadTipo     string // Producto, Receta
	EntidadID       string
	CampoModificado string // nombre de campo, o Creación / Eliminación
	ValorAnterior   string
	ValorNuevo      string
	FechaCambio     time.Time
}
