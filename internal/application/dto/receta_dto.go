package dto

import "github.com/shopspring/decimal"

// IngredienteRequest datos de un ingrediente dentro de una receta.
type IngredienteRequest struct {
	ProductoID string          `json:"producto_id"`
	AreaID     string          `json:"area_id"`
	Cantidad   decimal.Decimal `json:"cantidad"`
}

// CreateRecetaRequest datos para crear una receta con su BOM.
type CreateRecetaRequest struct {
	Nombre       string               `json:"nombre"`
	Activa       *bool                `json:"activa"`
	Ingredientes []IngredienteRequest `json:"ingredientes"`
}

// UpdateRecetaRequest datos para actualizar una receta. Los ingredientes
// reemplazan por completo el BOM anterior.
type UpdateRecetaRequest struct {
	Nombre       string               `json:"nombre"`
	Activa       *bool                `json:"activa"`
	Ingredientes []IngredienteRequest `json:"ingredientes"`
}

// IngredienteResponse representación de un ingrediente en respuestas.
type IngredienteResponse struct {
	ID         string          `json:"id"`
	ProductoID string          `json:"producto_id"`
	AreaID     string          `json:"area_id"`
	Cantidad   decimal.Decimal `json:"cantidad"`
}

// RecetaResponse representación de una receta en respuestas.
type RecetaResponse struct {
	ID           string                `json:"id"`
	Nombre       string                `json:"nombre"`
	Activa       bool                  `json:"activa"`
	Ingredientes []IngredienteResponse `json:"ingredientes"`
}

// ImportRecetasResult resumen de una importación masiva de recetas.
type ImportRecetasResult struct {
	Importadas int `json:"importadas"`
	Omitidas   int `json:"omitidas"`
}
