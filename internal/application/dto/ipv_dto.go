package dto

import "github.com/shopspring/decimal"

// RegistroIPVRequest una fila del IPV enviada por el cliente al guardar el
// día. FinalTeorico y Diferencia no se aceptan: se recalculan siempre.
type RegistroIPVRequest struct {
	ID           string          `json:"id"`
	Fecha        string          `json:"fecha"` // YYYY-MM-DD
	AreaID       string          `json:"area_id"`
	ProductoID   string          `json:"producto_id"`
	Inicio       decimal.Decimal `json:"inicio"`
	Entradas     decimal.Decimal `json:"entradas"`
	Consumo      decimal.Decimal `json:"consumo"`
	Merma        decimal.Decimal `json:"merma"`
	OtrasSalidas decimal.Decimal `json:"otras_salidas"`
	FinalFisico  decimal.Decimal `json:"final_fisico"`
	Comentario   string          `json:"comentario"`
}

// RegistroIPVResponse una fila del IPV con los derivados ya calculados.
type RegistroIPVResponse struct {
	ID             string          `json:"id"`
	Fecha          string          `json:"fecha"`
	AreaID         string          `json:"area_id"`
	ProductoID     string          `json:"producto_id"`
	Inicio         decimal.Decimal `json:"inicio"`
	Entradas       decimal.Decimal `json:"entradas"`
	Consumo        decimal.Decimal `json:"consumo"`
	Merma          decimal.Decimal `json:"merma"`
	OtrasSalidas   decimal.Decimal `json:"otras_salidas"`
	FinalFisico    decimal.Decimal `json:"final_fisico"`
	FinalTeorico   decimal.Decimal `json:"final_teorico"`
	Diferencia     decimal.Decimal `json:"diferencia"`
	ProductoNombre string          `json:"producto_nombre,omitempty"`
	AreaNombre     string          `json:"area_nombre,omitempty"`
	Comentario     string          `json:"comentario"`
}

// EstadoIPVResponse el estado del día agrupado por nombre de área. Toda área
// del catálogo aparece como llave aunque no tenga filas.
type EstadoIPVResponse map[string][]RegistroIPVResponse

// ModeloProductoRequest un producto del modelo de un área con su orden.
type ModeloProductoRequest struct {
	ID    string `json:"id"`
	Orden int    `json:"orden"`
}

// SaveModeloRequest reemplaza el modelo de IPV de un área.
type SaveModeloRequest struct {
	AreaID    string                  `json:"area_id"`
	Productos []ModeloProductoRequest `json:"productos"`
}

// ModeloProductoResponse entrada del modelo agrupado por área.
type ModeloProductoResponse struct {
	ProductoID string `json:"producto_id"`
	Orden      int    `json:"orden"`
}

// FechaRegistroResponse una fecha con registros de IPV.
type FechaRegistroResponse struct {
	Fecha string `json:"fecha"`
}

// FilaReporte una fila enriquecida del reporte de IPV.
type FilaReporte struct {
	Producto     string          `json:"producto"`
	UM           string          `json:"um"`
	Inicio       decimal.Decimal `json:"inicio"`
	Entradas     decimal.Decimal `json:"entradas"`
	Consumo      decimal.Decimal `json:"consumo"`
	Merma        decimal.Decimal `json:"merma"`
	OtrasSalidas decimal.Decimal `json:"otras_salidas"`
	FinalTeorico decimal.Decimal `json:"final_teorico"`
	FinalFisico  decimal.Decimal `json:"final_fisico"`
	Diferencia   decimal.Decimal `json:"diferencia"`
}

// ResumenArea clasificación de variaciones de un área.
type ResumenArea struct {
	Faltantes []string `json:"faltantes"`
	Sobrantes []string `json:"sobrantes"`
	Mermas    []string `json:"mermas"`
}

// ReporteIPV el reporte de cierre de una fecha: filas por área, resumen de
// faltantes/sobrantes/mermas y notas extraídas de los comentarios.
type ReporteIPV struct {
	Fecha   string                   `json:"fecha"`
	Areas   map[string][]FilaReporte `json:"areas"`
	Resumen map[string]*ResumenArea  `json:"resumen"`
	Notas   []string                 `json:"notas"`
}
