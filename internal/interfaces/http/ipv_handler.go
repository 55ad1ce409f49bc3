package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jmorenoc/ipv-backend/internal/application/dto"
	"github.com/jmorenoc/ipv-backend/internal/application/ipv"
	"github.com/jmorenoc/ipv-backend/internal/domain"
	"github.com/jmorenoc/ipv-backend/internal/domain/entity"
)

// IPVHandler maneja las peticiones HTTP del ciclo diario del IPV: estado,
// consumo teórico, guardado, modelos, fechas y reportes.
type IPVHandler struct {
	estado     *ipv.EstadoUseCase
	consumo    *ipv.ConsumoUseCase
	guardar    *ipv.GuardarUseCase
	modelo     *ipv.ModeloUseCase
	reporte    *ipv.ReporteUseCase
	reportePDF *ipv.ReportePDFUseCase
}

// NewIPVHandler construye el handler.
func NewIPVHandler(
	estado *ipv.EstadoUseCase,
	consumo *ipv.ConsumoUseCase,
	guardar *ipv.GuardarUseCase,
	modelo *ipv.ModeloUseCase,
	reporte *ipv.ReporteUseCase,
	reportePDF *ipv.ReportePDFUseCase,
) *IPVHandler {
	return &IPVHandler{
		estado:     estado,
		consumo:    consumo,
		guardar:    guardar,
		modelo:     modelo,
		reporte:    reporte,
		reportePDF: reportePDF,
	}
}

// fechaQuery lee y valida el query param fecha (obligatorio, YYYY-MM-DD).
func fechaQuery(c *fiber.Ctx) (string, error) {
	fecha := c.Query("fecha")
	if fecha == "" {
		return "", domain.ErrInvalidInput
	}
	return fecha, nil
}

// Estado godoc
// @Summary      Estado del IPV de una fecha
// @Description  Registros guardados agrupados por área, o plantilla vacía armada desde el modelo con la apertura del día anterior.
// @Tags         ipv
// @Produce      json
// @Param        fecha  query  string  true  "Fecha (YYYY-MM-DD)"
// @Success      200    {object}  dto.EstadoIPVResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/ipv/estado [get]
func (h *IPVHandler) Estado(c *fiber.Ctx) error {
	fechaStr, err := fechaQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha es requerida (YYYY-MM-DD)"})
	}
	fecha, err := domain.ParseFecha(fechaStr)
	if err != nil {
		return errorJSON(c, err)
	}
	porArea, err := h.estado.Execute(fecha)
	if err != nil {
		return errorJSON(c, err)
	}

	out := make(dto.EstadoIPVResponse, len(porArea))
	for area, registros := range porArea {
		filas := make([]dto.RegistroIPVResponse, 0, len(registros))
		for _, reg := range registros {
			filas = append(filas, toRegistroResponse(reg))
		}
		out[area] = filas
	}
	return c.JSON(out)
}

// Consumo godoc
// @Summary      Consumo teórico de una fecha
// @Description  Explota las ventas del día con los ingredientes de cada receta. Llaves "producto_id|area_id".
// @Tags         ipv
// @Produce      json
// @Param        fecha  query  string  true  "Fecha (YYYY-MM-DD)"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/ipv/consumo [get]
func (h *IPVHandler) Consumo(c *fiber.Ctx) error {
	fechaStr, err := fechaQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha es requerida (YYYY-MM-DD)"})
	}
	fecha, err := domain.ParseFecha(fechaStr)
	if err != nil {
		return errorJSON(c, err)
	}
	consumo, err := h.consumo.Execute(fecha)
	if err != nil {
		return errorJSON(c, err)
	}

	out := make(map[string]decimal.Decimal, len(consumo))
	for clave, cantidad := range consumo {
		out[clave.String()] = cantidad
	}
	return c.JSON(out)
}

// Guardar godoc
// @Summary      Guardar el día completo del IPV
// @Description  Recalcula final_teorico y diferencia de cada fila y upserta por (fecha, area_id, producto_id).
// @Tags         ipv
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.RegistroIPVRequest  true  "Filas del día"
// @Success      200   {array}  dto.RegistroIPVResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ipv/guardar [post]
func (h *IPVHandler) Guardar(c *fiber.Ctx) error {
	var filas []dto.RegistroIPVRequest
	if err := c.BodyParser(&filas); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	registros, err := h.guardar.Execute(filas)
	if err != nil {
		return errorJSON(c, err)
	}

	out := make([]dto.RegistroIPVResponse, 0, len(registros))
	for _, reg := range registros {
		out = append(out, toRegistroResponse(reg))
	}
	return c.JSON(out)
}

// GetModelos godoc
// @Summary      Modelo de IPV por área
// @Tags         ipv
// @Produce      json
// @Success      200  {object}  map[string][]dto.ModeloProductoResponse
// @Router       /api/ipv/modelos [get]
func (h *IPVHandler) GetModelos(c *fiber.Ctx) error {
	out, err := h.modelo.GetModelos()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// SaveModelo godoc
// @Summary      Reemplazar el modelo de IPV de un área
// @Tags         ipv
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveModeloRequest  true  "Área y productos con su orden"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ipv/modelos [post]
func (h *IPVHandler) SaveModelo(c *fiber.Ctx) error {
	var in dto.SaveModeloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.modelo.SaveModelo(in); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "modelo guardado"})
}

// Registros godoc
// @Summary      Fechas con registros de IPV
// @Tags         ipv
// @Produce      json
// @Success      200  {array}  dto.FechaRegistroResponse
// @Router       /api/ipv/registros [get]
func (h *IPVHandler) Registros(c *fiber.Ctx) error {
	out, err := h.modelo.GetFechas()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Reporte godoc
// @Summary      Reporte de cierre de una fecha
// @Description  Filas por área con nombres resueltos, resumen de faltantes/sobrantes/mermas y notas de comentarios.
// @Tags         ipv
// @Produce      json
// @Param        fecha  query  string  true  "Fecha (YYYY-MM-DD)"
// @Success      200    {object}  dto.ReporteIPV
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/ipv/reporte [get]
func (h *IPVHandler) Reporte(c *fiber.Ctx) error {
	fechaStr, err := fechaQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha es requerida (YYYY-MM-DD)"})
	}
	fecha, err := domain.ParseFecha(fechaStr)
	if err != nil {
		return errorJSON(c, err)
	}
	out, err := h.reporte.Execute(fecha)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ReportePDF godoc
// @Summary      Reporte de cierre en PDF
// @Tags         ipv
// @Produce      application/pdf
// @Param        fecha  query  string  true  "Fecha (YYYY-MM-DD)"
// @Success      200    {file}  binary
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/ipv/reporte/pdf [get]
func (h *IPVHandler) ReportePDF(c *fiber.Ctx) error {
	fechaStr, err := fechaQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha es requerida (YYYY-MM-DD)"})
	}
	fecha, err := domain.ParseFecha(fechaStr)
	if err != nil {
		return errorJSON(c, err)
	}
	data, err := h.reportePDF.Execute(fecha)
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-ipv-`+fechaStr+`.pdf"`)
	return c.Send(data)
}

func toRegistroResponse(reg *entity.InventarioDiario) dto.RegistroIPVResponse {
	return dto.RegistroIPVResponse{
		ID:             reg.ID,
		Fecha:          reg.Fecha.Format(domain.FechaLayout),
		AreaID:         reg.AreaID,
		ProductoID:     reg.ProductoID,
		Inicio:         reg.Inicio,
		Entradas:       reg.Entradas,
		Consumo:        reg.Consumo,
		Merma:          reg.Merma,
		OtrasSalidas:   reg.OtrasSalidas,
		FinalFisico:    reg.FinalFisico,
		FinalTeorico:   reg.FinalTeorico,
		Diferencia:     reg.Diferencia,
		ProductoNombre: reg.ProductoNombre,
		AreaNombre:     reg.AreaNombre,
		Comentario:     reg.Comentario,
	}
}
