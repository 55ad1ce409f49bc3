package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jmorenoc/ipv-backend/internal/application/dto"
	"github.com/jmorenoc/ipv-backend/internal/application/excel"
	"github.com/jmorenoc/ipv-backend/internal/application/usecase"
	"github.com/jmorenoc/ipv-backend/internal/domain"
)

// VentaHandler maneja las peticiones HTTP de ventas.
type VentaHandler struct {
	uc    *usecase.VentaUseCase
	excel *excel.VentasExcelUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *usecase.VentaUseCase, excelUC *excel.VentasExcelUseCase) *VentaHandler {
	return &VentaHandler{uc: uc, excel: excelUC}
}

// Create godoc
// @Summary      Registrar venta
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVentaRequest  true  "Venta"
// @Success      201   {object}  dto.VentaResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Produce      json
// @Success      200  {array}  dto.VentaResponse
// @Router       /api/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         ventas
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar venta
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.UpdateVentaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.VentaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [put]
func (h *VentaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar venta
// @Tags         ventas
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/ventas/{id} [delete]
func (h *VentaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "venta eliminada"})
}

// DeleteBatch godoc
// @Summary      Eliminar varias ventas
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteVentasRequest  true  "IDs de ventas a eliminar"
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/ventas/eliminar-multiples [post]
func (h *VentaHandler) DeleteBatch(c *fiber.Ctx) error {
	var in dto.DeleteVentasRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.DeleteBatch(in.IDs); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "ventas eliminadas"})
}

// Import godoc
// @Summary      Importar ventas desde el reporte Excel del punto de venta
// @Tags         ventas
// @Accept       multipart/form-data
// @Produce      json
// @Param        file   formData  file    true   "Archivo .xlsx con columnas Nombre y Cantidad"
// @Param        fecha  formData  string  false  "Fecha de las ventas (YYYY-MM-DD); por defecto hoy"
// @Success      200    {object}  dto.ImportVentasResult
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/ventas/importar [post]
func (h *VentaHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo requerido en el campo file"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()

	result, err := h.excel.Import(c.Context(), f, c.FormValue("fecha"))
	if err != nil {
		return errorJSON(c, err)
	}

	out := dto.ImportVentasResult{
		Message: fmt.Sprintf("%d ventas importadas", len(result.Ventas)),
	}
	for _, venta := range result.Ventas {
		out.Ventas = append(out.Ventas, dto.VentaResponse{
			ID:           venta.ID,
			RecetaNombre: venta.RecetaNombre,
			Cantidad:     venta.Cantidad,
			Fecha:        venta.Fecha.Format(domain.FechaLayout),
		})
	}
	for _, receta := range result.NuevasRecetas {
		out.NuevasRecetas = append(out.NuevasRecetas, dto.RecetaResponse{
			ID:     receta.ID,
			Nombre: receta.Nombre,
			Activa: receta.Activa,
		})
	}
	return c.JSON(out)
}
