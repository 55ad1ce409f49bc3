package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmorenoc/ipv-backend/internal/application/dto"
	"github.com/jmorenoc/ipv-backend/internal/application/excel"
	"github.com/jmorenoc/ipv-backend/internal/application/usecase"
)

// RecetaHandler maneja las peticiones HTTP de recetas y sus ingredientes.
type RecetaHandler struct {
	uc    *usecase.RecetaUseCase
	excel *excel.RecetasExcelUseCase
}

// NewRecetaHandler construye el handler.
func NewRecetaHandler(uc *usecase.RecetaUseCase, excelUC *excel.RecetasExcelUseCase) *RecetaHandler {
	return &RecetaHandler{uc: uc, excel: excelUC}
}

// Create godoc
// @Summary      Crear receta con ingredientes
// @Tags         recetas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRecetaRequest  true  "Receta con su lista de ingredientes"
// @Success      201   {object}  dto.RecetaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/recetas [post]
func (h *RecetaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRecetaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener receta por ID
// @Tags         recetas
// @Produce      json
// @Param        id   path  string  true  "ID de la receta"
// @Success      200  {object}  dto.RecetaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recetas/{id} [get]
func (h *RecetaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "receta no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar recetas
// @Tags         recetas
// @Produce      json
// @Param        sort    query  string  false  "Orden: nombre, modificado, recientes"  default(nombre)
// @Param        filter  query  string  false  "Filtro: sin_ingredientes"
// @Success      200     {array}  dto.RecetaResponse
// @Router       /api/recetas [get]
func (h *RecetaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("sort", "nombre"), c.Query("filter"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar receta (reemplaza sus ingredientes)
// @Tags         recetas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la receta"
// @Param        body  body  dto.UpdateRecetaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.RecetaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recetas/{id} [put]
func (h *RecetaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRecetaRequest
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
// @Summary      Eliminar receta
// @Tags         recetas
// @Produce      json
// @Param        id   path  string  true  "ID de la receta"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/recetas/{id} [delete]
func (h *RecetaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "receta eliminada"})
}

// Import godoc
// @Summary      Importar recetas en lote (JSON)
// @Tags         recetas
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.CreateRecetaRequest  true  "Recetas a importar; las de nombre existente se omiten"
// @Success      200   {object}  dto.ImportRecetasResult
// @Router       /api/recetas/importar [post]
func (h *RecetaHandler) Import(c *fiber.Ctx) error {
	var in []dto.CreateRecetaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Import(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar recetas con ingredientes a Excel
// @Tags         recetas
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/recetas/exportar [get]
func (h *RecetaHandler) Export(c *fiber.Ctx) error {
	data, err := h.excel.Export()
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recetas.xlsx"`)
	return c.Send(data)
}
