package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmorenoc/ipv-backend/internal/application/dto"
	"github.com/jmorenoc/ipv-backend/internal/application/usecase"
)

// AreaHandler maneja las peticiones HTTP de áreas de control.
type AreaHandler struct {
	uc *usecase.AreaUseCase
}

// NewAreaHandler construye el handler.
func NewAreaHandler(uc *usecase.AreaUseCase) *AreaHandler {
	return &AreaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear área
// @Tags         areas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAreaRequest  true  "Datos del área"
// @Success      201   {object}  dto.AreaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/areas [post]
func (h *AreaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAreaRequest
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
// @Summary      Obtener área por ID
// @Tags         areas
// @Produce      json
// @Param        id   path  string  true  "ID del área"
// @Success      200  {object}  dto.AreaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/areas/{id} [get]
func (h *AreaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "área no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar áreas
// @Tags         areas
// @Produce      json
// @Success      200  {array}  dto.AreaResponse
// @Router       /api/areas [get]
func (h *AreaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar área
// @Tags         areas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del área"
// @Param        body  body  dto.UpdateAreaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.AreaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/areas/{id} [put]
func (h *AreaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAreaRequest
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
// @Summary      Eliminar área
// @Tags         areas
// @Produce      json
// @Param        id   path  string  true  "ID del área"
// @Success      200  {object}  dto.MessageResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/areas/{id} [delete]
func (h *AreaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "área eliminada"})
}
