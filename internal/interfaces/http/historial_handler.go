package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmorenoc/ipv-backend/internal/application/usecase"
)

// HistorialHandler expone el log de auditoría de cambios.
type HistorialHandler struct {
	uc *usecase.HistorialUseCase
}

// NewHistorialHandler construye el handler.
func NewHistorialHandler(uc *usecase.HistorialUseCase) *HistorialHandler {
	return &HistorialHandler{uc: uc}
}

// ListByEntityType godoc
// @Summary      Historial de cambios por tipo de entidad
// @Tags         historial
// @Produce      json
// @Param        tipo  path  string  true  "Tipo de entidad: Producto o Receta"
// @Success      200   {array}  dto.HistorialResponse
// @Router       /api/historial/{tipo} [get]
func (h *HistorialHandler) ListByEntityType(c *fiber.Ctx) error {
	out, err := h.uc.ListByEntityType(c.Params("tipo"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
