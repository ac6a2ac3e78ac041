package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vyoo/qr-dashboard-api/internal/application/dto"
	"github.com/vyoo/qr-dashboard-api/internal/application/usecase"
	"github.com/vyoo/qr-dashboard-api/internal/domain"
)

// DailyDataHandler upsert, actualización y borrado de registros diarios.
type DailyDataHandler struct {
	uc *usecase.DailyDataUseCase
}

// NewDailyDataHandler construye el handler.
func NewDailyDataHandler(uc *usecase.DailyDataUseCase) *DailyDataHandler {
	return &DailyDataHandler{uc: uc}
}

// Upsert godoc
// @Summary      Insertar o actualizar un registro diario
// @Description  Clave natural (attractionId, date). Si la fila existe se sobreescriben los conteos; si no, se crea una nueva.
// @Tags         daily-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpsertDailyDataRequest  true  "attractionId, date, qrcodesDelivered, salesMade"
// @Success      200   {object}  dto.MessageResponse  "registro actualizado"
// @Success      201   {object}  dto.MessageResponse  "registro creado"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/daily-data [post]
func (h *DailyDataHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertDailyDataRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.AttractionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "attractionId es requerido"})
	}
	out, err := h.uc.Upsert(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrAttractionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "atracción no encontrada"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	if out.Created {
		return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "registro creado", ID: out.ID})
	}
	return c.JSON(dto.MessageResponse{Message: "registro actualizado", ID: out.ID})
}

// Update godoc
// @Summary      Actualizar un registro diario por ID
// @Tags         daily-data
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                      true  "ID del registro"
// @Param        body  body  dto.UpdateDailyDataRequest  true  "attractionId, date, qrcodesDelivered, salesMade"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "la clave natural choca con otra fila"
// @Router       /api/daily-data/{id} [put]
func (h *DailyDataHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateDailyDataRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.AttractionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "attractionId es requerido"})
	}
	if err := h.uc.UpdateByID(c.Context(), id, in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrRecordNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
		case errors.Is(err, domain.ErrAttractionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "atracción no encontrada"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un registro para esa atracción y fecha"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.MessageResponse{Message: "registro actualizado"})
}

// Delete godoc
// @Summary      Eliminar un registro diario
// @Tags         daily-data
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del registro"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/daily-data/{id} [delete]
func (h *DailyDataHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.DeleteByID(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "registro eliminado"})
}
