package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vyoo/qr-dashboard-api/internal/application/dto"
	"github.com/vyoo/qr-dashboard-api/internal/application/usecase"
	"github.com/vyoo/qr-dashboard-api/internal/domain"
)

// AttractionHandler CRUD de la dimensión Attraction.
type AttractionHandler struct {
	uc *usecase.AttractionUseCase
}

// NewAttractionHandler construye el handler.
func NewAttractionHandler(uc *usecase.AttractionUseCase) *AttractionHandler {
	return &AttractionHandler{uc: uc}
}

// List godoc
// @Summary      Listar atracciones
// @Tags         attractions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.AttractionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/attractions [get]
func (h *AttractionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear atracción
// @Tags         attractions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateAttractionRequest  true  "name"
// @Success      201   {object}  dto.CreateAttractionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/attractions [post]
func (h *AttractionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAttractionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar atracción
// @Description  Rechaza la eliminación si la atracción tiene registros diarios asociados.
// @Tags         attractions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la atracción"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attractions/{id} [delete]
func (h *AttractionHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
		case errors.Is(err, domain.ErrAttractionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "atracción no encontrada"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.MessageResponse{Message: "atracción eliminada"})
}
