package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/vyoo/qr-dashboard-api/internal/application/analytics"
	"github.com/vyoo/qr-dashboard-api/internal/application/dto"
	"github.com/vyoo/qr-dashboard-api/internal/domain"
)

// DashboardHandler consultas de solo lectura del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// ListRows godoc
// @Summary      Listar registros del dashboard
// @Description  Filtros conjuntivos opcionales por rango de fechas y atracción. attractionId=all equivale a sin filtro.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        startDate     query  string  false  "YYYY-MM-DD"
// @Param        endDate       query  string  false  "YYYY-MM-DD"
// @Param        attractionId  query  string  false  "ID de atracción o 'all'"
// @Success      200  {array}   dto.DashboardRowDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard-data [get]
func (h *DashboardHandler) ListRows(c *fiber.Ctx) error {
	var q dto.DashboardQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	out, err := h.uc.ListRows(c.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen agregado del período
// @Description  Totales del período filtrado y tasa de conversión calculada sobre las sumas agregadas.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        startDate     query  string  false  "YYYY-MM-DD"
// @Param        endDate       query  string  false  "YYYY-MM-DD"
// @Param        attractionId  query  string  false  "ID de atracción o 'all'"
// @Success      200  {object}  dto.SummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	var q dto.DashboardQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	out, err := h.uc.Summary(c.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SummaryPDF godoc
// @Summary      Exportar el resumen del período como PDF
// @Tags         dashboard
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        startDate     query  string  false  "YYYY-MM-DD"
// @Param        endDate       query  string  false  "YYYY-MM-DD"
// @Param        attractionId  query  string  false  "ID de atracción o 'all'"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/summary/pdf [get]
func (h *DashboardHandler) SummaryPDF(c *fiber.Ctx) error {
	var q dto.DashboardQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	pdfBytes, err := h.uc.SummaryPDF(c.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resumen-qr.pdf"`)
	return c.Send(pdfBytes)
}
