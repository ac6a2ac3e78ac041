// Package http expone la API REST sobre Fiber: login público y el resto de
// las rutas detrás del middleware JWT.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vyoo/qr-dashboard-api/internal/application/analytics"
	"github.com/vyoo/qr-dashboard-api/internal/application/auth"
	"github.com/vyoo/qr-dashboard-api/internal/application/usecase"
)

// RouterDeps dependencias inyectadas al router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	Attractions *usecase.AttractionUseCase
	DailyData   *usecase.DailyDataUseCase
	Dashboard   *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra todas las rutas bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	attractionHandler := NewAttractionHandler(deps.Attractions)
	dailyDataHandler := NewDailyDataHandler(deps.DailyData)
	dashboardHandler := NewDashboardHandler(deps.Dashboard)

	api := app.Group("/api")

	// Pública
	api.Post("/login", authHandler.Login)

	// Protegidas
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))

	protected.Get("/attractions", attractionHandler.List)
	protected.Post("/attractions", attractionHandler.Create)
	protected.Delete("/attractions/:id", attractionHandler.Delete)

	protected.Post("/daily-data", dailyDataHandler.Upsert)
	protected.Put("/daily-data/:id", dailyDataHandler.Update)
	protected.Delete("/daily-data/:id", dailyDataHandler.Delete)

	protected.Get("/dashboard-data", dashboardHandler.ListRows)
	protected.Get("/summary", dashboardHandler.Summary)
	protected.Get("/summary/pdf", dashboardHandler.SummaryPDF)
}
