package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"github.com/vyoo/qr-dashboard-api/internal/application/analytics"
	"github.com/vyoo/qr-dashboard-api/internal/application/auth"
	"github.com/vyoo/qr-dashboard-api/internal/application/usecase"
	infrapdf "github.com/vyoo/qr-dashboard-api/internal/infrastructure/pdf"
	"github.com/vyoo/qr-dashboard-api/internal/infrastructure/postgres"
	httpRouter "github.com/vyoo/qr-dashboard-api/internal/interfaces/http"
	"github.com/vyoo/qr-dashboard-api/pkg/config"
	"github.com/vyoo/qr-dashboard-api/pkg/logger"
)

func main() {
	// Las tasas de conversión viajan como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de base de datos")
	}
	if err := postgres.SeedAdmin(ctx, pool, cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("siembra del administrador")
	}

	userRepo := postgres.NewUserRepository(pool)
	attractionRepo := postgres.NewAttractionRepository(pool)
	dailyDataRepo := postgres.NewDailyDataRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	attractionUC := usecase.NewAttractionUseCase(attractionRepo, dailyDataRepo)
	dailyDataUC := usecase.NewDailyDataUseCase(txRunner, dailyDataRepo)

	summaryReport := infrapdf.NewMarotoSummaryReport()
	dashboardUC := analytics.NewDashboardUseCase(dashboardRepo, summaryReport)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "QR Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		Attractions: attractionUC,
		DailyData:   dailyDataUC,
		Dashboard:   dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
