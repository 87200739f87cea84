// @title        FinBot API
// @version      2.3.1
// @description  Rachunki do umowy: validación de NIP, cálculo de importes, PDF y dashboard.
// @BasePath     /
// @securityDefinitions.apikey Bearer
// @in           header
// @name         Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/swaggo/swag"

	"github.com/jhoicas/finbot-api/docs"
	appanalytics "github.com/jhoicas/finbot-api/internal/application/analytics"
	"github.com/jhoicas/finbot-api/internal/application/billing"
	"github.com/jhoicas/finbot-api/internal/domain/repository"
	"github.com/jhoicas/finbot-api/internal/infrastructure/backup"
	"github.com/jhoicas/finbot-api/internal/infrastructure/memory"
	"github.com/jhoicas/finbot-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/finbot-api/internal/infrastructure/pdf"
	"github.com/jhoicas/finbot-api/internal/infrastructure/postgres"
	"github.com/jhoicas/finbot-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/finbot-api/internal/interfaces/http"
	"github.com/jhoicas/finbot-api/pkg/config"
	"github.com/jhoicas/finbot-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Str("backup", cfg.Backup.Driver).
		Bool("auth", cfg.Auth.Enabled()).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// ── Almacenamiento ────────────────────────────────────────────────────────
	var invoiceRepo repository.InvoiceRepository
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("aplicar esquema")
		}
		invoiceRepo = postgres.NewInvoiceRepository(pool)
	default:
		invoiceRepo = memory.NewInvoiceRepository()
	}

	// ── Copias de seguridad ───────────────────────────────────────────────────
	var backupStore billing.BackupStore
	switch cfg.Backup.Driver {
	case config.BackupS3:
		s3Store, err := backup.NewS3Store(cfg.Backup.Region, cfg.Backup.Bucket, cfg.Backup.S3Prefix)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente S3")
		}
		backupStore = s3Store
	case config.BackupNone:
		backupStore = backup.Nop{}
	default:
		fsStore, err := backup.NewFSStore(cfg.Backup.Dir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Backup.Dir).Msg("directorio de copias")
		}
		backupStore = fsStore
	}

	// ── Documentos ────────────────────────────────────────────────────────────
	pdfGenerator, err := infrapdf.NewMarotoPDFGenerator(infrapdf.Fonts{
		Regular: cfg.PDF.FontRegular,
		Bold:    cfg.PDF.FontBold,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("fuentes del PDF")
	}
	xmlBuilder := xmlexport.NewBuilder()

	appMetrics := metrics.New(metrics.Config{ServiceName: cfg.App.Name, Environment: cfg.App.Env})

	generateUC := billing.NewGenerateInvoiceUseCase(
		invoiceRepo, pdfGenerator, backupStore, appMetrics, log.Component("billing"),
	)
	documentUC := billing.NewDocumentUseCase(invoiceRepo, xmlBuilder, appMetrics)
	dashboardUC := appanalytics.NewDashboardUseCase(invoiceRepo, backupStore, cfg.Dashboard.SavingsRate)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "FinBot API",
		}))
	}
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return c.SendStatus(fiber.StatusNotFound)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		GenerateInvoice: generateUC,
		Documents:       documentUC,
		Dashboard:       dashboardUC,
		Metrics:         appMetrics,
		Log:             log.Component("http"),
		JWTSecret:       cfg.Auth.JWTSecret,
		JWTIssuer:       cfg.Auth.Issuer,
		StorageDriver:   cfg.Storage.Driver,
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
