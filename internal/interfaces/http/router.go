package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/finbot-api/internal/application/analytics"
	"github.com/jhoicas/finbot-api/internal/application/billing"
	"github.com/jhoicas/finbot-api/internal/infrastructure/metrics"
	"github.com/jhoicas/finbot-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	GenerateInvoice *billing.GenerateInvoiceUseCase
	Documents       *billing.DocumentUseCase
	Dashboard       *appanalytics.DashboardUseCase
	Metrics         *metrics.Metrics // opcional
	Log             *logger.Logger   // opcional
	JWTSecret       string           // vacío = /api sin autenticación
	JWTIssuer       string           // vacío = no se valida el emisor
	StorageDriver   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log))
	}
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
	}

	app.Get("/", Root)
	app.Get("/health", Health(deps.StorageDriver))

	authOn := deps.JWTSecret != ""
	var api fiber.Router = app.Group("/api")
	if authOn {
		api = app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	}
	// sin autenticación los alcances no aplican
	scoped := func(h fiber.Handler, allowed ...string) []fiber.Handler {
		if !authOn {
			return []fiber.Handler{h}
		}
		return []fiber.Handler{RequireScope(allowed...), h}
	}
	read := []string{ScopeRead, ScopeInvoiceWrite}

	// Rachunki
	invoiceHandler := NewInvoiceHandler(deps.GenerateInvoice, deps.Documents)
	invoices := api.Group("/invoice")
	invoices.Post("/generate", scoped(invoiceHandler.Generate, ScopeInvoiceWrite)...)
	invoices.Post("/totals", scoped(invoiceHandler.Totals, read...)...)
	// due-date antes del comodín: "due-date" no tiene formato y caería en Document
	invoices.Get("/due-date", scoped(invoiceHandler.DueDate, read...)...)
	invoices.Get("/*", scoped(invoiceHandler.Document, read...)...)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	api.Get("/dashboard", scoped(dashboardHandler.GetSummary, read...)...)

	// NIP
	api.Get("/nip/:nip", scoped(CheckNIP, read...)...)
}
