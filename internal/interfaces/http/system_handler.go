package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/finbot-api/internal/application/analytics"
	"github.com/jhoicas/finbot-api/internal/application/dto"
	"github.com/jhoicas/finbot-api/internal/domain/entity"
)

// Root saludo con la versión.
// GET /
func Root(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: "FinBot API działa! - Wersja " + entity.FormatVersion + " RACHUNKI (PL Fix)"})
}

// Health estado del servicio.
// GET /health
func Health(storage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{
			Status:  "ok",
			Service: appanalytics.ServiceName,
			Version: entity.FormatVersion,
			Storage: storage,
		})
	}
}
