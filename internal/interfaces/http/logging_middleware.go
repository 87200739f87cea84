package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finbot-api/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, estado y latencia.
// Con autenticación activa añade el subject del token.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		ev := log.Info()
		switch {
		case status >= 500:
			ev = log.Error()
		case status >= 400:
			ev = log.Warn()
		}
		if err != nil {
			ev = ev.Err(err)
		}
		if sub := GetSubject(c); sub != "" {
			ev = ev.Str("subject", sub)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("petición HTTP")
		return err
	}
}
