package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finbot-api/internal/application/dto"
	"github.com/jhoicas/finbot-api/pkg/jwt"
)

// Locals keys para el sujeto y el alcance del token.
const (
	LocalSubject = "subject"
	LocalScope   = "scope"
)

// Alcances de los tokens de API.
const (
	ScopeInvoiceWrite = "invoice:write"
	ScopeRead         = "read"
)

// AuthMiddleware valida el Bearer Token JWT (firma, expiración y, si issuer no está
// vacío, el emisor) y guarda subject y scope en c.Locals.
func AuthMiddleware(jwtSecret, issuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		subject, scope, err := jwt.Parse(jwtSecret, tokenString, issuer)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalSubject, subject)
		c.Locals(LocalScope, scope)
		return c.Next()
	}
}

// RequireScope exige que el token incluya alguno de los alcances indicados.
// El claim scope es una lista separada por espacios. Debe ir después de AuthMiddleware.
func RequireScope(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		granted := strings.Fields(GetScope(c))
		for _, g := range granted {
			for _, a := range allowed {
				if g == a {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el token no tiene el alcance requerido"})
	}
}

// GetSubject devuelve el sujeto del token (después del middleware de auth).
func GetSubject(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSubject).(string)
	return s
}

// GetScope devuelve el alcance del token (después del middleware de auth).
func GetScope(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalScope).(string)
	return s
}
