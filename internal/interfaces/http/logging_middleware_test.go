package http_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/finbot-api/internal/interfaces/http"
	"github.com/jhoicas/finbot-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequestLogger
// ──────────────────────────────────────────────────────────────────────────────

func buildLoggedApp(buf *bytes.Buffer) *fiber.App {
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.New(logger.Config{Env: "production", Output: buf})))
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, testIssuer),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) },
	)
	return app
}

func TestRequestLogger_IncluyeSubject(t *testing.T) {
	var buf bytes.Buffer
	app := buildLoggedApp(&buf)

	resp := doProtected(t, app, tokenWithScope(t, apphttp.ScopeRead))
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Contains(t, buf.String(), `"subject":"formularz-rachunki"`)
	assert.Contains(t, buf.String(), `"status":204`)
}

func TestRequestLogger_SinToken_SinSubject(t *testing.T) {
	var buf bytes.Buffer
	app := buildLoggedApp(&buf)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.NotContains(t, buf.String(), `"subject"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
