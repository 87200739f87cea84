package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/jhoicas/finbot-api/docs"
)

func TestSwaggerRegistrado(t *testing.T) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Info struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "FinBot API", parsed.Info.Title)
	assert.Equal(t, "2.3.1", parsed.Info.Version)
	for _, p := range []string{"/api/invoice/generate", "/api/invoice/totals", "/api/invoice/due-date", "/api/dashboard", "/api/nip/{nip}"} {
		assert.Contains(t, parsed.Paths, p)
	}
}
