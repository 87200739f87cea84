package money_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finbot-api/pkg/money"
)

func TestParse_Tolerante(t *testing.T) {
	cases := map[string]string{
		"":       "0",
		"abc":    "0",
		"12abc":  "0",
		" 3 ":    "3",
		"12,5":   "12.5",
		"100.01": "100.01",
		"-2":     "-2",
	}
	for in, want := range cases {
		assert.True(t, decimal.RequireFromString(want).Equal(money.Parse(in)), "entrada %q", in)
	}
}

func TestRound2_MitadAlejandoseDeCero(t *testing.T) {
	assert.Equal(t, "1.01", money.Round2(decimal.RequireFromString("1.005")).StringFixed(2))
	assert.Equal(t, "-1.01", money.Round2(decimal.RequireFromString("-1.005")).StringFixed(2))
	assert.Equal(t, "2.00", money.Round2(decimal.RequireFromString("1.995")).StringFixed(2))
}

func TestFormatPLN(t *testing.T) {
	assert.Equal(t, "0.00 zł", money.FormatPLN(decimal.Zero))
	assert.Equal(t, "1234.50 zł", money.FormatPLN(decimal.RequireFromString("1234.5")))
}

func TestFormatPLNLocale_ComaDecimal(t *testing.T) {
	out := money.FormatPLNLocale(decimal.RequireFromString("246"))
	assert.Equal(t, "246,00 zł", out)
}

func TestFormatPLNLocale_SinEspaciosDuros(t *testing.T) {
	out := money.FormatPLNLocale(decimal.RequireFromString("1234567.891"))
	assert.True(t, strings.HasSuffix(out, ",89 zł"), "salida %q", out)
	assert.NotContains(t, out, "\u00a0")
	assert.NotContains(t, out, "\u202f")
	assert.True(t, strings.HasPrefix(out, "1"), "salida %q", out)
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var in struct {
		A money.Amount `json:"a"`
		B money.Amount `json:"b"`
		C money.Amount `json:"c"`
		D money.Amount `json:"d"`
		E money.Amount `json:"e"`
	}
	err := json.Unmarshal([]byte(`{"a": 2.5, "b": "3,25", "c": "xyz", "d": null}`), &in)
	require.NoError(t, err)

	assert.True(t, in.A.Present)
	assert.Equal(t, "2.5", in.A.String())
	assert.Equal(t, "3.25", in.B.String())
	assert.True(t, in.C.Present, "un texto inválido cuenta como informado")
	assert.True(t, in.C.IsZero())
	assert.False(t, in.D.Present, "null no cuenta como informado")
	assert.False(t, in.E.Present, "campo ausente")
}

func TestAmount_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(map[string]money.Amount{"x": money.NewAmount(decimal.RequireFromString("246.00"))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"x": 246}`, string(out))
}
