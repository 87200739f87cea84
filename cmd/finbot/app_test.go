package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finbot-api/pkg/jwt"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"finbot"}, args...))
	return out.String(), err
}

func TestNIP_Validos(t *testing.T) {
	out, err := run(t, "nip", "526-104-08-28", "1234563218")
	require.NoError(t, err)
	assert.Contains(t, out, "526-104-08-28\tOK\t526-104-08-28")
	assert.Contains(t, out, "1234563218\tOK\t123-456-32-18")
}

func TestNIP_InvalidoDevuelveError(t *testing.T) {
	out, err := run(t, "nip", "1234567890")
	assert.Error(t, err)
	assert.Contains(t, out, "NIEPOPRAWNY")
}

func TestNIP_DigitoDeControl(t *testing.T) {
	out, err := run(t, "nip", "--check-digit", "526-104-08-2", "123456321")
	require.NoError(t, err)
	assert.Contains(t, out, "526-104-08-2\t8\t526-104-08-28")
	assert.Contains(t, out, "123456321\t8\t123-456-32-18")
}

func TestNIP_DigitoDeControl_SumaDiez(t *testing.T) {
	// 3*7 = 21, 21 mod 11 = 10
	out, err := run(t, "nip", "--check-digit", "000000003")
	require.NoError(t, err)
	assert.Contains(t, out, "000000003\tBRAK")
}

func TestNIP_DigitoDeControl_LongitudInvalida(t *testing.T) {
	_, err := run(t, "nip", "--check-digit", "12345")
	assert.Error(t, err)
}

func TestTotals_DesdeArchivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pozycje.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"pozycje":[
		{"nazwa":"Konsultacja","ilosc":2,"cena_netto":"100,00","stawka_vat":23}
	]}`), 0o600))

	out, err := run(t, "totals", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Konsultacja")
	assert.Contains(t, out, "246.00 zł")
	assert.Contains(t, out, "RAZEM")
}

func TestTotals_CuerpoDeGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rachunek.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"invoice_data":{"pozycje":[
		{"nazwa":"a","ilosc":1,"cena_netto":"0.10","stawka_vat":5},
		{"nazwa":"b","ilosc":1,"cena_netto":"0.10","stawka_vat":5}
	]}}`), 0o600))

	out, err := run(t, "totals", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines[len(lines)-1], "0.21 zł")
}

func TestTotals_SinArchivo(t *testing.T) {
	_, err := run(t, "totals", filepath.Join(t.TempDir(), "brak.json"))
	assert.Error(t, err)
}

func TestDueDate(t *testing.T) {
	out, err := run(t, "due-date", "20.01.2025")
	require.NoError(t, err)
	assert.Equal(t, "03.02.2025\n", out)

	_, err = run(t, "due-date", "wczoraj")
	assert.Error(t, err)
}

func TestToken_Parseable(t *testing.T) {
	out, err := run(t, "token", "--secret", "s3cret", "--subject", "formularz", "--scope", "invoice:write", "--scope", "read")
	require.NoError(t, err)

	subject, scope, err := jwt.Parse("s3cret", strings.TrimSpace(out), "finbot-api")
	require.NoError(t, err)
	assert.Equal(t, "formularz", subject)
	assert.Equal(t, "invoice:write read", scope)
}
