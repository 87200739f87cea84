// Package money agrupa utilidades de importes en PLN: conversión tolerante de
// entradas del formulario, redondeo a céntimos y formato para pantalla y PDF.
package money

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency sufijo de moneda usado en toda la representación.
const Currency = "zł"

var hundred = decimal.NewFromInt(100)

// Hundred devuelve 100 como decimal (conversión de porcentajes).
func Hundred() decimal.Decimal { return hundred }

// Parse convierte texto del formulario a decimal. Acepta coma o punto decimal y
// espacios alrededor. Cualquier valor no numérico se convierte en cero.
func Parse(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Round2 redondea a 2 decimales, mitad alejándose de cero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatPLN formatea como en el resumen original: "1234.56 zł".
func FormatPLN(d decimal.Decimal) string {
	return d.StringFixed(2) + " " + Currency
}

var plPrinter = message.NewPrinter(language.Polish)

// el separador de miles polaco es un espacio duro; las fuentes base del PDF no lo tienen.
var hardSpaces = strings.NewReplacer("\u00a0", " ", "\u202f", " ")

// FormatPLNLocale formatea con separadores polacos (coma decimal, espacio de miles):
// "12 345,60 zł". Lo usan las celdas de importes del PDF.
func FormatPLNLocale(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return hardSpaces.Replace(plPrinter.Sprintf("%.2f", f)) + " " + Currency
}

// Amount es un importe recibido por JSON. Acepta número, texto o null; cualquier
// valor no interpretable se convierte en cero. Present indica si el campo venía
// informado (no ausente ni null).
type Amount struct {
	decimal.Decimal
	Present bool
}

// NewAmount construye un Amount informado.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d, Present: true}
}

// UnmarshalJSON nunca devuelve error por contenido numérico inválido.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Amount{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = Amount{Decimal: decimal.Zero, Present: true}
			return nil
		}
		*a = Amount{Decimal: Parse(s), Present: true}
		return nil
	}
	*a = Amount{Decimal: Parse(string(data)), Present: true}
	return nil
}

// MarshalJSON escribe el importe como número JSON.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}
