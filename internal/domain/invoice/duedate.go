package invoice

import (
	"strings"
	"time"
)

// PaymentTermDays plazo de pago por defecto.
const PaymentTermDays = 14

// DueDate devuelve la fecha de vencimiento: emisión + 14 días naturales.
func DueDate(issue time.Time) time.Time {
	return issue.AddDate(0, 0, PaymentTermDays)
}

// Formatos de fecha aceptados: ISO del <input type="date"> y polaco
// (DD.MM.RRRR, también sin ceros a la izquierda como lo produce toLocaleDateString).
var dateLayouts = []string{"2006-01-02", "2.1.2006"}

// ParseDate interpreta una fecha del formulario. ok=false si está vacía o no es válida.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate formato polaco usado en el JSON y en el PDF: "03.02.2025".
// Una fecha vacía se representa como "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006")
}
