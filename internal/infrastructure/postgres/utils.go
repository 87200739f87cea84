package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "23505")
}

// dateOrToday evita insertar la fecha cero en columnas DATE NOT NULL.
func dateOrToday(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
