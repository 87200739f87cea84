package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// EnsureSchema aplica en orden los scripts embebidos. Son idempotentes
// (CREATE ... IF NOT EXISTS), así que se ejecutan en cada arranque.
func EnsureSchema(ctx context.Context, q Querier) error {
	files, err := fs.Glob(embeddedMigrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("listar migraciones: %w", err)
	}
	sort.Strings(files)
	for _, name := range files {
		sql, err := embeddedMigrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("leer %s: %w", name, err)
		}
		if _, err := q.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("aplicar %s: %w", name, err)
		}
	}
	return nil
}
