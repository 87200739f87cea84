package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoicas/finbot-api/internal/application/billing"
)

var _ billing.BackupStore = (*FSStore)(nil)

// FSStore guarda las copias en un directorio local.
type FSStore struct {
	dir string
}

// NewFSStore crea el directorio si no existe.
func NewFSStore(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("backup: crear directorio %s: %w", dir, err)
	}
	return &FSStore{dir: dir}, nil
}

// Store escribe el PDF con el nombre de FileName.
func (s *FSStore) Store(_ context.Context, number string, pdf []byte, at time.Time) (*billing.BackupResult, error) {
	id := newID()
	path := filepath.Join(s.dir, FileName(number, id, at))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return nil, fmt.Errorf("backup: escribir %s: %w", path, err)
	}
	return &billing.BackupResult{ID: id, Location: path}, nil
}

// Count cuenta los .pdf del directorio.
func (s *FSStore) Count(_ context.Context) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("backup: listar %s: %w", s.dir, err)
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".pdf") {
			n++
		}
	}
	return n, nil
}
