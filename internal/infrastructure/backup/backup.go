// Package backup guarda copias de los PDF generados: en disco (fs), en S3 o en ninguna parte (none).
package backup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/finbot-api/internal/application/billing"
	"github.com/jhoicas/finbot-api/pkg/pltext"
)

// newID identificador corto de copia: 8 primeros caracteres de un UUID.
func newID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// FileName nombre de la copia: 20250120_150405_<id>_<número saneado>.pdf
func FileName(number, id string, at time.Time) string {
	return fmt.Sprintf("%s_%s_%s.pdf", at.Format("20060102_150405"), id, pltext.SafeFilename(number))
}

var _ billing.BackupStore = Nop{}

// Nop descarta las copias (BACKUP_DRIVER=none).
type Nop struct{}

// Store no guarda nada y devuelve nil, nil.
func (Nop) Store(context.Context, string, []byte, time.Time) (*billing.BackupResult, error) {
	return nil, nil
}

// Count siempre 0.
func (Nop) Count(context.Context) (int, error) { return 0, nil }
