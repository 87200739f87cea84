package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/finbot-api/internal/domain/entity"
)

// InvoicePDFGenerator puerto de salida para generar la representación PDF del rachunek.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice) ([]byte, error)
}

// InvoiceXMLBuilder puerto de salida para la exportación XML.
// digest es el SHA-256 (base64) de la forma canónica del documento.
type InvoiceXMLBuilder interface {
	BuildInvoiceXML(inv *entity.Invoice) (doc []byte, digest string, err error)
}

// BackupResult identifica una copia guardada.
type BackupResult struct {
	ID       string // identificador corto de la copia
	Location string // ruta en disco o clave S3
}

// BackupStore guarda copias de los PDF generados (disco local o S3).
type BackupStore interface {
	Store(ctx context.Context, number string, pdf []byte, at time.Time) (*BackupResult, error)
	Count(ctx context.Context) (int, error)
}

// Recorder registra métricas de negocio. Las implementaciones no deben bloquear.
type Recorder interface {
	InvoiceGenerated(gross decimal.Decimal)
	BackupFailed()
	DocumentDownloaded(format string)
}

type nopRecorder struct{}

func (nopRecorder) InvoiceGenerated(decimal.Decimal) {}
func (nopRecorder) BackupFailed()                    {}
func (nopRecorder) DocumentDownloaded(string)        {}

// NopRecorder descarta las métricas (tests, CLI).
func NopRecorder() Recorder { return nopRecorder{} }
