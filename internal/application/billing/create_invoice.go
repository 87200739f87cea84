package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/finbot-api/internal/application/dto"
	"github.com/jhoicas/finbot-api/internal/domain/invoice"
	"github.com/jhoicas/finbot-api/internal/domain/repository"
	"github.com/jhoicas/finbot-api/pkg/logger"
	"github.com/jhoicas/finbot-api/pkg/money"
)

// GenerateInvoiceUseCase procesa el formulario: valida y completa los datos,
// recalcula importes, genera el PDF, guarda copia y persiste el rachunek.
type GenerateInvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	generator   InvoicePDFGenerator
	backup      BackupStore
	recorder    Recorder
	log         *logger.Logger
	now         func() time.Time
}

// NewGenerateInvoiceUseCase construye el caso de uso. recorder y log pueden ser nil.
func NewGenerateInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	generator InvoicePDFGenerator,
	backup BackupStore,
	recorder Recorder,
	log *logger.Logger,
) *GenerateInvoiceUseCase {
	if recorder == nil {
		recorder = NopRecorder()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &GenerateInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		generator:   generator,
		backup:      backup,
		recorder:    recorder,
		log:         log,
		now:         time.Now,
	}
}

// WithClock fija el reloj (tests).
func (uc *GenerateInvoiceUseCase) WithClock(now func() time.Time) *GenerateInvoiceUseCase {
	uc.now = now
	return uc
}

// Generate ejecuta el flujo completo.
//
// Retorna domain.ErrInvalidInput si alguna posición tiene cantidad o precio
// negativos o un tipo de IVA fuera de 0-100. Un fallo de la copia de seguridad
// no es error: se registra y la respuesta lleva backup_created=false.
func (uc *GenerateInvoiceUseCase) Generate(ctx context.Context, req *dto.GenerateInvoiceRequest) (*dto.GenerateInvoiceResponse, error) {
	now := uc.now()

	// ── 1. Mapear y validar rangos ────────────────────────────────────────────
	inv := InvoiceFromDTO(req.InvoiceData)
	if err := invoice.ValidateLines(invoice.ItemsOf(inv)); err != nil {
		return nil, err
	}

	// ── 2. Completar datos y recalcular importes ──────────────────────────────
	invoice.Normalize(inv, now)
	totals := invoice.ApplyTotals(inv)

	// ── 3. PDF ────────────────────────────────────────────────────────────────
	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	inv.PDF = pdfBytes

	// ── 4. Copia de seguridad ─────────────────────────────────────────────────
	var backupID *string
	res, err := uc.backup.Store(ctx, inv.Number, pdfBytes, now)
	switch {
	case err != nil:
		uc.recorder.BackupFailed()
		uc.log.Warn().Err(err).Str("invoice_number", inv.Number).Msg("no se pudo guardar la copia del PDF")
	case res != nil:
		inv.BackupID = res.ID
		backupID = &res.ID
		uc.log.Debug().Str("invoice_number", inv.Number).Str("location", res.Location).Msg("copia del PDF guardada")
	}

	// ── 5. Persistir ──────────────────────────────────────────────────────────
	inv.CreatedAt = now
	if err := uc.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, fmt.Errorf("guardar rachunek: %w", err)
	}
	uc.recorder.InvoiceGenerated(totals.SumGross)
	uc.log.Info().
		Str("invoice_number", inv.Number).
		Str("gross", totals.SumGross.StringFixed(2)).
		Int("items", len(inv.Lines)).
		Int("notes", len(inv.Notes)).
		Msg("rachunek procesado")

	return &dto.GenerateInvoiceResponse{
		Status:        "success",
		Message:       "Rachunek przetworzony - gotowy do pobrania",
		InvoiceNumber: inv.Number,
		Totals: dto.TotalsDTO{
			Net:   money.NewAmount(totals.SumNet),
			VAT:   money.NewAmount(totals.SumVAT),
			Gross: money.NewAmount(totals.SumGross),
		},
		ItemsCount:    len(inv.Lines),
		DownloadURL:   DocumentPath(inv.Number, "pdf"),
		XMLURL:        DocumentPath(inv.Number, "xml"),
		BackupCreated: backupID != nil,
		BackupID:      backupID,
		Timestamp:     now.Format(time.RFC3339),
		InvoiceData:   InvoiceToDTO(inv),
	}, nil
}
