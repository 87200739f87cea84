package billing

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jhoicas/finbot-api/internal/domain"
	"github.com/jhoicas/finbot-api/internal/domain/entity"
	"github.com/jhoicas/finbot-api/internal/domain/repository"
	"github.com/jhoicas/finbot-api/pkg/pltext"
)

// Document documento listo para descargar.
type Document struct {
	Content     []byte
	ContentType string
	Filename    string
	Digest      string // solo XML
}

// DocumentUseCase sirve el PDF y el XML de rachunki ya procesados.
type DocumentUseCase struct {
	invoiceRepo repository.InvoiceRepository
	xmlBuilder  InvoiceXMLBuilder
	recorder    Recorder
}

// NewDocumentUseCase construye el caso de uso. recorder puede ser nil.
func NewDocumentUseCase(invoiceRepo repository.InvoiceRepository, xmlBuilder InvoiceXMLBuilder, recorder Recorder) *DocumentUseCase {
	if recorder == nil {
		recorder = NopRecorder()
	}
	return &DocumentUseCase{invoiceRepo: invoiceRepo, xmlBuilder: xmlBuilder, recorder: recorder}
}

// PDF devuelve el PDF generado al procesar el rachunek.
//
// Retorna domain.ErrNotFound si el número no existe.
func (uc *DocumentUseCase) PDF(ctx context.Context, rawNumber string) (*Document, error) {
	inv, err := uc.find(ctx, rawNumber)
	if err != nil {
		return nil, err
	}
	if len(inv.PDF) == 0 {
		return nil, fmt.Errorf("%w: el rachunek %s no tiene PDF", domain.ErrNotFound, inv.Number)
	}
	uc.recorder.DocumentDownloaded("pdf")
	return &Document{
		Content:     inv.PDF,
		ContentType: "application/pdf",
		Filename:    "rachunek_" + pltext.SafeFilename(inv.Number) + ".pdf",
	}, nil
}

// XML exporta el rachunek a XML con el digest de su forma canónica.
func (uc *DocumentUseCase) XML(ctx context.Context, rawNumber string) (*Document, error) {
	inv, err := uc.find(ctx, rawNumber)
	if err != nil {
		return nil, err
	}
	doc, digest, err := uc.xmlBuilder.BuildInvoiceXML(inv)
	if err != nil {
		return nil, fmt.Errorf("exportar XML: %w", err)
	}
	uc.recorder.DocumentDownloaded("xml")
	return &Document{
		Content:     doc,
		ContentType: "application/xml",
		Filename:    "rachunek_" + pltext.SafeFilename(inv.Number) + ".xml",
		Digest:      digest,
	}, nil
}

// find busca primero por el número decodificado (%2F -> /) y después tal cual llegó.
func (uc *DocumentUseCase) find(ctx context.Context, rawNumber string) (*entity.Invoice, error) {
	candidates := []string{rawNumber}
	if decoded, err := url.PathUnescape(rawNumber); err == nil && decoded != rawNumber {
		candidates = []string{decoded, rawNumber}
	}
	for _, number := range candidates {
		inv, err := uc.invoiceRepo.GetByNumber(ctx, number)
		if err != nil {
			return nil, fmt.Errorf("obtener rachunek: %w", err)
		}
		if inv != nil {
			return inv, nil
		}
	}
	return nil, fmt.Errorf("%w: rachunek %s nie znaleziony, najpierw wygeneruj rachunek", domain.ErrNotFound, candidates[0])
}
