package billing

import (
	"net/url"
	"strings"

	"github.com/jhoicas/finbot-api/internal/application/dto"
	"github.com/jhoicas/finbot-api/internal/domain/entity"
	"github.com/jhoicas/finbot-api/internal/domain/invoice"
	"github.com/jhoicas/finbot-api/pkg/money"
)

// InvoiceFromDTO convierte los datos del formulario en entidad. Las fechas no
// interpretables quedan vacías y Normalize las completa. Los importes calculados
// que envíe el cliente se descartan.
func InvoiceFromDTO(in dto.InvoiceDataDTO) *entity.Invoice {
	inv := &entity.Invoice{
		Number:        strings.TrimSpace(in.Number),
		DocumentType:  in.DocumentType,
		PaymentMethod: in.PaymentMethod,
		Seller: entity.Party{
			Name:        in.Seller.Name,
			NIP:         in.Seller.NIP,
			Address:     in.Seller.Address,
			BankAccount: in.Seller.BankAccount,
		},
		Buyer: entity.Party{
			Name:    in.Buyer.Name,
			NIP:     in.Buyer.NIP,
			Address: in.Buyer.Address,
		},
		Notes: append([]string(nil), in.Metadata.Notes...),
	}
	inv.IssueDate, _ = invoice.ParseDate(in.IssueDate)
	inv.SaleDate, _ = invoice.ParseDate(in.SaleDate)
	inv.DueDate, _ = invoice.ParseDate(in.DueDate)

	inv.Lines = make([]entity.InvoiceLine, len(in.Lines))
	for i, l := range in.Lines {
		inv.Lines[i] = entity.InvoiceLine{
			Name:         l.Name,
			Unit:         strings.TrimSpace(l.Unit),
			Quantity:     l.Quantity.Decimal,
			UnitPriceNet: l.UnitPriceNet.Decimal,
			VATRate:      l.VATRate.Decimal,
			VATRateSet:   l.VATRate.Present,
		}
	}
	return inv
}

// InvoiceToDTO devuelve el rachunek procesado con las claves del formulario.
func InvoiceToDTO(inv *entity.Invoice) dto.InvoiceDataDTO {
	out := dto.InvoiceDataDTO{
		Number:        inv.Number,
		DocumentType:  inv.DocumentType,
		IssueDate:     invoice.FormatDate(inv.IssueDate),
		SaleDate:      invoice.FormatDate(inv.SaleDate),
		DueDate:       invoice.FormatDate(inv.DueDate),
		PaymentMethod: inv.PaymentMethod,
		Seller: dto.PartyDTO{
			Name:        inv.Seller.Name,
			NIP:         inv.Seller.NIP,
			Address:     inv.Seller.Address,
			BankAccount: inv.Seller.BankAccount,
		},
		Buyer: dto.PartyDTO{
			Name:    inv.Buyer.Name,
			NIP:     inv.Buyer.NIP,
			Address: inv.Buyer.Address,
		},
		Lines:      make([]dto.LineDTO, len(inv.Lines)),
		NetTotal:   money.NewAmount(inv.NetTotal),
		VATTotal:   money.NewAmount(inv.VATTotal),
		GrossTotal: money.NewAmount(inv.GrossTotal),
		Metadata: dto.MetadataDTO{
			FormatVersion: inv.FormatVersion,
			Notes:         append([]string{}, inv.Notes...),
		},
	}
	if !inv.ProcessedOn.IsZero() {
		out.Metadata.ProcessedOn = inv.ProcessedOn.Format("2006-01-02")
	}
	for i, l := range inv.Lines {
		out.Lines[i] = dto.LineDTO{
			Name:         l.Name,
			Quantity:     money.NewAmount(l.Quantity),
			Unit:         l.Unit,
			UnitPriceNet: money.NewAmount(l.UnitPriceNet),
			VATRate:      money.NewAmount(l.VATRate),
			NetValue:     money.NewAmount(l.NetValue),
			VATAmount:    money.NewAmount(l.VATAmount),
			GrossValue:   money.NewAmount(l.GrossValue),
		}
	}
	return out
}

// DocumentPath ruta de descarga de un documento: /api/invoice/RACH/2025/01/pdf.
// Cada segmento del número se escapa; las barras se conservan.
func DocumentPath(number, format string) string {
	segments := strings.Split(number, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return "/api/invoice/" + strings.Join(segments, "/") + "/" + format
}
