package billing

import (
	"github.com/jhoicas/finbot-api/internal/application/dto"
	"github.com/jhoicas/finbot-api/internal/domain/invoice"
	"github.com/jhoicas/finbot-api/pkg/money"
)

// PreviewTotals calcula los importes de las posiciones sin guardar nada.
// Sirve al formulario para mostrar sumas mientras el usuario escribe.
func PreviewTotals(req *dto.TotalsPreviewRequest) (*dto.TotalsPreviewResponse, error) {
	items := make([]invoice.LineItem, len(req.Lines))
	for i, l := range req.Lines {
		items[i] = invoice.LineItem{
			Name:           l.Name,
			Unit:           l.Unit,
			Quantity:       l.Quantity.Decimal,
			UnitPriceNet:   l.UnitPriceNet.Decimal,
			VATRatePercent: l.VATRate.Decimal,
		}
	}
	if err := invoice.ValidateLines(items); err != nil {
		return nil, err
	}

	lines, totals := invoice.ComputeTotals(items)
	out := &dto.TotalsPreviewResponse{
		Lines:      make([]dto.LineTotalsDTO, len(lines)),
		NetTotal:   money.NewAmount(totals.SumNet),
		VATTotal:   money.NewAmount(totals.SumVAT),
		GrossTotal: money.NewAmount(totals.SumGross),
	}
	for i, l := range lines {
		out.Lines[i] = dto.LineTotalsDTO{
			NetValue:   money.NewAmount(l.NetValue),
			VATAmount:  money.NewAmount(l.VATAmount),
			GrossValue: money.NewAmount(l.GrossValue),
		}
	}
	return out, nil
}
