// Package invoice contiene la lógica de dominio pura del rachunek: cálculo de
// importes netos/IVA/brutos, plazo de pago y normalización de datos del formulario.
// Los cálculos no devuelven error ni guardan estado; la validación de rangos
// está aparte en ValidateLines.
package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finbot-api/pkg/money"
)

// LineItem posición tal como llega del formulario. Los importes no numéricos ya
// se han convertido en cero (money.Parse / money.Amount).
type LineItem struct {
	Name           string
	Unit           string
	Quantity       decimal.Decimal
	UnitPriceNet   decimal.Decimal
	VATRatePercent decimal.Decimal
}

// LineItemTotals importes de una posición, cada uno redondeado a 2 decimales.
type LineItemTotals struct {
	NetValue   decimal.Decimal
	VATAmount  decimal.Decimal
	GrossValue decimal.Decimal
}

// InvoiceTotals sumas del rachunek, redondeadas a 2 decimales.
type InvoiceTotals struct {
	SumNet   decimal.Decimal
	SumVAT   decimal.Decimal
	SumGross decimal.Decimal
}

// ComputeTotals calcula los importes por posición y las sumas del rachunek.
//
// Por posición: net = qty*price, vat = net*rate/100, gross = net+vat.
// Las sumas se acumulan con los importes sin redondear y se redondean una sola
// vez, así que pueden diferir en un grosz de la suma de las filas mostradas.
func ComputeTotals(items []LineItem) ([]LineItemTotals, InvoiceTotals) {
	lines := make([]LineItemTotals, 0, len(items))
	var sumNet, sumVAT, sumGross decimal.Decimal

	for _, it := range items {
		net := it.Quantity.Mul(it.UnitPriceNet)
		vat := net.Mul(it.VATRatePercent).Div(money.Hundred())
		gross := net.Mul(decimal.NewFromInt(1).Add(it.VATRatePercent.Div(money.Hundred())))

		lines = append(lines, LineItemTotals{
			NetValue:   money.Round2(net),
			VATAmount:  money.Round2(vat),
			GrossValue: money.Round2(net.Add(vat)),
		})

		sumNet = sumNet.Add(net)
		sumVAT = sumVAT.Add(vat)
		sumGross = sumGross.Add(gross)
	}

	return lines, InvoiceTotals{
		SumNet:   money.Round2(sumNet),
		SumVAT:   money.Round2(sumVAT),
		SumGross: money.Round2(sumGross),
	}
}
