package invoice

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/finbot-api/internal/domain"
)

var maxVATRate = decimal.NewFromInt(100)

// ValidateLines comprueba los rangos de cada posición: cantidad y precio no
// negativos, tipo de IVA entre 0 y 100. Devuelve todos los fallos juntos,
// envueltos en domain.ErrInvalidInput.
func ValidateLines(items []LineItem) error {
	var errs []error
	for i, it := range items {
		if it.Quantity.IsNegative() {
			errs = append(errs, fmt.Errorf("pozycja %d: ilość ujemna (%s)", i+1, it.Quantity))
		}
		if it.UnitPriceNet.IsNegative() {
			errs = append(errs, fmt.Errorf("pozycja %d: cena netto ujemna (%s)", i+1, it.UnitPriceNet))
		}
		if it.VATRatePercent.IsNegative() || it.VATRatePercent.GreaterThan(maxVATRate) {
			errs = append(errs, fmt.Errorf("pozycja %d: stawka VAT poza zakresem 0-100 (%s)", i+1, it.VATRatePercent))
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{domain.ErrInvalidInput}, errs...)...)
	}
	return nil
}
