package invoice_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finbot-api/internal/domain/invoice"
	"github.com/jhoicas/finbot-api/pkg/money"
)

func item(qty, price, rate string) invoice.LineItem {
	return invoice.LineItem{
		Name:           "Usługa programistyczna",
		Quantity:       money.Parse(qty),
		UnitPriceNet:   money.Parse(price),
		VATRatePercent: money.Parse(rate),
	}
}

func fixed(d decimal.Decimal) string { return d.StringFixed(2) }

func TestComputeTotals_SingleLine(t *testing.T) {
	lines, totals := invoice.ComputeTotals([]invoice.LineItem{item("2", "100", "23")})

	require.Len(t, lines, 1)
	assert.Equal(t, "200.00", fixed(lines[0].NetValue))
	assert.Equal(t, "46.00", fixed(lines[0].VATAmount))
	assert.Equal(t, "246.00", fixed(lines[0].GrossValue))

	assert.Equal(t, "200.00", fixed(totals.SumNet))
	assert.Equal(t, "46.00", fixed(totals.SumVAT))
	assert.Equal(t, "246.00", fixed(totals.SumGross))
}

func TestComputeTotals_Empty(t *testing.T) {
	lines, totals := invoice.ComputeTotals(nil)

	assert.NotNil(t, lines)
	assert.Empty(t, lines)
	assert.True(t, totals.SumNet.IsZero())
	assert.True(t, totals.SumVAT.IsZero())
	assert.True(t, totals.SumGross.IsZero())
}

func TestComputeTotals_MixedRates(t *testing.T) {
	lines, totals := invoice.ComputeTotals([]invoice.LineItem{
		item("1", "1000", "0"),
		item("3", "19.99", "8"),
		item("10", "2.5", "23"),
	})

	require.Len(t, lines, 3)
	assert.Equal(t, "1000.00", fixed(lines[0].GrossValue))
	assert.Equal(t, "59.97", fixed(lines[1].NetValue))
	assert.Equal(t, "4.80", fixed(lines[1].VATAmount)) // 4.7976
	assert.Equal(t, "64.77", fixed(lines[1].GrossValue))
	assert.Equal(t, "5.75", fixed(lines[2].VATAmount))

	assert.Equal(t, "1084.97", fixed(totals.SumNet))
	assert.Equal(t, "10.55", fixed(totals.SumVAT)) // 4.7976 + 5.75
	assert.Equal(t, "1095.52", fixed(totals.SumGross))
}

// Las sumas salen de los importes sin redondear, no de las filas mostradas.
func TestComputeTotals_AggregatesFromRawValues(t *testing.T) {
	t.Run("net", func(t *testing.T) {
		lines, totals := invoice.ComputeTotals([]invoice.LineItem{
			item("1", "0.005", "0"),
			item("1", "0.005", "0"),
		})
		assert.Equal(t, "0.01", fixed(lines[0].NetValue))
		assert.Equal(t, "0.01", fixed(lines[1].NetValue))
		assert.Equal(t, "0.01", fixed(totals.SumNet))
	})

	t.Run("vat", func(t *testing.T) {
		lines, totals := invoice.ComputeTotals([]invoice.LineItem{
			item("1", "0.10", "5"),
			item("1", "0.10", "5"),
		})
		assert.Equal(t, "0.01", fixed(lines[0].VATAmount))
		assert.Equal(t, "0.11", fixed(lines[0].GrossValue))
		assert.Equal(t, "0.01", fixed(totals.SumVAT))
		assert.Equal(t, "0.21", fixed(totals.SumGross))
	})
}

func TestComputeTotals_RoundsHalfAwayFromZero(t *testing.T) {
	lines, totals := invoice.ComputeTotals([]invoice.LineItem{item("1", "1.005", "0")})

	assert.Equal(t, "1.01", fixed(lines[0].NetValue))
	assert.Equal(t, "1.01", fixed(totals.SumNet))
}

func TestComputeTotals_MalformedInputCountsAsZero(t *testing.T) {
	lines, totals := invoice.ComputeTotals([]invoice.LineItem{
		item("abc", "100", "23"),
		item("1", "", "23"),
		item("1", "50", "x"),
	})

	require.Len(t, lines, 3)
	assert.True(t, lines[0].GrossValue.IsZero())
	assert.True(t, lines[1].GrossValue.IsZero())
	assert.Equal(t, "50.00", fixed(lines[2].GrossValue))
	assert.Equal(t, "50.00", fixed(totals.SumGross))
}

func TestComputeTotals_CommaDecimalSeparator(t *testing.T) {
	_, totals := invoice.ComputeTotals([]invoice.LineItem{item("1,5", "10,20", "23")})

	assert.Equal(t, "15.30", fixed(totals.SumNet))
	assert.Equal(t, "3.52", fixed(totals.SumVAT)) // 3.519
	assert.Equal(t, "18.82", fixed(totals.SumGross))
}

func TestComputeTotals_Deterministic(t *testing.T) {
	items := []invoice.LineItem{item("3", "33.333", "23"), item("7", "0.49", "8")}

	lines1, totals1 := invoice.ComputeTotals(items)
	lines2, totals2 := invoice.ComputeTotals(items)

	require.Len(t, lines2, len(lines1))
	for i := range lines1 {
		assert.Equal(t, fixed(lines1[i].GrossValue), fixed(lines2[i].GrossValue))
	}
	assert.Equal(t, fixed(totals1.SumGross), fixed(totals2.SumGross))
	assert.Equal(t, "3", items[0].Quantity.String(), "la entrada no se modifica")
}

func TestComputeTotals_GrossMatchesNetPlusVATOnAggregates(t *testing.T) {
	_, totals := invoice.ComputeTotals([]invoice.LineItem{
		item("2", "100", "23"),
		item("1", "999.99", "8"),
	})

	diff := totals.SumGross.Sub(totals.SumNet.Add(totals.SumVAT)).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.RequireFromString("0.01")))
}
