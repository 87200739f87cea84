package xmlexport_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finbot-api/internal/domain/entity"
	"github.com/jhoicas/finbot-api/internal/domain/invoice"
	"github.com/jhoicas/finbot-api/internal/infrastructure/xmlexport"
)

func sampleInvoice(number string) *entity.Invoice {
	inv := &entity.Invoice{
		Number: number,
		Seller: entity.Party{Name: "Jan Kowalski", NIP: "5261040828"},
		Buyer:  entity.Party{Name: "Żabka & Syn", NIP: "1234563218"},
		Lines: []entity.InvoiceLine{{
			Name:         "Konsultacja <IT>",
			Quantity:     decimal.NewFromInt(2),
			UnitPriceNet: decimal.NewFromInt(100),
			VATRate:      decimal.NewFromInt(23),
			VATRateSet:   true,
		}},
	}
	invoice.Normalize(inv, time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC))
	invoice.ApplyTotals(inv)
	return inv
}

func TestBuildInvoiceXML(t *testing.T) {
	out, digest, err := xmlexport.NewBuilder().BuildInvoiceXML(sampleInvoice("RACH/2025/01"))
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Rachunek", root.Tag)
	assert.Equal(t, "2.3.1", root.SelectAttrValue("wersja", ""))
	assert.Equal(t, "RACH/2025/01", root.SelectElement("Numer").Text())
	assert.Equal(t, "2025-02-03", root.SelectElement("TerminPlatnosci").Text())
	assert.Equal(t, "Żabka & Syn", root.FindElement("Nabywca/Nazwa").Text())
	assert.Equal(t, "Konsultacja <IT>", root.FindElement("Pozycje/Pozycja/Nazwa").Text())
	assert.Equal(t, "246.00", root.FindElement("Podsumowanie/SumaBrutto").Text())
}

func TestBuildInvoiceXML_DigestIsStable(t *testing.T) {
	b := xmlexport.NewBuilder()

	out, d1, err := b.BuildInvoiceXML(sampleInvoice("A/1"))
	require.NoError(t, err)
	_, d2, err := b.BuildInvoiceXML(sampleInvoice("A/1"))
	require.NoError(t, err)
	_, other, err := b.BuildInvoiceXML(sampleInvoice("A/2"))
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
	assert.NotEqual(t, d1, other)

	recomputed, err := xmlexport.Digest(out)
	require.NoError(t, err)
	assert.Equal(t, d1, recomputed)
}

func TestDigest_InvalidXML(t *testing.T) {
	_, err := xmlexport.Digest([]byte("<a><b></a>"))
	assert.Error(t, err)
}
