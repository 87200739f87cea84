// Package xmlexport serializa un rachunek a XML (etree) y calcula el digest
// SHA-256 de su forma canónica (C14N) para verificar integridad.
package xmlexport

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/finbot-api/internal/application/billing"
	"github.com/jhoicas/finbot-api/internal/domain/entity"
)

// Namespace del documento exportado.
const Namespace = "urn:finbot:rachunek:2.3"

var _ billing.InvoiceXMLBuilder = (*Builder)(nil)

// Builder implementa billing.InvoiceXMLBuilder.
type Builder struct{}

// NewBuilder construye el exportador.
func NewBuilder() *Builder { return &Builder{} }

// BuildInvoiceXML devuelve el XML indentado y el digest de su forma canónica.
func (b *Builder) BuildInvoiceXML(inv *entity.Invoice) ([]byte, string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Rachunek")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("wersja", inv.FormatVersion)

	text(root, "Numer", inv.Number)
	text(root, "TypDokumentu", inv.DocumentType)
	text(root, "DataWystawienia", isoDate(inv.IssueDate))
	text(root, "DataSprzedazy", isoDate(inv.SaleDate))
	text(root, "TerminPlatnosci", isoDate(inv.DueDate))
	text(root, "SposobPlatnosci", inv.PaymentMethod)

	party(root, "Sprzedawca", inv.Seller, true)
	party(root, "Nabywca", inv.Buyer, false)

	lines := root.CreateElement("Pozycje")
	for i, l := range inv.Lines {
		p := lines.CreateElement("Pozycja")
		p.CreateAttr("lp", fmt.Sprintf("%d", i+1))
		text(p, "Nazwa", l.Name)
		text(p, "Ilosc", l.Quantity.String())
		text(p, "Jednostka", l.Unit)
		text(p, "CenaNetto", l.UnitPriceNet.StringFixed(2))
		text(p, "StawkaVAT", l.VATRate.String())
		text(p, "WartoscNetto", l.NetValue.StringFixed(2))
		text(p, "KwotaVAT", l.VATAmount.StringFixed(2))
		text(p, "WartoscBrutto", l.GrossValue.StringFixed(2))
	}

	sum := root.CreateElement("Podsumowanie")
	sum.CreateAttr("waluta", "PLN")
	text(sum, "SumaNetto", inv.NetTotal.StringFixed(2))
	text(sum, "SumaVAT", inv.VATTotal.StringFixed(2))
	text(sum, "SumaBrutto", inv.GrossTotal.StringFixed(2))

	if len(inv.Notes) > 0 {
		notes := root.CreateElement("Uwagi")
		for _, n := range inv.Notes {
			text(notes, "Uwaga", n)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("xml: serializar: %w", err)
	}

	digest, err := Digest(out)
	if err != nil {
		return nil, "", err
	}
	return out, digest, nil
}

// Digest devuelve base64(SHA-256) de la forma canónica del documento.
// La declaración <?xml?> no forma parte de la forma canónica.
func Digest(doc []byte) (string, error) {
	parsed := etree.NewDocument()
	if err := parsed.ReadFromBytes(doc); err != nil {
		return "", fmt.Errorf("xml: parsear: %w", err)
	}
	if parsed.Root() == nil {
		return "", fmt.Errorf("xml: documento sin raíz")
	}
	rootOnly := etree.NewDocument()
	rootOnly.SetRoot(parsed.Root().Copy())
	raw, err := rootOnly.WriteToBytes()
	if err != nil {
		return "", fmt.Errorf("xml: serializar raíz: %w", err)
	}

	canonical, err := canonicalizeXML(raw)
	if err != nil {
		return "", fmt.Errorf("xml: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func canonicalizeXML(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}

func text(parent *etree.Element, tag, value string) {
	parent.CreateElement(tag).SetText(value)
}

func party(parent *etree.Element, tag string, p entity.Party, withAccount bool) {
	el := parent.CreateElement(tag)
	text(el, "Nazwa", p.Name)
	text(el, "NIP", p.NIP)
	text(el, "Adres", p.Address)
	if withAccount {
		text(el, "KontoBankowe", p.BankAccount)
	}
}

func isoDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
