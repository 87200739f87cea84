// Package pdf genera la representación PDF del rachunek do umowy.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: RACHUNEK DO UMOWY <número>                          │
//	│  SPRZEDAWCA (WYKONAWCA)       │  NABYWCA (ZLECENIODAWCA)     │
//	│  FECHAS: wystawienia / sprzedaży / termin / sposób płatności │
//	│  TABLA: LP | Nazwa | Ilość | J.m. | Cena | Netto | VAT | ... │
//	│  RAZEM                                                       │
//	│  UWAGI                                                       │
//	│  KWOTA RACHUNKU (BRUTTO)                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	mentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"github.com/jhoicas/finbot-api/internal/application/billing"
	"github.com/jhoicas/finbot-api/internal/domain/entity"
	"github.com/jhoicas/finbot-api/internal/domain/invoice"
	"github.com/jhoicas/finbot-api/pkg/money"
	"github.com/jhoicas/finbot-api/pkg/pltext"
)

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 60, Green: 60, Blue: 60}
	colorGray    = &props.Color{Red: 110, Green: 110, Blue: 110}
)

const (
	fallbackFamily = "helvetica"
	unicodeFamily  = "finbot-unicode"
	missing        = "BRAK"
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
// Con fuentes TTF configuradas escribe los caracteres polacos tal cual; con las
// fuentes base de PDF (sin ą, ł, ż…) los sustituye por su letra sin diacrítico.
type MarotoPDFGenerator struct {
	cfg     *mentity.Config
	unicode bool
}

// Fonts rutas TTF opcionales.
type Fonts struct {
	Regular string
	Bold    string
}

// NewMarotoPDFGenerator construye el generador. Si fonts.Regular está vacío
// se usan las fuentes base.
func NewMarotoPDFGenerator(fonts Fonts) (*MarotoPDFGenerator, error) {
	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithAuthor("FinBot", true).
		WithTitle(entity.DocumentTypeRachunek, true)

	g := &MarotoPDFGenerator{}
	if fonts.Regular != "" {
		bold := fonts.Bold
		if bold == "" {
			bold = fonts.Regular
		}
		custom, err := repository.New().
			AddUTF8Font(unicodeFamily, fontstyle.Normal, fonts.Regular).
			AddUTF8Font(unicodeFamily, fontstyle.Bold, bold).
			Load()
		if err != nil {
			return nil, fmt.Errorf("pdf: cargar fuentes: %w", err)
		}
		b = b.WithCustomFonts(custom).
			WithDefaultFont(&props.Font{Family: unicodeFamily, Size: 9})
		g.unicode = true
	} else {
		b = b.WithDefaultFont(&props.Font{Family: fallbackFamily, Size: 9})
	}
	g.cfg = b.Build()
	return g, nil
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, inv *entity.Invoice) ([]byte, error) {
	m := maroto.New(g.cfg)

	m.AddRows(g.titleRow(inv))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.partiesRows(inv)...)
	m.AddRows(row.New(4))
	m.AddRows(g.datesRows(inv)...)
	m.AddRows(row.New(4))

	m.AddRows(g.tableHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.tableLineRows(inv.Lines)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.tableTotalsRow(inv))
	m.AddRows(row.New(6))

	if len(inv.Notes) > 0 {
		m.AddRows(g.notesRows(inv.Notes)...)
		m.AddRows(row.New(4))
	}
	m.AddRows(g.summaryRows(inv)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) titleRow(inv *entity.Invoice) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New(g.txt("RACHUNEK DO UMOWY "+nonEmpty(inv.Number, missing)), props.Text{
			Style: fontstyle.Bold, Size: 15, Align: align.Center, Color: colorPrimary, Top: 2,
		}),
	))
}

func (g *MarotoPDFGenerator) partiesRows(inv *entity.Invoice) []core.Row {
	cell := func(s string, style fontstyle.Type) core.Col {
		return col.New(6).Add(text.New(g.txt(s), props.Text{Style: style, Size: 9, Top: 1, Left: 1}))
	}
	account := ""
	if inv.Seller.BankAccount != "" {
		account = "Konto: " + inv.Seller.BankAccount
	}
	return []core.Row{
		row.New(7).Add(
			cell("SPRZEDAWCA (WYKONAWCA):", fontstyle.Bold),
			cell("NABYWCA (ZLECENIODAWCA):", fontstyle.Bold),
		),
		row.New(6).Add(cell(nonEmpty(inv.Seller.Name, "BRAK DANYCH"), fontstyle.Bold), cell(nonEmpty(inv.Buyer.Name, "BRAK DANYCH"), fontstyle.Bold)),
		row.New(5).Add(cell("NIP: "+nonEmpty(inv.Seller.NIP, missing), fontstyle.Normal), cell("NIP: "+nonEmpty(inv.Buyer.NIP, missing), fontstyle.Normal)),
		row.New(5).Add(cell(nonEmpty(inv.Seller.Address, missing), fontstyle.Normal), cell(nonEmpty(inv.Buyer.Address, missing), fontstyle.Normal)),
		row.New(5).Add(cell(account, fontstyle.Normal), col.New(6)),
	}
}

func (g *MarotoPDFGenerator) datesRows(inv *entity.Invoice) []core.Row {
	pair := func(label, value string) core.Row {
		return row.New(5).Add(
			col.New(3).Add(text.New(g.txt(label), props.Text{Size: 9, Left: 1})),
			col.New(9).Add(text.New(g.txt(nonEmpty(value, missing)), props.Text{Size: 9})),
		)
	}
	return []core.Row{
		pair("Data wystawienia:", invoice.FormatDate(inv.IssueDate)),
		pair("Data sprzedaży/usługi:", invoice.FormatDate(inv.SaleDate)),
		pair("Termin płatności:", invoice.FormatDate(inv.DueDate)),
		pair("Sposób płatności:", inv.PaymentMethod),
	}
}

// columnas de la tabla de posiciones (suman 12).
var tableCols = []struct {
	label string
	size  int
	align align.Type
}{
	{"LP", 1, align.Center},
	{"NAZWA USŁUGI", 3, align.Left},
	{"ILOŚĆ", 1, align.Right},
	{"J.M.", 1, align.Center},
	{"CENA NETTO", 1, align.Right},
	{"WARTOŚĆ NETTO", 1, align.Right},
	{"VAT", 1, align.Right},
	{"KWOTA VAT", 1, align.Right},
	{"WARTOŚĆ BRUTTO", 2, align.Right},
}

func (g *MarotoPDFGenerator) tableRow(height float64, cells []string, style fontstyle.Type, size float64) core.Row {
	cols := make([]core.Col, len(tableCols))
	for i, c := range tableCols {
		cols[i] = col.New(c.size).Add(text.New(g.txt(cells[i]), props.Text{
			Style: style, Size: size, Align: c.align, Top: 1, Left: 0.5, Right: 0.5,
		}))
	}
	return row.New(height).Add(cols...)
}

func (g *MarotoPDFGenerator) tableHeaderRow() core.Row {
	labels := make([]string, len(tableCols))
	for i, c := range tableCols {
		labels[i] = c.label
	}
	return g.tableRow(9, labels, fontstyle.Bold, 6.5)
}

func (g *MarotoPDFGenerator) tableLineRows(lines []entity.InvoiceLine) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	for i, l := range lines {
		rows = append(rows, g.tableRow(7, []string{
			fmt.Sprintf("%d", i+1),
			nonEmpty(l.Name, missing),
			l.Quantity.String(),
			nonEmpty(l.Unit, "szt."),
			money.FormatPLNLocale(l.UnitPriceNet),
			money.FormatPLNLocale(l.NetValue),
			l.VATRate.String() + "%",
			money.FormatPLNLocale(l.VATAmount),
			money.FormatPLNLocale(l.GrossValue),
		}, fontstyle.Normal, 7))
	}
	return rows
}

func (g *MarotoPDFGenerator) tableTotalsRow(inv *entity.Invoice) core.Row {
	return g.tableRow(7, []string{
		"", "", "", "", "RAZEM:",
		money.FormatPLNLocale(inv.NetTotal),
		"",
		money.FormatPLNLocale(inv.VATTotal),
		money.FormatPLNLocale(inv.GrossTotal),
	}, fontstyle.Bold, 7.5)
}

func (g *MarotoPDFGenerator) notesRows(notes []string) []core.Row {
	rows := []core.Row{row.New(6).Add(col.New(12).Add(
		text.New(g.txt("Uwagi / Informacje Dodatkowe:"), props.Text{Style: fontstyle.Bold, Size: 9, Left: 1}),
	))}
	for _, n := range notes {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(g.txt("- "+n), props.Text{Size: 8, Left: 3, Color: colorGray}),
		)))
	}
	return rows
}

func (g *MarotoPDFGenerator) summaryRows(inv *entity.Invoice) []core.Row {
	return []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(g.txt("KWOTA RACHUNKU (BRUTTO): "+money.FormatPLNLocale(inv.GrossTotal)), props.Text{
				Style: fontstyle.Bold, Size: 11, Left: 1, Color: colorPrimary,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(g.txt(fmt.Sprintf("W tym: Netto: %s, VAT: %s",
				money.FormatPLNLocale(inv.NetTotal), money.FormatPLNLocale(inv.VATTotal))), props.Text{
				Size: 9, Left: 1, Color: colorGray,
			}),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) txt(s string) string {
	if g.unicode {
		return s
	}
	return pltext.Fold(s)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
