package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/finbot-api/internal/domain/entity"
	"github.com/jhoicas/finbot-api/pkg/nip"
)

// Unidades por defecto cuando la posición llega sin jednostka.
const (
	UnitService = "usługa"
	UnitPiece   = "szt."
)

// palabras que identifican una posición como servicio.
var serviceKeywords = []string{"usługa", "consulting", "konsultacja", "programowanie"}

// Normalize completa los datos que faltan en el rachunek y añade una nota (uwaga)
// por cada corrección. Las notas del usuario se conservan delante.
// now es la fecha de proceso; se recibe explícita para que la función sea pura.
func Normalize(inv *entity.Invoice, now time.Time) {
	if inv == nil {
		return
	}
	var notes []string

	if strings.TrimSpace(inv.DocumentType) == "" {
		inv.DocumentType = entity.DocumentTypeRachunek
	}
	if strings.TrimSpace(inv.Number) == "" {
		inv.Number = fmt.Sprintf("RACH-%d", now.Unix())
		notes = append(notes, fmt.Sprintf("Numer rachunku nadany automatycznie (%s)", inv.Number))
	}

	notes = append(notes, partyNotes("sprzedawcy", inv.Seller.NIP, true)...)
	notes = append(notes, partyNotes("nabywcy", inv.Buyer.NIP, false)...)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if inv.IssueDate.IsZero() {
		inv.IssueDate = today
		notes = append(notes, "Data wystawienia uzupełniona automatycznie")
	}
	if inv.SaleDate.IsZero() {
		inv.SaleDate = inv.IssueDate
		notes = append(notes, "Data sprzedaży/wykonania usługi uzupełniona automatycznie")
	}
	if inv.DueDate.IsZero() {
		inv.DueDate = DueDate(inv.IssueDate)
		notes = append(notes, fmt.Sprintf("Termin płatności uzupełniony automatycznie (%d dni)", PaymentTermDays))
	}

	for i := range inv.Lines {
		line := &inv.Lines[i]
		if strings.TrimSpace(line.Unit) == "" {
			line.Unit = defaultUnit(line.Name)
			notes = append(notes, fmt.Sprintf("Pozycja %d: jednostka uzupełniona jako '%s'", i+1, line.Unit))
		}
		// Rachunek de freelancer: sin tipo indicado se asume exención subjetiva (0 %).
		if !line.VATRateSet {
			line.VATRate = decimal.Zero
			line.VATRateSet = true
			notes = append(notes, fmt.Sprintf("Pozycja %d: stawka VAT uzupełniona jako 0%% (Zwolnienie Podmiotowe)", i+1))
		}
	}

	inv.Notes = append(inv.Notes, notes...)
	inv.ProcessedOn = today
	inv.FormatVersion = entity.FormatVersion
}

func partyNotes(role, rawNIP string, seller bool) []string {
	id := nip.Normalize(strings.TrimSpace(rawNIP))
	if !nip.HasDigits(id) {
		if seller {
			return []string{"Sprzedawca działa jako Osoba Fizyczna/Działalność Nierejestrowana (brak NIP/zwolnienie podmiotowe z VAT)"}
		}
		return nil
	}
	if !nip.Valid(id) {
		return []string{fmt.Sprintf("NIP %s (%s) jest niepoprawny - wymaga weryfikacji", role, id)}
	}
	return nil
}

func defaultUnit(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range serviceKeywords {
		if strings.Contains(lower, kw) {
			return UnitService
		}
	}
	return UnitPiece
}

// ApplyTotals recalcula los importes de cada posición y las sumas del rachunek
// con ComputeTotals. Los valores enviados por el cliente se sobrescriben.
func ApplyTotals(inv *entity.Invoice) InvoiceTotals {
	lineTotals, totals := ComputeTotals(ItemsOf(inv))
	for i := range inv.Lines {
		inv.Lines[i].NetValue = lineTotals[i].NetValue
		inv.Lines[i].VATAmount = lineTotals[i].VATAmount
		inv.Lines[i].GrossValue = lineTotals[i].GrossValue
	}
	inv.NetTotal = totals.SumNet
	inv.VATTotal = totals.SumVAT
	inv.GrossTotal = totals.SumGross
	return totals
}

// ItemsOf devuelve las posiciones del rachunek como entrada de ComputeTotals.
func ItemsOf(inv *entity.Invoice) []LineItem {
	items := make([]LineItem, len(inv.Lines))
	for i, l := range inv.Lines {
		items[i] = LineItem{
			Name:           l.Name,
			Unit:           l.Unit,
			Quantity:       l.Quantity,
			UnitPriceNet:   l.UnitPriceNet,
			VATRatePercent: l.VATRate,
		}
	}
	return items
}
