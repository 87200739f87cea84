package dto

import "github.com/jhoicas/finbot-api/pkg/money"

// Las claves JSON son las del formulario web de FinBot (en polaco).

// GenerateInvoiceRequest cuerpo de POST /api/invoice/generate.
// SystemInstruction se acepta por compatibilidad con el cliente y se ignora.
type GenerateInvoiceRequest struct {
	SystemInstruction string         `json:"system_instruction"`
	InvoiceData       InvoiceDataDTO `json:"invoice_data"`
}

// InvoiceDataDTO datos del rachunek tal como los envía (y recibe) el formulario.
type InvoiceDataDTO struct {
	Number        string       `json:"numer_faktury"`
	DocumentType  string       `json:"typ_dokumentu,omitempty"`
	IssueDate     string       `json:"data_wystawienia"`
	SaleDate      string       `json:"data_sprzedazy"`
	DueDate       string       `json:"termin_platnosci"`
	Seller        PartyDTO     `json:"sprzedawca"`
	Buyer         PartyDTO     `json:"nabywca"`
	Lines         []LineDTO    `json:"pozycje"`
	NetTotal      money.Amount `json:"suma_netto"`
	VATTotal      money.Amount `json:"suma_vat"`
	GrossTotal    money.Amount `json:"suma_brutto"`
	PaymentMethod string       `json:"sposob_platnosci"`
	Metadata      MetadataDTO  `json:"metadata"`
}

// PartyDTO sprzedawca / nabywca.
type PartyDTO struct {
	Name        string `json:"nazwa"`
	NIP         string `json:"nip"`
	Address     string `json:"adres"`
	BankAccount string `json:"konto_bankowe,omitempty"`
}

// LineDTO posición. Los importes calculados que envíe el cliente se ignoran.
type LineDTO struct {
	Name         string       `json:"nazwa"`
	Quantity     money.Amount `json:"ilosc"`
	Unit         string       `json:"jednostka"`
	UnitPriceNet money.Amount `json:"cena_netto"`
	VATRate      money.Amount `json:"stawka_vat"`
	NetValue     money.Amount `json:"wartosc_netto"`
	VATAmount    money.Amount `json:"kwota_vat"`
	GrossValue   money.Amount `json:"wartosc_brutto"`
}

// MetadataDTO uwagi y datos de proceso.
type MetadataDTO struct {
	ProcessedOn   string   `json:"data_przetworzenia,omitempty"`
	FormatVersion string   `json:"wersja_formatu,omitempty"`
	Notes         []string `json:"uwagi"`
}

// TotalsDTO sumas del rachunek en la respuesta de generación.
type TotalsDTO struct {
	Net   money.Amount `json:"netto"`
	VAT   money.Amount `json:"vat"`
	Gross money.Amount `json:"brutto"`
}

// GenerateInvoiceResponse respuesta de POST /api/invoice/generate.
type GenerateInvoiceResponse struct {
	Status        string         `json:"status"`
	Message       string         `json:"message"`
	InvoiceNumber string         `json:"invoice_number"`
	Totals        TotalsDTO      `json:"totals"`
	ItemsCount    int            `json:"items_count"`
	DownloadURL   string         `json:"download_url"`
	XMLURL        string         `json:"xml_url"`
	BackupCreated bool           `json:"backup_created"`
	BackupID      *string        `json:"backup_id"`
	Timestamp     string         `json:"timestamp"`
	InvoiceData   InvoiceDataDTO `json:"invoice_data"`
}

// TotalsPreviewRequest cuerpo de POST /api/invoice/totals.
type TotalsPreviewRequest struct {
	Lines []LineDTO `json:"pozycje"`
}

// LineTotalsDTO importes calculados de una posición.
type LineTotalsDTO struct {
	NetValue   money.Amount `json:"wartosc_netto"`
	VATAmount  money.Amount `json:"kwota_vat"`
	GrossValue money.Amount `json:"wartosc_brutto"`
}

// TotalsPreviewResponse importes por posición y sumas.
type TotalsPreviewResponse struct {
	Lines      []LineTotalsDTO `json:"pozycje"`
	NetTotal   money.Amount    `json:"suma_netto"`
	VATTotal   money.Amount    `json:"suma_vat"`
	GrossTotal money.Amount    `json:"suma_brutto"`
}

// DueDateResponse respuesta de GET /api/invoice/due-date.
type DueDateResponse struct {
	IssueDate string `json:"data_wystawienia"`
	DueDate   string `json:"termin_platnosci"`
	Days      int    `json:"dni"`
}

// NIPResponse respuesta de GET /api/nip/{nip}.
type NIPResponse struct {
	NIP        string `json:"nip"`
	Normalized string `json:"normalized"`
	Valid      bool   `json:"valid"`
	Formatted  string `json:"formatted"`
}
