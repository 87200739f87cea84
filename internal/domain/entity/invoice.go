package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipo de documento emitido por FinBot.
const DocumentTypeRachunek = "Rachunek do Umowy"

// FormatVersion versión del formato de datos del rachunek procesado.
const FormatVersion = "2.3.1"

// Party vendedor (wykonawca) o comprador (zleceniodawca).
type Party struct {
	Name        string
	NIP         string // puede venir vacío o con texto libre ("Brak (Osoba Fizyczna)")
	Address     string
	BankAccount string // solo vendedor
}

// InvoiceLine posición del rachunek: datos introducidos y valores calculados.
type InvoiceLine struct {
	Name         string
	Unit         string
	Quantity     decimal.Decimal
	UnitPriceNet decimal.Decimal
	VATRate      decimal.Decimal // porcentaje, 23 = 23 %
	VATRateSet   bool            // false si el formulario no envió stawka_vat

	NetValue   decimal.Decimal
	VATAmount  decimal.Decimal
	GrossValue decimal.Decimal
}

// Invoice representa un rachunek procesado por la API.
type Invoice struct {
	ID            string
	Number        string
	DocumentType  string
	IssueDate     time.Time // zero = no informada
	SaleDate      time.Time
	DueDate       time.Time
	PaymentMethod string
	Seller        Party
	Buyer         Party
	Lines         []InvoiceLine
	NetTotal      decimal.Decimal
	VATTotal      decimal.Decimal
	GrossTotal    decimal.Decimal
	Notes         []string // uwagi: avisos generados al normalizar más los del usuario
	ProcessedOn   time.Time
	FormatVersion string
	PDF           []byte
	BackupID      string
	CreatedAt     time.Time
}
