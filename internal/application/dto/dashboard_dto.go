package dto

// DashboardResponse respuesta de GET /api/dashboard.
type DashboardResponse struct {
	Status        string           `json:"status"`
	Service       string           `json:"service"`
	Timestamp     string           `json:"timestamp"`
	BackupsCount  int              `json:"backups_count"`
	Version       string           `json:"version"`
	DashboardData DashboardDataDTO `json:"dashboard_data"`
}

// DashboardDataDTO resumen financiero. Los importes van ya formateados ("1234.56 zł").
type DashboardDataDTO struct {
	GrossRevenue     string             `json:"przychód_brutto"`
	SuggestedSavings string             `json:"sugerowana_kwota_do_odłożenia"`
	InvoiceCount     int                `json:"liczba_wygenerowanych_rachunków"`
	RecentInvoices   []RecentInvoiceDTO `json:"ostatnie_rachunki"`
	Status           string             `json:"status"`
}

// RecentInvoiceDTO fila de "ostatnio wygenerowane". Solo se muestra el último rachunek.
type RecentInvoiceDTO struct {
	Number      string `json:"Numer"`
	Date        string `json:"Data"`
	Gross       string `json:"Kwota_Brutto"`
	Client      string `json:"Klient"`
	Action      string `json:"Akcja"`
	DownloadURL string `json:"download_url"`
}
