// Package analytics contiene el resumen financiero del dashboard de FinBot.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/finbot-api/internal/application/billing"
	"github.com/jhoicas/finbot-api/internal/application/dto"
	"github.com/jhoicas/finbot-api/internal/domain/entity"
	"github.com/jhoicas/finbot-api/internal/domain/invoice"
	"github.com/jhoicas/finbot-api/internal/domain/repository"
	"github.com/jhoicas/finbot-api/pkg/money"
)

// ServiceName nombre mostrado en el dashboard.
const ServiceName = "FinBot API (Rachunki)"

// DefaultSavingsRate fracción del bruto sugerida para apartar (impuestos, ZUS).
const DefaultSavingsRate = 0.20

// DashboardUseCase genera el resumen financiero a partir de los rachunki guardados.
type DashboardUseCase struct {
	invoiceRepo repository.InvoiceRepository
	backup      billing.BackupStore
	savingsRate decimal.Decimal
	now         func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(invoiceRepo repository.InvoiceRepository, backup billing.BackupStore, savingsRate float64) *DashboardUseCase {
	return &DashboardUseCase{
		invoiceRepo: invoiceRepo,
		backup:      backup,
		savingsRate: decimal.NewFromFloat(savingsRate),
		now:         time.Now,
	}
}

// WithClock fija el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el DashboardResponse.
//
// Tres lecturas en paralelo:
//  1. Stats        → número de rachunki y bruto acumulado
//  2. Latest       → último rachunek (única fila de "ostatnie rachunki")
//  3. backup.Count → copias guardadas
//
// Un fallo al contar copias no invalida el resumen: backups_count queda en 0.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	type statsResult struct {
		stats repository.InvoiceStats
		err   error
	}
	type latestResult struct {
		inv *entity.Invoice
		err error
	}
	type countResult struct {
		n   int
		err error
	}

	statsCh := make(chan statsResult, 1)
	latestCh := make(chan latestResult, 1)
	countCh := make(chan countResult, 1)

	go func() {
		s, err := uc.invoiceRepo.Stats(ctx)
		statsCh <- statsResult{s, err}
	}()
	go func() {
		inv, err := uc.invoiceRepo.Latest(ctx)
		latestCh <- latestResult{inv, err}
	}()
	go func() {
		n, err := uc.backup.Count(ctx)
		countCh <- countResult{n, err}
	}()

	stats := <-statsCh
	latest := <-latestCh
	count := <-countCh

	if stats.err != nil {
		return nil, fmt.Errorf("dashboard: estadísticas: %w", stats.err)
	}
	if latest.err != nil {
		return nil, fmt.Errorf("dashboard: último rachunek: %w", latest.err)
	}
	backups := count.n
	if count.err != nil {
		backups = 0
	}

	// ── Importes ──────────────────────────────────────────────────────────────
	revenue := decimal.Zero
	savings := decimal.Zero
	if stats.stats.Count > 0 {
		revenue = stats.stats.GrossTotal
		savings = revenue.Mul(uc.savingsRate)
	}

	recent := []dto.RecentInvoiceDTO{}
	if latest.inv != nil {
		recent = append(recent, recentRow(latest.inv))
	}

	return &dto.DashboardResponse{
		Status:       "healthy",
		Service:      ServiceName,
		Timestamp:    uc.now().Format(time.RFC3339),
		BackupsCount: backups,
		Version:      entity.FormatVersion,
		DashboardData: dto.DashboardDataDTO{
			GrossRevenue:     money.FormatPLN(revenue),
			SuggestedSavings: money.FormatPLN(savings),
			InvoiceCount:     stats.stats.Count,
			RecentInvoices:   recent,
			Status:           "OK",
		},
	}, nil
}

func recentRow(inv *entity.Invoice) dto.RecentInvoiceDTO {
	date := invoice.FormatDate(inv.IssueDate)
	if date == "" {
		date = "BRAK"
	}
	client := inv.Buyer.Name
	if client == "" {
		client = "BRAK"
	}
	return dto.RecentInvoiceDTO{
		Number:      inv.Number,
		Date:        date,
		Gross:       money.FormatPLN(inv.GrossTotal),
		Client:      client,
		Action:      "Podgląd PDF",
		DownloadURL: billing.DocumentPath(inv.Number, "pdf"),
	}
}
