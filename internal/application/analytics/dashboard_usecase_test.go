package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finbot-api/internal/application/analytics"
	"github.com/jhoicas/finbot-api/internal/application/billing"
	"github.com/jhoicas/finbot-api/internal/domain/entity"
	"github.com/jhoicas/finbot-api/internal/domain/repository"
	"github.com/jhoicas/finbot-api/internal/infrastructure/memory"
)

type fakeBackup struct {
	n   int
	err error
}

func (f fakeBackup) Store(context.Context, string, []byte, time.Time) (*billing.BackupResult, error) {
	return nil, nil
}
func (f fakeBackup) Count(context.Context) (int, error) { return f.n, f.err }

type brokenRepo struct{ *memory.InvoiceRepo }

func (brokenRepo) Stats(context.Context) (repository.InvoiceStats, error) {
	return repository.InvoiceStats{}, errors.New("timeout")
}

var now = time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)

func TestGetSummary_Empty(t *testing.T) {
	uc := analytics.NewDashboardUseCase(memory.NewInvoiceRepository(), fakeBackup{}, analytics.DefaultSavingsRate).
		WithClock(func() time.Time { return now })

	resp, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "2025-01-20T12:00:00Z", resp.Timestamp)
	assert.Equal(t, "0.00 zł", resp.DashboardData.GrossRevenue)
	assert.Equal(t, "0.00 zł", resp.DashboardData.SuggestedSavings)
	assert.Equal(t, 0, resp.DashboardData.InvoiceCount)
	assert.NotNil(t, resp.DashboardData.RecentInvoices)
	assert.Empty(t, resp.DashboardData.RecentInvoices)
	assert.Equal(t, "OK", resp.DashboardData.Status)
}

func TestGetSummary_WithInvoices(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInvoiceRepository()
	require.NoError(t, repo.Save(ctx, &entity.Invoice{Number: "R/1", GrossTotal: decimal.RequireFromString("246.00")}))
	require.NoError(t, repo.Save(ctx, &entity.Invoice{
		Number:     "R/2",
		IssueDate:  time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		Buyer:      entity.Party{Name: "ACME"},
		GrossTotal: decimal.RequireFromString("1000.50"),
	}))
	uc := analytics.NewDashboardUseCase(repo, fakeBackup{n: 2}, 0.20)

	resp, err := uc.GetSummary(ctx)
	require.NoError(t, err)

	data := resp.DashboardData
	assert.Equal(t, 2, resp.BackupsCount)
	assert.Equal(t, "1246.50 zł", data.GrossRevenue)
	assert.Equal(t, "249.30 zł", data.SuggestedSavings)
	assert.Equal(t, 2, data.InvoiceCount)
	require.Len(t, data.RecentInvoices, 1)
	row := data.RecentInvoices[0]
	assert.Equal(t, "R/2", row.Number)
	assert.Equal(t, "20.01.2025", row.Date)
	assert.Equal(t, "1000.50 zł", row.Gross)
	assert.Equal(t, "ACME", row.Client)
	assert.Equal(t, "Podgląd PDF", row.Action)
	assert.Equal(t, "/api/invoice/R/2/pdf", row.DownloadURL)
}

func TestGetSummary_BackupCountErrorIsIgnored(t *testing.T) {
	uc := analytics.NewDashboardUseCase(memory.NewInvoiceRepository(), fakeBackup{err: errors.New("s3")}, 0.2)

	resp, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.BackupsCount)
}

func TestGetSummary_RepoError(t *testing.T) {
	uc := analytics.NewDashboardUseCase(brokenRepo{memory.NewInvoiceRepository()}, fakeBackup{}, 0.2)

	_, err := uc.GetSummary(context.Background())
	assert.ErrorContains(t, err, "timeout")
}
