package invoice_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finbot-api/internal/domain/invoice"
)

func TestDueDate(t *testing.T) {
	tests := []struct {
		issue string
		want  string
	}{
		{"2025-01-20", "2025-02-03"},
		{"2024-02-20", "2024-03-05"}, // año bisiesto
		{"2025-02-20", "2025-03-06"},
		{"2025-12-25", "2026-01-08"},
	}
	for _, tt := range tests {
		t.Run(tt.issue, func(t *testing.T) {
			issue, err := time.Parse("2006-01-02", tt.issue)
			require.NoError(t, err)
			assert.Equal(t, tt.want, invoice.DueDate(issue).Format("2006-01-02"))
		})
	}
}

func TestDueDate_IsFourteenDaysLater(t *testing.T) {
	issue := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 14*24*time.Hour, invoice.DueDate(issue).Sub(issue))
}

func TestParseDate(t *testing.T) {
	for _, in := range []string{"2025-01-20", "20.01.2025", " 20.1.2025 "} {
		d, ok := invoice.ParseDate(in)
		require.True(t, ok, in)
		assert.Equal(t, 2025, d.Year())
		assert.Equal(t, time.January, d.Month())
		assert.Equal(t, 20, d.Day())
	}

	for _, in := range []string{"", "jutro", "2025-13-01", "32.01.2025"} {
		_, ok := invoice.ParseDate(in)
		assert.False(t, ok, in)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "03.02.2025", invoice.FormatDate(time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", invoice.FormatDate(time.Time{}))
}
