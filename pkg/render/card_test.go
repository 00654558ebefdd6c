package render

import (
	"testing"
	"time"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func successReport() *domain.ConsolidatedReport {
	return &domain.ConsolidatedReport{
		Status:      domain.ReportSuccess,
		Week:        "2025-W24",
		GeneratedAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		TotalOffers: 12,
		ActivePipeline: domain.PhaseGroup{
			Category: domain.CategoryInDevelopment,
			Count:    5,
			Value:    1234567.89,
		},
		Results30d: domain.WindowResult{
			Won:        domain.AggregateBucket{Count: 3, Value: 50000, MeanMarginPct: 22.5},
			Lost:       domain.AggregateBucket{Count: 1, Value: 10000, MeanMarginPct: 8},
			WinRatePct: 75.0,
		},
		Budget: domain.BudgetReport{
			AllocatedHours: 200,
			ConsumedHours:  170,
			AvailableHours: 30,
			UtilizationPct: 85.0,
			Alert:          true,
			AtRisk: []domain.AtRiskOffer{
				{Key: "OFF-9", Owner: "ana", UtilizationPct: 92.0},
			},
		},
		Practices: domain.PracticeReport{
			Ranking: []domain.PracticeGroup{
				{Practice: domain.PracticeCyber, Value: 600000, Offers: 4},
			},
		},
		Response: domain.ResponseReport{
			RatePct:   66.7,
			Responded: 2,
			Total:     3,
			Pending:   []string{"bruno"},
		},
	}
}

func TestCard(t *testing.T) {
	html, err := Card(successReport())
	require.NoError(t, err)

	assert.Contains(t, html, "Week 2025-W24")
	assert.Contains(t, html, "R$ 1.234.567,89")
	assert.Contains(t, html, "75%")
	assert.Contains(t, html, "OFF-9")
	assert.Contains(t, html, "Cyber")
	assert.Contains(t, html, "Pending: bruno")
	assert.Contains(t, html, "66.7%")
}

func TestCardNonSuccessShapes(t *testing.T) {
	t.Run("nil report", func(t *testing.T) {
		html, err := Card(nil)
		require.NoError(t, err)
		assert.Empty(t, html)
	})

	t.Run("no_data report", func(t *testing.T) {
		html, err := Card(&domain.ConsolidatedReport{Status: domain.ReportNoData})
		require.NoError(t, err)
		assert.Empty(t, html)
	})

	t.Run("updates_only report", func(t *testing.T) {
		html, err := Card(&domain.ConsolidatedReport{Status: domain.ReportUpdatesOnly})
		require.NoError(t, err)
		assert.Empty(t, html)
	})
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{value: 0, expected: "R$ 0,00"},
		{value: 999.9, expected: "R$ 999,90"},
		{value: 1000, expected: "R$ 1.000,00"},
		{value: 1234567.89, expected: "R$ 1.234.567,89"},
		{value: -500.5, expected: "-R$ 500,50"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatMoney(tt.value))
		})
	}
}
