package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterSuccess(t *testing.T) {
	report := &domain.ConsolidatedReport{
		RunID:       "run-1",
		GeneratedAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		Week:        "2025-W24",
		Status:      domain.ReportSuccess,
		TotalOffers: 2,
		TotalValue:  1500,
		PipelineByPhase: []domain.PhaseGroup{
			{Category: domain.CategoryInDevelopment, Count: 1, Value: 500},
			{Category: domain.CategoryWon, Count: 1, Value: 1000},
		},
		Results7d: domain.WindowResult{
			Won:        domain.AggregateBucket{Count: 1, Value: 1000},
			WinRatePct: 100,
		},
		TopMarkets: []domain.RankedGroup{{Key: "Banking", Count: 2, Value: 1500}},
		Budget:     domain.BudgetReport{AllocatedHours: 100, ConsumedHours: 40, UtilizationPct: 40},
		Response:   domain.ResponseReport{RatePct: 50, Responded: 1, Total: 2, Pending: []string{"bruno"}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(report))

	out := buf.String()
	assert.Contains(t, out, "week 2025-W24")
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "Banking")
	assert.Contains(t, out, "win rate 100%")
	assert.Contains(t, out, "Pending: bruno")
}

func TestReporterNoData(t *testing.T) {
	report := &domain.ConsolidatedReport{
		GeneratedAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		Week:        "2025-W24",
		Status:      domain.ReportNoData,
		Message:     "no data received",
	}

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(report))
	assert.Contains(t, buf.String(), "no data received")
}
