package aggregate

import (
	"testing"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cyclePtr(days int) *int { return &days }

func TestCycleReport(t *testing.T) {
	records := []domain.NormalizedRecord{
		{Owner: "ana", CycleDays: cyclePtr(2)},
		{Owner: "ana", CycleDays: cyclePtr(4)},
		{Owner: "bruno", CycleDays: cyclePtr(10)},
		{Owner: "carla", CycleDays: cyclePtr(6)},
		{Owner: "dora", CycleDays: nil},
		{Owner: "", CycleDays: cyclePtr(8)},
	}

	report := CycleReport(records, 2)

	// (2+4+10+6+8) / 5
	assert.InDelta(t, 6.0, report.MeanDays, 1e-9)

	require.Len(t, report.Fastest, 2)
	assert.Equal(t, "ana", report.Fastest[0].Owner)
	assert.InDelta(t, 3.0, report.Fastest[0].MeanDays, 1e-9)
	assert.Equal(t, 2, report.Fastest[0].Offers)
	assert.Equal(t, 2, report.Fastest[0].MinDays)
	assert.Equal(t, 4, report.Fastest[0].MaxDays)
	assert.Equal(t, "carla", report.Fastest[1].Owner)

	require.Len(t, report.Slowest, 2)
	assert.Equal(t, "bruno", report.Slowest[0].Owner)
	assert.Equal(t, "carla", report.Slowest[1].Owner)
}

func TestCycleReportNoResolvedCycles(t *testing.T) {
	records := []domain.NormalizedRecord{
		{Owner: "ana", CycleDays: nil},
	}
	report := CycleReport(records, 3)
	assert.Equal(t, domain.CycleTimeReport{}, report)
}
