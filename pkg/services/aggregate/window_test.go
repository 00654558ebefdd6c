package aggregate

import (
	"testing"
	"time"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestCollect(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	window := domain.TrailingWindow(now, 7)

	records := []domain.NormalizedRecord{
		{Key: "OFF-1", Category: domain.CategoryWon, Value: 1000, MarginPct: 20, UpdatedAt: datePtr(now.AddDate(0, 0, -3))},
		{Key: "OFF-1", Category: domain.CategoryWon, Value: 250, MarginPct: 30, UpdatedAt: datePtr(now.AddDate(0, 0, -2))},
		{Key: "OFF-2", Category: domain.CategoryWon, Value: 500, MarginPct: 10, UpdatedAt: datePtr(now.AddDate(0, 0, -30))},
		{Key: "OFF-3", Category: domain.CategoryLost, Value: 700, UpdatedAt: datePtr(now.AddDate(0, 0, -1))},
		{Key: "OFF-4", Category: domain.CategoryWon, Value: 900, UpdatedAt: nil},
	}

	t.Run("dedup counts distinct keys, value sums raw rows", func(t *testing.T) {
		bucket := Collect(records, Filter{
			Category:   domain.CategoryWon,
			Window:     window,
			Field:      DateUpdated,
			DedupByKey: true,
		})
		assert.Equal(t, 1, bucket.Count)
		assert.InDelta(t, 1250, bucket.Value, 1e-9)
		assert.InDelta(t, 25.0, bucket.MeanMarginPct, 1e-9)
	})

	t.Run("raw row count without dedup", func(t *testing.T) {
		bucket := Collect(records, Filter{
			Category: domain.CategoryWon,
			Window:   window,
			Field:    DateUpdated,
		})
		assert.Equal(t, 2, bucket.Count)
	})

	t.Run("records outside the window are excluded", func(t *testing.T) {
		bucket := Collect(records, Filter{
			Category: domain.CategoryWon,
			Window:   domain.TrailingWindow(now, 60),
			Field:    DateUpdated,
		})
		assert.Equal(t, 3, bucket.Count)
	})

	t.Run("missing dates are excluded", func(t *testing.T) {
		bucket := Collect(records, Filter{
			Category: domain.CategoryLost,
			Window:   window,
			Field:    DateDue,
		})
		assert.Equal(t, 0, bucket.Count)
		assert.Equal(t, 0.0, bucket.Value)
	})

	t.Run("empty collection yields zero bucket", func(t *testing.T) {
		bucket := Collect(nil, Filter{Category: domain.CategoryWon, Window: window})
		assert.Equal(t, domain.AggregateBucket{}, bucket)
	})
}

func TestCollectPhase(t *testing.T) {
	records := []domain.NormalizedRecord{
		{Key: "OFF-1", Category: domain.CategoryInDevelopment, Value: 100},
		{Key: "OFF-2", Category: domain.CategoryInDevelopment, Value: 200},
		{Key: "OFF-3", Category: domain.CategoryLost, Value: 50},
	}

	group := CollectPhase(records, domain.CategoryInDevelopment)
	assert.Equal(t, 2, group.Count)
	assert.InDelta(t, 300, group.Value, 1e-9)

	empty := CollectPhase(records, domain.CategoryCancelled)
	assert.Equal(t, 0, empty.Count)
	assert.Equal(t, 0.0, empty.Value)
}

func TestWinRate(t *testing.T) {
	tests := []struct {
		name     string
		won      int
		lost     int
		expected float64
	}{
		{name: "even split", won: 1, lost: 1, expected: 50.0},
		{name: "all won", won: 3, lost: 0, expected: 100.0},
		{name: "rounded to one decimal", won: 1, lost: 2, expected: 33.3},
		{name: "zero denominator", won: 0, lost: 0, expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WinRate(
				domain.AggregateBucket{Count: tt.won},
				domain.AggregateBucket{Count: tt.lost},
			)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestTrailingWindowBounds(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	w := domain.TrailingWindow(now, 7)

	assert.True(t, w.Contains(datePtr(w.Start)), "start is inclusive")
	assert.False(t, w.Contains(datePtr(w.End)), "end is exclusive")
	assert.False(t, w.Contains(nil), "nil never belongs")
	assert.True(t, w.Contains(datePtr(now.AddDate(0, 0, -6))))
	assert.False(t, w.Contains(datePtr(now.AddDate(0, 0, -8))))
}
