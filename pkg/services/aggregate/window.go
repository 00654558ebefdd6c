// Package aggregate computes windowed aggregates, rankings and derived
// ratios over a normalized record collection. Every function is a pure
// computation over its inputs; an empty collection always yields a zero
// result, never an error.
package aggregate

import (
	"math"
	"time"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
)

// DateField selects which normalized date attribute a window filter reads.
type DateField int

const (
	DateUpdated DateField = iota
	DateDue
	DateReceived
	DateDelivered
)

// Filter describes one (category, window, date field) bucket selection.
type Filter struct {
	Category domain.StatusCategory
	Window   domain.TimeWindow
	Field    DateField

	// DedupByKey counts distinct record keys instead of raw rows, so an
	// entity appearing in multiple raw rows is counted once. Value and
	// margin always aggregate over raw rows.
	DedupByKey bool
}

// Collect filters the collection by category and window membership on the
// chosen date field, and returns the bucket's count, value sum and mean
// margin. Records with a missing date are excluded.
func Collect(records []domain.NormalizedRecord, f Filter) domain.AggregateBucket {
	var bucket domain.AggregateBucket
	var rows int
	var marginSum float64
	keys := make(map[string]struct{})

	for _, rec := range records {
		if rec.Category != f.Category {
			continue
		}
		if !f.Window.Contains(dateOf(rec, f.Field)) {
			continue
		}
		rows++
		bucket.Value += rec.Value
		marginSum += rec.MarginPct
		keys[rec.Key] = struct{}{}
	}

	if f.DedupByKey {
		bucket.Count = len(keys)
	} else {
		bucket.Count = rows
	}
	if rows > 0 {
		bucket.MeanMarginPct = Round1(marginSum / float64(rows))
	}
	return bucket
}

// CollectPhase aggregates one category without any window filter.
func CollectPhase(records []domain.NormalizedRecord, category domain.StatusCategory) domain.PhaseGroup {
	group := domain.PhaseGroup{Category: category}
	for _, rec := range records {
		if rec.Category != category {
			continue
		}
		group.Count++
		group.Value += rec.Value
	}
	return group
}

// WinRate is won / (won + lost) as a percentage rounded to one decimal.
// A zero denominator yields 0.0, never NaN.
func WinRate(won, lost domain.AggregateBucket) float64 {
	closed := won.Count + lost.Count
	if closed == 0 {
		return 0.0
	}
	return Round1(float64(won.Count) / float64(closed) * 100)
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func dateOf(rec domain.NormalizedRecord, field DateField) *time.Time {
	switch field {
	case DateDue:
		return rec.DueDate
	case DateReceived:
		return rec.ReceivedAt
	case DateDelivered:
		return rec.DeliveredAt
	default:
		return rec.UpdatedAt
	}
}
