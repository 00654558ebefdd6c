package aggregate

import (
	"sort"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
)

// Metric selects what a ranking orders groups by.
type Metric int

const (
	BySum Metric = iota
	ByCount
)

// TopN groups the collection by keyFn, aggregates count and value sum per
// group, and returns the first n groups ordered descending by the chosen
// metric. Ties keep the order in which group keys were first encountered.
// Records with an empty key are skipped.
func TopN(records []domain.NormalizedRecord, keyFn func(domain.NormalizedRecord) string, n int, by Metric) []domain.RankedGroup {
	var order []string
	groups := make(map[string]*domain.RankedGroup)

	for _, rec := range records {
		key := keyFn(rec)
		if key == "" {
			continue
		}
		group, ok := groups[key]
		if !ok {
			group = &domain.RankedGroup{Key: key}
			groups[key] = group
			order = append(order, key)
		}
		group.Count++
		group.Value += rec.Value
	}

	ranked := make([]domain.RankedGroup, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, *groups[key])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if by == ByCount {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Value > ranked[j].Value
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopMargins returns the n highest and n lowest margin offers. Only records
// with a strictly positive margin participate, so zero and negative margins
// never appear in either list.
func TopMargins(records []domain.NormalizedRecord, n int) (highest, lowest []domain.MarginEntry) {
	var entries []domain.MarginEntry
	for _, rec := range records {
		if rec.MarginPct <= 0 {
			continue
		}
		entries = append(entries, domain.MarginEntry{
			Key:       rec.Key,
			MarginPct: Round1(rec.MarginPct),
			Value:     rec.Value,
		})
	}
	if len(entries) == 0 {
		return nil, nil
	}

	descending := make([]domain.MarginEntry, len(entries))
	copy(descending, entries)
	sort.SliceStable(descending, func(i, j int) bool {
		return descending[i].MarginPct > descending[j].MarginPct
	})

	ascending := make([]domain.MarginEntry, len(entries))
	copy(ascending, entries)
	sort.SliceStable(ascending, func(i, j int) bool {
		return ascending[i].MarginPct < ascending[j].MarginPct
	})

	if len(descending) > n {
		descending = descending[:n]
	}
	if len(ascending) > n {
		ascending = ascending[:n]
	}
	return descending, ascending
}
