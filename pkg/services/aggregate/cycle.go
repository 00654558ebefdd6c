package aggregate

import (
	"sort"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
)

// CycleReport computes receipt-to-delivery cycle statistics: the overall
// mean in days and the n fastest and n slowest owners by mean cycle time.
// Only records with a resolved cycle participate; with none, the report is
// all zeros.
func CycleReport(records []domain.NormalizedRecord, n int) domain.CycleTimeReport {
	var order []string
	type acc struct {
		count     int
		totalDays int
		minDays   int
		maxDays   int
	}
	owners := make(map[string]*acc)

	var total, count int
	for _, rec := range records {
		if rec.CycleDays == nil {
			continue
		}
		days := *rec.CycleDays
		total += days
		count++

		if rec.Owner == "" {
			continue
		}
		a, ok := owners[rec.Owner]
		if !ok {
			a = &acc{minDays: days, maxDays: days}
			owners[rec.Owner] = a
			order = append(order, rec.Owner)
		}
		a.count++
		a.totalDays += days
		if days < a.minDays {
			a.minDays = days
		}
		if days > a.maxDays {
			a.maxDays = days
		}
	}

	report := domain.CycleTimeReport{}
	if count == 0 {
		return report
	}
	report.MeanDays = Round1(float64(total) / float64(count))

	stats := make([]domain.OwnerCycleStats, 0, len(order))
	for _, owner := range order {
		a := owners[owner]
		stats = append(stats, domain.OwnerCycleStats{
			Owner:    owner,
			Offers:   a.count,
			MeanDays: Round1(float64(a.totalDays) / float64(a.count)),
			MinDays:  a.minDays,
			MaxDays:  a.maxDays,
		})
	}

	fastest := make([]domain.OwnerCycleStats, len(stats))
	copy(fastest, stats)
	sort.SliceStable(fastest, func(i, j int) bool { return fastest[i].MeanDays < fastest[j].MeanDays })

	slowest := make([]domain.OwnerCycleStats, len(stats))
	copy(slowest, stats)
	sort.SliceStable(slowest, func(i, j int) bool { return slowest[i].MeanDays > slowest[j].MeanDays })

	if len(fastest) > n {
		fastest = fastest[:n]
	}
	if len(slowest) > n {
		slowest = slowest[:n]
	}
	report.Fastest = fastest
	report.Slowest = slowest
	return report
}
