// Package consolidate assembles the weekly consolidated report from the raw
// offer and update collections. The builder is a pure computation over its
// inputs plus an injected reference time: it performs no I/O, holds no locks
// and keeps no state between invocations, so concurrent runs are independent
// by construction.
package consolidate

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/de-tools/offer-atlas/pkg/services/aggregate"
	"github.com/de-tools/offer-atlas/pkg/services/normalize"
)

// Controller builds consolidated reports.
type Controller struct {
	settings Settings
	now      func() time.Time
	newRunID func() string
}

// Option customises a Controller; used by tests to pin the clock and run id.
type Option func(*Controller)

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func WithRunID(newRunID func() string) Option {
	return func(c *Controller) { c.newRunID = newRunID }
}

func NewController(settings Settings, opts ...Option) *Controller {
	c := &Controller{
		settings: settings,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Consolidate runs the full normalization and aggregation pass and returns
// one of three terminal report shapes: no_data when both collections are
// empty, updates_only when only updates arrived, and success otherwise.
// Every branch produces a report; per-field coercion failures never surface.
func (c *Controller) Consolidate(
	ctx context.Context,
	offers, updates []domain.RawRecord,
) (*domain.ConsolidatedReport, error) {
	logger := zerolog.Ctx(ctx)

	now := c.now()
	report := &domain.ConsolidatedReport{
		RunID:        c.newRunID(),
		GeneratedAt:  now,
		Week:         isoWeek(now),
		TotalOffers:  len(offers),
		TotalUpdates: len(updates),
	}

	switch {
	case len(offers) == 0 && len(updates) == 0:
		report.Status = domain.ReportNoData
		report.Message = "no data received (offers and updates are empty)"
		logger.Info().Str("run_id", report.RunID).Msg("consolidation: no data received")
		return report, nil

	case len(offers) == 0:
		c.buildUpdatesOnly(report, updates)
		logger.Info().
			Str("run_id", report.RunID).
			Int("updates", len(updates)).
			Msg("consolidation: updates only")
		return report, nil
	}

	c.buildFull(report, offers, updates, now)
	logger.Info().
		Str("run_id", report.RunID).
		Int("offers", len(offers)).
		Int("updates", len(updates)).
		Msg("consolidation complete")
	return report, nil
}

// buildUpdatesOnly produces the degenerate report computed from the updates
// collection alone. Everyone who submitted an update is considered to have
// responded, so the response rate is 100% by definition.
func (c *Controller) buildUpdatesOnly(report *domain.ConsolidatedReport, updates []domain.RawRecord) {
	schema := normalize.ResolveUpdateSchema(updates)
	records := normalize.NormalizeUpdates(updates, schema)

	var owners []string
	seen := make(map[string]struct{})
	for _, rec := range records {
		if rec.Owner == "" {
			continue
		}
		if _, ok := seen[rec.Owner]; !ok {
			seen[rec.Owner] = struct{}{}
			owners = append(owners, rec.Owner)
		}
	}

	report.Status = domain.ReportUpdatesOnly
	report.Message = fmt.Sprintf("processed %d updates (no pipeline offers)", len(updates))
	report.Response = domain.ResponseReport{
		RatePct:   100.0,
		Responded: len(owners),
		Total:     len(owners),
	}
	report.StatusTally = tallyStatuses(records)
}

func (c *Controller) buildFull(
	report *domain.ConsolidatedReport,
	offers, updates []domain.RawRecord,
	now time.Time,
) {
	schema := normalize.ResolveSchema(offers)
	records := normalize.NormalizeOffers(offers, schema)
	dedup := schema.Key != ""

	report.Status = domain.ReportSuccess
	report.Message = fmt.Sprintf("consolidation complete: %d offers, %d updates", len(offers), len(updates))

	for _, rec := range records {
		report.TotalValue += rec.Value
	}

	for _, category := range domain.Categories() {
		report.PipelineByPhase = append(report.PipelineByPhase, aggregate.CollectPhase(records, category))
	}
	report.ActivePipeline = aggregate.CollectPhase(records, domain.CategoryInDevelopment)

	deliveredWindow := domain.TrailingWindow(now, c.settings.DeliveredWindowDays)
	delivered := aggregate.Collect(records, aggregate.Filter{
		Category: domain.CategoryDelivered,
		Window:   deliveredWindow,
		Field:    aggregate.DateUpdated,
	})
	report.Delivered = domain.DeliveredReport{
		Window: deliveredWindow,
		Count:  delivered.Count,
		Value:  delivered.Value,
	}

	report.Upcoming = c.buildUpcoming(records, now)

	report.Results7d = c.windowResult(records, now, 7, dedup)
	report.Results15d = c.windowResult(records, now, 15, dedup)
	report.Results30d = c.windowResult(records, now, 30, dedup)

	n := c.settings.TopN
	report.TopMarkets = aggregate.TopN(records, func(r domain.NormalizedRecord) string { return r.Market }, n, aggregate.BySum)
	report.TopOwnersByValue = aggregate.TopN(records, func(r domain.NormalizedRecord) string { return r.Owner }, n, aggregate.BySum)

	var active []domain.NormalizedRecord
	for _, rec := range records {
		if rec.Category == domain.CategoryInDevelopment || rec.Category == domain.CategoryDelivered {
			active = append(active, rec)
		}
	}
	report.TopOwnersByVolume = aggregate.TopN(active, func(r domain.NormalizedRecord) string { return r.Owner }, n, aggregate.ByCount)

	report.HighestMargins, report.LowestMargins = aggregate.TopMargins(records, n)
	report.CycleTime = aggregate.CycleReport(records, n)
	report.Budget = c.buildBudget(records)
	report.Practices = c.buildPractices(records)
	report.Response = c.buildResponse(records, updates)
}

func (c *Controller) windowResult(records []domain.NormalizedRecord, now time.Time, days int, dedup bool) domain.WindowResult {
	window := domain.TrailingWindow(now, days)
	won := aggregate.Collect(records, aggregate.Filter{
		Category:   domain.CategoryWon,
		Window:     window,
		Field:      aggregate.DateUpdated,
		DedupByKey: dedup,
	})
	lost := aggregate.Collect(records, aggregate.Filter{
		Category:   domain.CategoryLost,
		Window:     window,
		Field:      aggregate.DateUpdated,
		DedupByKey: dedup,
	})
	return domain.WindowResult{
		Window:     window,
		Won:        won,
		Lost:       lost,
		WinRatePct: aggregate.WinRate(won, lost),
	}
}

func (c *Controller) buildUpcoming(records []domain.NormalizedRecord, now time.Time) domain.UpcomingReport {
	window := domain.ForwardWindow(now, c.settings.UpcomingDays)
	urgentWindow := domain.ForwardWindow(now, c.settings.UrgentDays)

	upcoming := domain.UpcomingReport{Window: window}
	for _, rec := range records {
		if rec.Category != domain.CategoryInDevelopment {
			continue
		}
		if urgentWindow.Contains(rec.DueDate) {
			upcoming.Urgent++
			if rec.Key != "" && len(upcoming.UrgentKeys) < c.settings.UrgentKeysLimit {
				upcoming.UrgentKeys = append(upcoming.UrgentKeys, rec.Key)
			}
		}
		if !window.Contains(rec.DueDate) {
			continue
		}
		upcoming.Count++
		upcoming.Value += rec.Value
		if len(upcoming.Offers) < c.settings.UpcomingOffersLimit {
			upcoming.Offers = append(upcoming.Offers, domain.UpcomingOffer{
				Key:   rec.Key,
				Owner: rec.Owner,
				Due:   rec.DueDate,
				Value: rec.Value,
			})
		}
	}
	return upcoming
}

func (c *Controller) buildBudget(records []domain.NormalizedRecord) domain.BudgetReport {
	budget := domain.BudgetReport{}
	var atRisk []domain.AtRiskOffer

	for _, rec := range records {
		budget.AllocatedHours += rec.BudgetHours
		budget.ConsumedHours += rec.ConsumedHours

		if rec.BudgetHours <= 0 {
			continue
		}
		utilization := rec.ConsumedHours / rec.BudgetHours * 100
		if utilization > c.settings.AtRiskUtilizationPct {
			atRisk = append(atRisk, domain.AtRiskOffer{
				Key:            rec.Key,
				Owner:          rec.Owner,
				BudgetHours:    rec.BudgetHours,
				ConsumedHours:  rec.ConsumedHours,
				UtilizationPct: aggregate.Round1(utilization),
			})
		}
	}

	budget.AvailableHours = budget.AllocatedHours - budget.ConsumedHours
	if budget.AllocatedHours > 0 {
		budget.UtilizationPct = aggregate.Round1(budget.ConsumedHours / budget.AllocatedHours * 100)
	}
	budget.Alert = budget.UtilizationPct > c.settings.AtRiskUtilizationPct

	sort.SliceStable(atRisk, func(i, j int) bool {
		return atRisk[i].UtilizationPct > atRisk[j].UtilizationPct
	})
	if len(atRisk) > c.settings.AtRiskLimit {
		atRisk = atRisk[:c.settings.AtRiskLimit]
	}
	budget.AtRisk = atRisk
	return budget
}

// buildPractices allocates pipeline value across practices by each record's
// percentage weights. Weights need not sum to 100 per record; the allocated
// total may therefore diverge from the pipeline total.
func (c *Controller) buildPractices(records []domain.NormalizedRecord) domain.PracticeReport {
	practices := domain.Practices()
	values := make(map[domain.Practice]float64, len(practices))
	counts := make(map[domain.Practice]int, len(practices))

	for _, rec := range records {
		for practice, pct := range rec.PracticePct {
			values[practice] += rec.Value * pct / 100
			if pct > 0 {
				counts[practice]++
			}
		}
	}

	report := domain.PracticeReport{}
	ranking := make([]domain.PracticeGroup, 0, len(practices))
	for _, practice := range practices {
		ranking = append(ranking, domain.PracticeGroup{
			Practice: practice,
			Value:    values[practice],
			Offers:   counts[practice],
		})
		report.TotalValue += values[practice]
	}

	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].Value > ranking[j].Value })
	if len(ranking) > c.settings.TopN {
		ranking = ranking[:c.settings.TopN]
	}
	report.Ranking = ranking
	return report
}

// buildResponse compares the distinct owners in the offer collection against
// those who submitted an update. Pending owners keep the order they were
// first encountered in the offers, capped by settings.
func (c *Controller) buildResponse(records []domain.NormalizedRecord, updates []domain.RawRecord) domain.ResponseReport {
	var owners []string
	seen := make(map[string]struct{})
	for _, rec := range records {
		if rec.Owner == "" {
			continue
		}
		if _, ok := seen[rec.Owner]; !ok {
			seen[rec.Owner] = struct{}{}
			owners = append(owners, rec.Owner)
		}
	}

	responded := make(map[string]struct{})
	if len(updates) > 0 {
		schema := normalize.ResolveUpdateSchema(updates)
		for _, rec := range normalize.NormalizeUpdates(updates, schema) {
			if rec.Owner != "" {
				responded[rec.Owner] = struct{}{}
			}
		}
	}

	report := domain.ResponseReport{Total: len(owners)}
	for _, owner := range owners {
		if _, ok := responded[owner]; ok {
			report.Responded++
		} else if len(report.Pending) < c.settings.PendingOwnersLimit {
			report.Pending = append(report.Pending, owner)
		}
	}
	if report.Total > 0 {
		report.RatePct = aggregate.Round1(float64(report.Responded) / float64(report.Total) * 100)
	}
	return report
}

// tallyStatuses counts update rows per status value, ordered by descending
// count with first-encounter order breaking ties.
func tallyStatuses(records []domain.UpdateRecord) []domain.StatusCount {
	var order []string
	counts := make(map[string]int)
	for _, rec := range records {
		if rec.Status == "" {
			continue
		}
		if _, ok := counts[rec.Status]; !ok {
			order = append(order, rec.Status)
		}
		counts[rec.Status]++
	}

	tally := make([]domain.StatusCount, 0, len(order))
	for _, status := range order {
		tally = append(tally, domain.StatusCount{Status: status, Count: counts[status]})
	}
	sort.SliceStable(tally, func(i, j int) bool { return tally[i].Count > tally[j].Count })
	return tally
}

func isoWeek(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
