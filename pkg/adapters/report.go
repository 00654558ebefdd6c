package adapters

import (
	"time"

	"github.com/de-tools/offer-atlas/pkg/models/api"
	"github.com/de-tools/offer-atlas/pkg/models/domain"
)

// MapReportDomainToApi converts the engine's report into the wire model.
// contacts carries directory resolutions for pending owners; entries without
// a resolution fall back to the raw identifier.
func MapReportDomainToApi(report *domain.ConsolidatedReport, contacts map[string]domain.Contact) api.ConsolidatedReport {
	out := api.ConsolidatedReport{
		RunID:        report.RunID,
		GeneratedAt:  report.GeneratedAt,
		Week:         report.Week,
		Status:       string(report.Status),
		Message:      report.Message,
		TotalOffers:  report.TotalOffers,
		TotalUpdates: report.TotalUpdates,
		TotalValue:   report.TotalValue,
		StatusTally:  mapStatusTally(report.StatusTally),
	}

	if report.Status == domain.ReportNoData {
		return out
	}

	response := mapResponse(report.Response, contacts)
	out.Response = &response

	if report.Status == domain.ReportUpdatesOnly {
		return out
	}

	out.PipelineByPhase = mapPhases(report.PipelineByPhase)
	active := mapPhase(report.ActivePipeline)
	out.ActivePipeline = &active

	delivered := api.DeliveredReport{
		Window: mapWindow(report.Delivered.Window),
		Count:  report.Delivered.Count,
		Value:  report.Delivered.Value,
	}
	out.Delivered = &delivered

	upcoming := mapUpcoming(report.Upcoming)
	out.Upcoming = &upcoming

	r7 := mapWindowResult(report.Results7d)
	r15 := mapWindowResult(report.Results15d)
	r30 := mapWindowResult(report.Results30d)
	out.Results7d = &r7
	out.Results15d = &r15
	out.Results30d = &r30

	out.TopMarkets = mapRanked(report.TopMarkets)
	out.TopOwnersByValue = mapRanked(report.TopOwnersByValue)
	out.TopOwnersByVolume = mapRanked(report.TopOwnersByVolume)
	out.HighestMargins = mapMargins(report.HighestMargins)
	out.LowestMargins = mapMargins(report.LowestMargins)

	cycle := mapCycle(report.CycleTime)
	out.CycleTime = &cycle

	budget := mapBudget(report.Budget)
	out.Budget = &budget

	practices := mapPractices(report.Practices)
	out.Practices = &practices

	return out
}

// MapRecordDomainToApi converts one normalized record into the wire model.
func MapRecordDomainToApi(rec domain.NormalizedRecord) api.NormalizedRecord {
	practices := make(map[string]float64, len(rec.PracticePct))
	for practice, pct := range rec.PracticePct {
		practices[string(practice)] = pct
	}
	return api.NormalizedRecord{
		Key:           rec.Key,
		Owner:         rec.Owner,
		Market:        rec.Market,
		Status:        rec.Status,
		Category:      string(rec.Category),
		Value:         rec.Value,
		MarginPct:     rec.MarginPct,
		DueDate:       mapDate(rec.DueDate),
		UpdatedAt:     mapDate(rec.UpdatedAt),
		ReceivedAt:    mapDate(rec.ReceivedAt),
		DeliveredAt:   mapDate(rec.DeliveredAt),
		BudgetHours:   rec.BudgetHours,
		ConsumedHours: rec.ConsumedHours,
		PracticePct:   practices,
		CycleDays:     rec.CycleDays,
	}
}

func mapDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func mapWindow(w domain.TimeWindow) api.TimeWindow {
	return api.TimeWindow{Start: w.Start, End: w.End, Days: w.Days}
}

func mapBucket(b domain.AggregateBucket) api.AggregateBucket {
	return api.AggregateBucket{Count: b.Count, Value: b.Value, MeanMarginPct: b.MeanMarginPct}
}

func mapWindowResult(r domain.WindowResult) api.WindowResult {
	return api.WindowResult{
		Window:     mapWindow(r.Window),
		Won:        mapBucket(r.Won),
		Lost:       mapBucket(r.Lost),
		WinRatePct: r.WinRatePct,
	}
}

func mapUpcoming(u domain.UpcomingReport) api.UpcomingReport {
	offers := make([]api.UpcomingOffer, 0, len(u.Offers))
	for _, o := range u.Offers {
		offers = append(offers, api.UpcomingOffer{
			Key:   o.Key,
			Owner: o.Owner,
			Due:   o.Due,
			Value: o.Value,
		})
	}
	return api.UpcomingReport{
		Window:     mapWindow(u.Window),
		Count:      u.Count,
		Value:      u.Value,
		Urgent:     u.Urgent,
		UrgentKeys: u.UrgentKeys,
		Offers:     offers,
	}
}

func mapPhase(p domain.PhaseGroup) api.PhaseGroup {
	return api.PhaseGroup{Phase: string(p.Category), Count: p.Count, Value: p.Value}
}

func mapPhases(phases []domain.PhaseGroup) []api.PhaseGroup {
	out := make([]api.PhaseGroup, 0, len(phases))
	for _, p := range phases {
		out = append(out, mapPhase(p))
	}
	return out
}

func mapRanked(groups []domain.RankedGroup) []api.RankedGroup {
	out := make([]api.RankedGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, api.RankedGroup{Key: g.Key, Count: g.Count, Value: g.Value})
	}
	return out
}

func mapMargins(entries []domain.MarginEntry) []api.MarginEntry {
	out := make([]api.MarginEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.MarginEntry{Key: e.Key, MarginPct: e.MarginPct, Value: e.Value})
	}
	return out
}

func mapCycle(c domain.CycleTimeReport) api.CycleTimeReport {
	return api.CycleTimeReport{
		MeanDays: c.MeanDays,
		Fastest:  mapCycleStats(c.Fastest),
		Slowest:  mapCycleStats(c.Slowest),
	}
}

func mapCycleStats(stats []domain.OwnerCycleStats) []api.OwnerCycleStats {
	out := make([]api.OwnerCycleStats, 0, len(stats))
	for _, s := range stats {
		out = append(out, api.OwnerCycleStats{
			Owner:    s.Owner,
			Offers:   s.Offers,
			MeanDays: s.MeanDays,
			MinDays:  s.MinDays,
			MaxDays:  s.MaxDays,
		})
	}
	return out
}

func mapBudget(b domain.BudgetReport) api.BudgetReport {
	atRisk := make([]api.AtRiskOffer, 0, len(b.AtRisk))
	for _, o := range b.AtRisk {
		atRisk = append(atRisk, api.AtRiskOffer{
			Key:            o.Key,
			Owner:          o.Owner,
			BudgetHours:    o.BudgetHours,
			ConsumedHours:  o.ConsumedHours,
			UtilizationPct: o.UtilizationPct,
		})
	}
	return api.BudgetReport{
		AllocatedHours: b.AllocatedHours,
		ConsumedHours:  b.ConsumedHours,
		AvailableHours: b.AvailableHours,
		UtilizationPct: b.UtilizationPct,
		Alert:          b.Alert,
		AtRisk:         atRisk,
	}
}

func mapPractices(p domain.PracticeReport) api.PracticeReport {
	ranking := make([]api.PracticeGroup, 0, len(p.Ranking))
	for _, g := range p.Ranking {
		ranking = append(ranking, api.PracticeGroup{
			Practice: string(g.Practice),
			Value:    g.Value,
			Offers:   g.Offers,
		})
	}
	return api.PracticeReport{Ranking: ranking, TotalValue: p.TotalValue}
}

func mapResponse(r domain.ResponseReport, contacts map[string]domain.Contact) api.ResponseReport {
	pending := make([]api.PendingOwner, 0, len(r.Pending))
	for _, id := range r.Pending {
		owner := api.PendingOwner{ID: id, Name: id}
		if contact, ok := contacts[id]; ok {
			owner.Name = contact.Name
			owner.Mail = contact.Mail
		}
		pending = append(pending, owner)
	}
	return api.ResponseReport{
		RatePct:   r.RatePct,
		Responded: r.Responded,
		Total:     r.Total,
		Pending:   pending,
	}
}

func mapStatusTally(tally []domain.StatusCount) []api.StatusCount {
	out := make([]api.StatusCount, 0, len(tally))
	for _, t := range tally {
		out = append(out, api.StatusCount{Status: t.Status, Count: t.Count})
	}
	return out
}
