package domain

import "time"

// ReportStatus discriminates the three terminal report shapes.
type ReportStatus string

const (
	ReportNoData      ReportStatus = "no_data"
	ReportUpdatesOnly ReportStatus = "updates_only"
	ReportSuccess     ReportStatus = "success"
)

// AggregateBucket is the result of filtering the record collection by
// (category, window on a date field). Count is deduplicated by record key
// when the collection carries one; Value is always summed over raw rows.
type AggregateBucket struct {
	Count         int
	Value         float64
	MeanMarginPct float64
}

// WindowResult pairs the won and lost buckets for one trailing window.
type WindowResult struct {
	Window     TimeWindow
	Won        AggregateBucket
	Lost       AggregateBucket
	WinRatePct float64
}

// PhaseGroup is one entry of the pipeline-by-phase breakdown.
type PhaseGroup struct {
	Category StatusCategory
	Count    int
	Value    float64
}

// RankedGroup is one entry of a top-N ranking.
type RankedGroup struct {
	Key   string
	Count int
	Value float64
}

// MarginEntry is one entry of the margin rankings.
type MarginEntry struct {
	Key       string
	MarginPct float64
	Value     float64
}

// OwnerCycleStats summarises receipt-to-delivery cycle times for one owner.
type OwnerCycleStats struct {
	Owner    string
	Offers   int
	MeanDays float64
	MinDays  int
	MaxDays  int
}

// CycleTimeReport ranks owners by mean cycle time.
type CycleTimeReport struct {
	MeanDays float64
	Fastest  []OwnerCycleStats
	Slowest  []OwnerCycleStats
}

// AtRiskOffer is an offer whose hour budget utilization crossed the at-risk
// threshold.
type AtRiskOffer struct {
	Key            string
	Owner          string
	BudgetHours    float64
	ConsumedHours  float64
	UtilizationPct float64
}

// BudgetReport summarises hour budget utilization across the collection.
type BudgetReport struct {
	AllocatedHours float64
	ConsumedHours  float64
	AvailableHours float64
	UtilizationPct float64
	Alert          bool
	AtRisk         []AtRiskOffer
}

// PracticeGroup is the value allocated to one practice. Allocation weights
// records by their practice percentage; weights are not required to sum to
// 100 per record, so the allocated total may exceed or fall short of the
// pipeline total.
type PracticeGroup struct {
	Practice Practice
	Value    float64
	Offers   int
}

// PracticeReport ranks practices by allocated value.
type PracticeReport struct {
	Ranking    []PracticeGroup
	TotalValue float64
}

// ResponseReport summarises which offer owners submitted a weekly update.
type ResponseReport struct {
	RatePct   float64
	Responded int
	Total     int
	Pending   []string
}

// UpcomingOffer is one in-development offer due inside the upcoming window.
type UpcomingOffer struct {
	Key   string
	Owner string
	Due   *time.Time
	Value float64
}

// UpcomingReport covers the forward-looking agenda window.
type UpcomingReport struct {
	Window     TimeWindow
	Count      int
	Value      float64
	Urgent     int
	UrgentKeys []string
	Offers     []UpcomingOffer
}

// DeliveredReport covers deliveries inside the trailing delivery window.
type DeliveredReport struct {
	Window TimeWindow
	Count  int
	Value  float64
}

// StatusCount is one entry of the updates-only status tally.
type StatusCount struct {
	Status string
	Count  int
}

// ConsolidatedReport is the single structured result of one consolidation
// run. All entities are created fresh per invocation and discarded after the
// report is returned; the engine holds no state between runs.
type ConsolidatedReport struct {
	RunID       string
	GeneratedAt time.Time
	Week        string
	Status      ReportStatus
	Message     string

	TotalOffers  int
	TotalUpdates int
	TotalValue   float64

	PipelineByPhase []PhaseGroup
	ActivePipeline  PhaseGroup
	Delivered       DeliveredReport
	Upcoming        UpcomingReport

	Results7d  WindowResult
	Results15d WindowResult
	Results30d WindowResult

	TopMarkets        []RankedGroup
	TopOwnersByValue  []RankedGroup
	TopOwnersByVolume []RankedGroup

	HighestMargins []MarginEntry
	LowestMargins  []MarginEntry

	CycleTime CycleTimeReport
	Budget    BudgetReport
	Practices PracticeReport
	Response  ResponseReport

	StatusTally []StatusCount
}
