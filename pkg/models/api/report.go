package api

import "time"

type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Days  int       `json:"days"`
}

type AggregateBucket struct {
	Count         int     `json:"count"`
	Value         float64 `json:"value"`
	MeanMarginPct float64 `json:"mean_margin_pct,omitempty"`
}

type WindowResult struct {
	Window     TimeWindow      `json:"window"`
	Won        AggregateBucket `json:"won"`
	Lost       AggregateBucket `json:"lost"`
	WinRatePct float64         `json:"win_rate_pct"`
}

type PhaseGroup struct {
	Phase string  `json:"phase"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

type RankedGroup struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

type MarginEntry struct {
	Key       string  `json:"key"`
	MarginPct float64 `json:"margin_pct"`
	Value     float64 `json:"value"`
}

type OwnerCycleStats struct {
	Owner    string  `json:"owner"`
	Offers   int     `json:"offers"`
	MeanDays float64 `json:"mean_days"`
	MinDays  int     `json:"min_days"`
	MaxDays  int     `json:"max_days"`
}

type CycleTimeReport struct {
	MeanDays float64           `json:"mean_days"`
	Fastest  []OwnerCycleStats `json:"fastest"`
	Slowest  []OwnerCycleStats `json:"slowest"`
}

type AtRiskOffer struct {
	Key            string  `json:"key"`
	Owner          string  `json:"owner"`
	BudgetHours    float64 `json:"budget_hours"`
	ConsumedHours  float64 `json:"consumed_hours"`
	UtilizationPct float64 `json:"utilization_pct"`
}

type BudgetReport struct {
	AllocatedHours float64       `json:"allocated_hours"`
	ConsumedHours  float64       `json:"consumed_hours"`
	AvailableHours float64       `json:"available_hours"`
	UtilizationPct float64       `json:"utilization_pct"`
	Alert          bool          `json:"alert"`
	AtRisk         []AtRiskOffer `json:"at_risk"`
}

type PracticeGroup struct {
	Practice string  `json:"practice"`
	Value    float64 `json:"value"`
	Offers   int     `json:"offers"`
}

type PracticeReport struct {
	Ranking    []PracticeGroup `json:"ranking"`
	TotalValue float64         `json:"total_value"`
}

type PendingOwner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Mail string `json:"mail,omitempty"`
}

type ResponseReport struct {
	RatePct   float64        `json:"rate_pct"`
	Responded int            `json:"responded"`
	Total     int            `json:"total"`
	Pending   []PendingOwner `json:"pending"`
}

type UpcomingOffer struct {
	Key   string     `json:"key"`
	Owner string     `json:"owner"`
	Due   *time.Time `json:"due,omitempty"`
	Value float64    `json:"value"`
}

type UpcomingReport struct {
	Window     TimeWindow      `json:"window"`
	Count      int             `json:"count"`
	Value      float64         `json:"value"`
	Urgent     int             `json:"urgent"`
	UrgentKeys []string        `json:"urgent_keys"`
	Offers     []UpcomingOffer `json:"offers"`
}

type DeliveredReport struct {
	Window TimeWindow `json:"window"`
	Count  int        `json:"count"`
	Value  float64    `json:"value"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type ConsolidatedReport struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Week        string    `json:"week"`
	Status      string    `json:"status"`
	Message     string    `json:"message"`

	TotalOffers  int     `json:"total_offers"`
	TotalUpdates int     `json:"total_updates"`
	TotalValue   float64 `json:"total_value"`

	PipelineByPhase []PhaseGroup    `json:"pipeline_by_phase,omitempty"`
	ActivePipeline  *PhaseGroup     `json:"active_pipeline,omitempty"`
	Delivered       *DeliveredReport `json:"delivered,omitempty"`
	Upcoming        *UpcomingReport  `json:"upcoming,omitempty"`

	Results7d  *WindowResult `json:"results_7d,omitempty"`
	Results15d *WindowResult `json:"results_15d,omitempty"`
	Results30d *WindowResult `json:"results_30d,omitempty"`

	TopMarkets        []RankedGroup `json:"top_markets,omitempty"`
	TopOwnersByValue  []RankedGroup `json:"top_owners_by_value,omitempty"`
	TopOwnersByVolume []RankedGroup `json:"top_owners_by_volume,omitempty"`

	HighestMargins []MarginEntry `json:"highest_margins,omitempty"`
	LowestMargins  []MarginEntry `json:"lowest_margins,omitempty"`

	CycleTime *CycleTimeReport `json:"cycle_time,omitempty"`
	Budget    *BudgetReport    `json:"budget,omitempty"`
	Practices *PracticeReport  `json:"practices,omitempty"`
	Response  *ResponseReport  `json:"response,omitempty"`

	StatusTally []StatusCount `json:"status_tally,omitempty"`

	CardHTML string `json:"card_html,omitempty"`
}
