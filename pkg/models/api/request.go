package api

// ConsolidateRequest is the POST body of the consolidate endpoint: the two
// already-deserialized record collections, schema-less by design.
type ConsolidateRequest struct {
	Offers  []map[string]any `json:"offers"`
	Updates []map[string]any `json:"updates"`
}

// NormalizeRequest is the POST body of the normalization preview endpoint.
type NormalizeRequest struct {
	Offers []map[string]any `json:"offers" validate:"required"`
}

// NormalizedRecord is the wire form of one normalized offer row.
type NormalizedRecord struct {
	Key           string             `json:"key"`
	Owner         string             `json:"owner"`
	Market        string             `json:"market"`
	Status        string             `json:"status"`
	Category      string             `json:"category"`
	Value         float64            `json:"value"`
	MarginPct     float64            `json:"margin_pct"`
	DueDate       *string            `json:"due_date"`
	UpdatedAt     *string            `json:"updated_at"`
	ReceivedAt    *string            `json:"received_at"`
	DeliveredAt   *string            `json:"delivered_at"`
	BudgetHours   float64            `json:"budget_hours"`
	ConsumedHours float64            `json:"consumed_hours"`
	PracticePct   map[string]float64 `json:"practice_pct"`
	CycleDays     *int               `json:"cycle_days"`
}

// ErrorResponse is the body returned for request-level failures.
type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}
