package domain

import "time"

// RawRecord is a single row of an upstream export: field name to an arbitrary
// decoded value. Values may be scalars, nested objects (choice fields) or
// lists of nested objects (multi-select choice fields). The schema is not
// fixed; field names vary by source.
type RawRecord map[string]any

// Practice is one of the fixed delivery practices an offer's value can be
// allocated to.
type Practice string

const (
	PracticeDS     Practice = "DS"
	PracticeDIC    Practice = "DIC"
	PracticeDataAI Practice = "Dados_IA"
	PracticeCyber  Practice = "Cyber"
	PracticeSGE    Practice = "SGE"
	PracticeOther  Practice = "Outros"
)

// Practices returns the fixed practice set in report order.
func Practices() []Practice {
	return []Practice{PracticeDS, PracticeDIC, PracticeDataAI, PracticeCyber, PracticeSGE, PracticeOther}
}

// NormalizedRecord is an offer row after scalar normalization and
// categorization. Numeric fields are always present and default to zero;
// dates and cycle days use nil as the explicit absence marker. The two are
// not interchangeable: a zero value means "parsed to zero or unavailable",
// nil means "no usable date".
type NormalizedRecord struct {
	Key    string
	Owner  string
	Market string
	Status string

	Category StatusCategory

	Value     float64
	MarginPct float64 // 0-100 scale

	DueDate     *time.Time
	UpdatedAt   *time.Time
	ReceivedAt  *time.Time
	DeliveredAt *time.Time

	BudgetHours   float64
	ConsumedHours float64

	PracticePct map[Practice]float64

	// CycleDays is DeliveredAt - ReceivedAt in days, floored at zero.
	// Nil when either date is missing.
	CycleDays *int
}

// UpdateRecord is a weekly status update row reduced to the fields the
// engine consumes.
type UpdateRecord struct {
	Owner  string
	Status string
}

// Contact is the canonical identity a raw owner identifier resolves to
// through the directory collaborator.
type Contact struct {
	ID   string
	Name string
	Mail string
}
