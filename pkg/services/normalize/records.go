package normalize

import (
	"time"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/de-tools/offer-atlas/pkg/services/taxonomy"
)

// NormalizeOffers applies the scalar normalizers across an offer collection
// under a schema resolved once for the batch. Every normalizer is total:
// per-field coercion failures land on type-appropriate defaults and are
// never surfaced.
func NormalizeOffers(records []domain.RawRecord, schema Schema) []domain.NormalizedRecord {
	normalized := make([]domain.NormalizedRecord, 0, len(records))
	for _, raw := range records {
		normalized = append(normalized, normalizeOffer(raw, schema))
	}
	return normalized
}

func normalizeOffer(raw domain.RawRecord, schema Schema) domain.NormalizedRecord {
	rec := domain.NormalizedRecord{
		Key:           choiceField(raw, schema.Key),
		Owner:         choiceField(raw, schema.Owner),
		Market:        choiceField(raw, schema.Market),
		Status:        choiceField(raw, schema.Status),
		Value:         numberField(raw, schema.Value),
		MarginPct:     numberField(raw, schema.Margin),
		DueDate:       dateField(raw, schema.Due),
		UpdatedAt:     dateField(raw, schema.Updated),
		ReceivedAt:    dateField(raw, schema.Received),
		DeliveredAt:   dateField(raw, schema.Delivered),
		BudgetHours:   numberField(raw, schema.Budget),
		ConsumedHours: numberField(raw, schema.Consumed),
		PracticePct:   make(map[domain.Practice]float64, len(schema.Practice)),
	}

	for practice, column := range schema.Practice {
		rec.PracticePct[practice] = numberField(raw, column)
	}

	rec.Category = taxonomy.Categorize(rec.Status)
	rec.CycleDays = cycleDays(rec.ReceivedAt, rec.DeliveredAt)

	return rec
}

// NormalizeUpdates reduces the updates collection to the owner and status
// fields the engine consumes.
func NormalizeUpdates(records []domain.RawRecord, schema UpdateSchema) []domain.UpdateRecord {
	normalized := make([]domain.UpdateRecord, 0, len(records))
	for _, raw := range records {
		normalized = append(normalized, domain.UpdateRecord{
			Owner:  choiceField(raw, schema.Owner),
			Status: choiceField(raw, schema.Status),
		})
	}
	return normalized
}

func choiceField(raw domain.RawRecord, column string) string {
	if column == "" {
		return ""
	}
	return ExtractChoiceValue(raw[column])
}

func numberField(raw domain.RawRecord, column string) float64 {
	if column == "" {
		return 0.0
	}
	return ParseNumber(raw[column], 0.0)
}

func dateField(raw domain.RawRecord, column string) *time.Time {
	if column == "" {
		return nil
	}
	return ParseDate(raw[column])
}

// cycleDays is delivered - received in whole days, floored at zero. Nil when
// either endpoint is missing.
func cycleDays(received, delivered *time.Time) *int {
	if received == nil || delivered == nil {
		return nil
	}
	days := int(delivered.Sub(*received).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &days
}
