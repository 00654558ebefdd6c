package normalize

import (
	"testing"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeOffers(t *testing.T) {
	records := []domain.RawRecord{
		{
			"JiraKey":            "OFF-1",
			"Status":             map[string]any{"Value": "Won"},
			"ValorBRL":           "R$ 10.000,50",
			"Assignee":           map[string]any{"Title": "Maria"},
			"Mercado":            "Banking",
			"Margem":             "22,5",
			"DataRecebimentoRFP": "2025-01-01",
			"DataEntregaKAM":     "2025-01-06",
			"%Cyber":             "60",
			"%DS":                "40",
		},
		{
			"JiraKey":  "OFF-2",
			"Status":   "On Offer",
			"ValorBRL": nil,
			"Margem":   "N/A",
		},
	}

	schema := ResolveSchema(records)
	normalized := NormalizeOffers(records, schema)
	require.Len(t, normalized, 2)

	first := normalized[0]
	assert.Equal(t, "OFF-1", first.Key)
	assert.Equal(t, "Won", first.Status)
	assert.Equal(t, domain.CategoryWon, first.Category)
	assert.InDelta(t, 10000.50, first.Value, 1e-9)
	assert.Equal(t, "Maria", first.Owner)
	assert.Equal(t, "Banking", first.Market)
	assert.InDelta(t, 22.5, first.MarginPct, 1e-9)
	assert.InDelta(t, 60, first.PracticePct[domain.PracticeCyber], 1e-9)
	assert.InDelta(t, 40, first.PracticePct[domain.PracticeDS], 1e-9)
	require.NotNil(t, first.CycleDays)
	assert.Equal(t, 5, *first.CycleDays)

	second := normalized[1]
	assert.Equal(t, "OFF-2", second.Key)
	assert.Equal(t, domain.CategoryInDevelopment, second.Category)
	assert.Equal(t, 0.0, second.Value)
	assert.Equal(t, 0.0, second.MarginPct)
	assert.Nil(t, second.CycleDays)
	assert.Equal(t, "", second.Owner)
}

func TestNormalizeOffersNegativeCycleFloored(t *testing.T) {
	records := []domain.RawRecord{
		{
			"JiraKey":            "OFF-3",
			"Status":             "Delivered",
			"DataRecebimentoRFP": "2025-02-10",
			"DataEntregaKAM":     "2025-02-01",
		},
	}
	normalized := NormalizeOffers(records, ResolveSchema(records))
	require.Len(t, normalized, 1)
	require.NotNil(t, normalized[0].CycleDays)
	assert.Equal(t, 0, *normalized[0].CycleDays)
}

func TestNormalizeUpdates(t *testing.T) {
	records := []domain.RawRecord{
		{"NomeArquiteto": map[string]any{"Value": "Maria"}, "RAGStatus": "  green "},
		{"NomeArquiteto": nil, "RAGStatus": "amber"},
	}
	schema := ResolveUpdateSchema(records)
	normalized := NormalizeUpdates(records, schema)
	require.Len(t, normalized, 2)

	assert.Equal(t, domain.UpdateRecord{Owner: "Maria", Status: "green"}, normalized[0])
	assert.Equal(t, domain.UpdateRecord{Owner: "", Status: "amber"}, normalized[1])
}
