package aggregate

import (
	"testing"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownerOf(rec domain.NormalizedRecord) string { return rec.Owner }

func TestTopN(t *testing.T) {
	records := []domain.NormalizedRecord{
		{Owner: "ana", Value: 100},
		{Owner: "bruno", Value: 500},
		{Owner: "ana", Value: 300},
		{Owner: "carla", Value: 400},
		{Owner: "", Value: 999},
	}

	t.Run("by sum", func(t *testing.T) {
		ranked := TopN(records, ownerOf, 2, BySum)
		require.Len(t, ranked, 2)
		assert.Equal(t, "bruno", ranked[0].Key)
		assert.InDelta(t, 500, ranked[0].Value, 1e-9)
		assert.Equal(t, "ana", ranked[1].Key)
		assert.InDelta(t, 400, ranked[1].Value, 1e-9)
	})

	t.Run("by count", func(t *testing.T) {
		ranked := TopN(records, ownerOf, 3, ByCount)
		require.Len(t, ranked, 3)
		assert.Equal(t, "ana", ranked[0].Key)
		assert.Equal(t, 2, ranked[0].Count)
	})

	t.Run("ties keep first-encounter order", func(t *testing.T) {
		tied := []domain.NormalizedRecord{
			{Owner: "zoe", Value: 100},
			{Owner: "alba", Value: 100},
		}
		ranked := TopN(tied, ownerOf, 5, BySum)
		require.Len(t, ranked, 2)
		assert.Equal(t, "zoe", ranked[0].Key)
		assert.Equal(t, "alba", ranked[1].Key)
	})

	t.Run("empty keys are skipped", func(t *testing.T) {
		ranked := TopN(records, ownerOf, 10, BySum)
		for _, g := range ranked {
			assert.NotEmpty(t, g.Key)
		}
	})

	t.Run("empty collection", func(t *testing.T) {
		assert.Empty(t, TopN(nil, ownerOf, 3, BySum))
	})
}

func TestTopMargins(t *testing.T) {
	records := []domain.NormalizedRecord{
		{Key: "OFF-1", MarginPct: 35.25, Value: 100},
		{Key: "OFF-2", MarginPct: 10, Value: 200},
		{Key: "OFF-3", MarginPct: 0, Value: 300},
		{Key: "OFF-4", MarginPct: -5, Value: 400},
		{Key: "OFF-5", MarginPct: 22, Value: 500},
	}

	highest, lowest := TopMargins(records, 2)

	require.Len(t, highest, 2)
	assert.Equal(t, "OFF-1", highest[0].Key)
	assert.InDelta(t, 35.3, highest[0].MarginPct, 1e-9)
	assert.Equal(t, "OFF-5", highest[1].Key)

	require.Len(t, lowest, 2)
	assert.Equal(t, "OFF-2", lowest[0].Key)
	assert.Equal(t, "OFF-5", lowest[1].Key)
}

func TestTopMarginsNonePositive(t *testing.T) {
	records := []domain.NormalizedRecord{
		{Key: "OFF-1", MarginPct: 0},
		{Key: "OFF-2", MarginPct: -10},
	}
	highest, lowest := TopMargins(records, 3)
	assert.Nil(t, highest)
	assert.Nil(t, lowest)
}
