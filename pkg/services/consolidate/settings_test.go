package consolidate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSettings(t *testing.T) {
	t.Run("overlays defaults", func(t *testing.T) {
		path := writeSettingsFile(t, "top_n: 3\nat_risk_utilization_pct: 90\n")

		settings, err := LoadSettings(path)
		require.NoError(t, err)

		assert.Equal(t, 3, settings.TopN)
		assert.InDelta(t, 90, settings.AtRiskUtilizationPct, 1e-9)
		// Unset keys keep their defaults.
		assert.Equal(t, 7, settings.UpcomingDays)
		assert.Equal(t, 20, settings.PendingOwnersLimit)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		path := writeSettingsFile(t, "top_n: 0\n")

		_, err := LoadSettings(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
