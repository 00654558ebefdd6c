package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProfiles = `
[default]
tenant_id = tenant-1
client_id = client-1
client_secret = secret-1

[staging]
tenant_id = tenant-2
client_id = client-2
client_secret = secret-2

[broken]
tenant_id = tenant-3
`

func newTestRegistry(t *testing.T) Registry {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.ini")
	require.NoError(t, os.WriteFile(path, []byte(testProfiles), 0o600))

	registry, err := NewRegistry(path)
	require.NoError(t, err)
	return registry
}

func TestGetProfiles(t *testing.T) {
	registry := newTestRegistry(t)

	profiles, err := registry.GetProfiles(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"default", "staging", "broken"}, profiles)
}

func TestGetProfile(t *testing.T) {
	registry := newTestRegistry(t)
	ctx := context.Background()

	t.Run("complete profile", func(t *testing.T) {
		profile, err := registry.GetProfile(ctx, "staging")
		require.NoError(t, err)
		assert.Equal(t, "staging", profile.Name)
		assert.Equal(t, "tenant-2", profile.TenantID)
		assert.Equal(t, "client-2", profile.ClientID)
		assert.Equal(t, "secret-2", profile.ClientSecret)
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := registry.GetProfile(ctx, "broken")
		assert.ErrorContains(t, err, "missing credentials")
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := registry.GetProfile(ctx, "nope")
		assert.Error(t, err)
	})
}

func TestNewRegistryMissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}
