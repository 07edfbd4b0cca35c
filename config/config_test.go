package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTTL)
	assert.Equal(t, "UTC", cfg.Patrol.Timezone)
	assert.Equal(t, "memory", cfg.Notification.StateStore)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, "noop", cfg.PubSub.Provider)
}

func TestConfig_Location(t *testing.T) {
	assert.Equal(t, time.UTC, (&Config{}).Location())
	assert.Equal(t, time.UTC, (&Config{Patrol: &PatrolConfig{Timezone: "Not/AZone"}}).Location())
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte("patrol:\n  timezone: UTC\n  defaultRadiusMeters: 30\n  onTimeSLA: 15m\nnotification:\n  feedLimit: 25\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yamlBody, 0o600))

	t.Setenv("PATROL_DEFAULTRADIUSMETERS", "45")
	t.Setenv("NOTIFICATION_FEEDLIMIT", "10")

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	require.NotNil(t, cfg.Patrol)
	assert.InDelta(t, 45.0, cfg.Patrol.DefaultRadiusMeters, 1e-9)
	assert.Equal(t, 15*time.Minute, cfg.Patrol.OnTimeSLA)
	require.NotNil(t, cfg.Notification)
	assert.Equal(t, 10, cfg.Notification.FeedLimit)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"env": map[string]any{
			"log": map[string]any{"slowQuery": "200ms"},
		},
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "patrol"},
		},
		"patrol": map[string]any{
			"onTimeSLA":         "15m",
			"enforceAssignment": false,
		},
		"notification": map[string]any{"locationFailureWindow": "30m"},
		"storage":      map[string]any{"bucketUrl": "mem://"},
	}

	tests := map[string]string{
		"ENV_LOG_SLOWQUERY":                  "env.log.slowQuery",
		"POSTGRES_MASTER_USERNAME":           "postgres.master.userName",
		"PATROL_ONTIMESLA":                   "patrol.onTimeSLA",
		"PATROL_ENFORCEASSIGNMENT":           "patrol.enforceAssignment",
		"NOTIFICATION_LOCATIONFAILUREWINDOW": "notification.locationFailureWindow",
		"STORAGE_BUCKETURL":                  "storage.bucketUrl",
		"QRCODE__SIZE":                       "qrcode.size",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}
