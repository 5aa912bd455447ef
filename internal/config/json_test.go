package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysPresentKeysOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"database_dsn": "from-json.db",
		"session_validity_duration": "1h"
	}`), 0o600))

	setArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "from-json.db", cfg.DatabaseDSN)
	assert.Equal(t, time.Hour, cfg.SessionValidityDuration)
	// Key absent from the file keeps its default.
	assert.Equal(t, "secretKey", cfg.SecretKey)
}

func TestParseJson_NoConfigFlag_NoChanges(t *testing.T) {
	setArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "birthdaybook.db", cfg.DatabaseDSN)
}

func TestParseJson_MalformedFile_Panics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{oops`), 0o600))

	setArgs(t, "-config", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(cfg) })
}
