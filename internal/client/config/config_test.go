package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"hp"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 120*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "reports", cfg.ReportsDir)
}

func TestLoadConfig_Flags(t *testing.T) {
	withArgs(t, "-a", "http://api.example.org", "-t", "30", "-r", "out")

	cfg := LoadConfig()

	assert.Equal(t, "http://api.example.org", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "out", cfg.ReportsDir)
}

func TestLoadConfig_JsonAndFlagPrecedence(t *testing.T) {
	file := filepath.Join(t.TempDir(), "conf.json")
	body := `{"api_base_url":"http://json.example.org","request_timeout":"45s"}`
	require.NoError(t, os.WriteFile(file, []byte(body), 0o600))

	// Flags override JSON, JSON overrides defaults.
	withArgs(t, "-c", file, "-a", "http://flag.example.org")

	cfg := LoadConfig()

	assert.Equal(t, "http://flag.example.org", cfg.APIBaseURL)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "reports", cfg.ReportsDir)
}
