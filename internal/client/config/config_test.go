package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api", cfg.APIBaseURL)
	assert.Equal(t, "joytrade.db", cfg.TokenDBPath)
	assert.Equal(t, "joytrade.log", cfg.LogPath)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadJSONOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `{
		"api_base_url": "https://market.campus.edu/api",
		"request_timeout": "30s"
	}`)

	cfg, err := Load([]string{"-c", path})
	require.NoError(t, err)

	assert.Equal(t, "https://market.campus.edu/api", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "joytrade.db", cfg.TokenDBPath, "unset fields keep defaults")
}

func TestLoadFlagsWin(t *testing.T) {
	path := writeConfigFile(t, `{"api_base_url": "https://from-file/api", "token_db_path": "file.db"}`)

	cfg, err := Load([]string{"-c", path, "-a", "https://from-flag/api", "-t", "5"})
	require.NoError(t, err)

	assert.Equal(t, "https://from-flag/api", cfg.APIBaseURL)
	assert.Equal(t, "file.db", cfg.TokenDBPath, "file value survives when flag absent")
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoadLongConfigFlag(t *testing.T) {
	path := writeConfigFile(t, `{"log_path": "custom.log"}`)

	cfg, err := Load([]string{"--config=" + path})
	require.NoError(t, err)

	assert.Equal(t, "custom.log", cfg.LogPath)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load([]string{"-c", filepath.Join(t.TempDir(), "absent.json")})
	assert.Error(t, err)
}

func TestLoadMalformedConfigFile(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	_, err := Load([]string{"-c", path})
	assert.Error(t, err)
}

func TestLoadBadTimeoutString(t *testing.T) {
	path := writeConfigFile(t, `{"request_timeout": "soon"}`)
	_, err := Load([]string{"-c", path})
	assert.Error(t, err)
}

func TestConfigFilePath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short flag", []string{"-c", "a.json"}, "a.json"},
		{"long flag", []string{"-config", "b.json"}, "b.json"},
		{"equals form", []string{"--config=c.json"}, "c.json"},
		{"absent", []string{"-a", "http://x"}, ""},
		{"dangling", []string{"-c"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, configFilePath(tt.args))
		})
	}
}
