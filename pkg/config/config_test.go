package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// clearEnv unsets keys for the test and restores them afterwards. Values a
// dotenv file loads are not covered by t.Setenv.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		prev, had := os.LookupEnv(key)
		require.NoError(t, os.Unsetenv(key))

		t.Cleanup(func() {
			if had {
				_ = os.Setenv(key, prev)
				return
			}

			_ = os.Unsetenv(key)
		})
	}
}

func TestLoadAndValidate_JSON(t *testing.T) {
	path := writeFile(t, "afkbot.json", `{
		"endpoint": {"host": "play.example.net", "port": 19133, "username": "Idler"},
		"probe": {"timeout": "2s"},
		"watchdog": {"interval": 60000000000},
		"alerts": {"throttle": "30m"}
	}`)

	var cfg AgentConfig
	require.NoError(t, LoadAndValidate(path, &cfg))

	assert.Equal(t, "play.example.net", cfg.Endpoint.Host)
	assert.Equal(t, 19133, cfg.Endpoint.Port)
	assert.Equal(t, "Idler", cfg.Endpoint.Username)
	assert.Equal(t, 2*time.Second, cfg.Probe.Timeout.Std())
	assert.Equal(t, time.Minute, cfg.Watchdog.Interval.Std())
	assert.Equal(t, 30*time.Minute, cfg.Alerts.Throttle.Std())

	// untouched defaults survive
	assert.Equal(t, ProbeModeRakNet, cfg.Probe.Mode)
	assert.Equal(t, 45*time.Second, cfg.KeepAlive.MinInterval.Std())
	assert.Equal(t, ":3000", cfg.Dashboard.Addr())
}

func TestLoadAndValidate_YAML(t *testing.T) {
	path := writeFile(t, "afkbot.yaml", `
endpoint:
  host: 10.0.0.5
probe:
  mode: icmp
  timeout: 1500ms
keep_alive:
  min_interval: 10s
  max_interval: 20s
dashboard:
  listen_addr: "127.0.0.1:8080"
`)

	var cfg AgentConfig
	require.NoError(t, LoadAndValidate(path, &cfg))

	assert.Equal(t, "10.0.0.5", cfg.Endpoint.Host)
	assert.Equal(t, 19132, cfg.Endpoint.Port)
	assert.Equal(t, ProbeModeICMP, cfg.Probe.Mode)
	assert.Equal(t, 1500*time.Millisecond, cfg.Probe.Timeout.Std())
	assert.Equal(t, 20*time.Second, cfg.KeepAlive.MaxInterval.Std())
	assert.Equal(t, "127.0.0.1:8080", cfg.Dashboard.Addr())
}

func TestLoadAndValidate_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "afkbot.json", `{"endpoint": {"host": "from-file"}}`)
	envFile := writeFile(t, "afkbot.env", "TELEGRAM_CHAT_ID=42\n")
	clearEnv(t, "TELEGRAM_CHAT_ID")

	// nested keys carry the section prefix, tagged fields also match their bare name
	t.Setenv("AFKBOT_ENDPOINT_SERVER_HOST", "from-env")
	t.Setenv("AFKBOT_DASHBOARD_PORT", "8123")
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("WATCHDOG_INTERVAL", "90s")

	var cfg AgentConfig
	require.NoError(t, LoadAndValidate(path, &cfg, WithEnv("AFKBOT", envFile)))

	assert.Equal(t, "from-env", cfg.Endpoint.Host)
	assert.True(t, cfg.Alerts.Telegram.Enabled())
	assert.Equal(t, "42", cfg.Alerts.Telegram.ChatID)
	assert.Equal(t, ":8123", cfg.Dashboard.Addr())
	assert.Equal(t, 90*time.Second, cfg.Watchdog.Interval.Std())
}

func TestLoadAndValidate_DotenvValuesRestored(t *testing.T) {
	before, hadBefore := os.LookupEnv("TELEGRAM_CHAT_ID")

	t.Run("load", func(t *testing.T) {
		envFile := writeFile(t, "afkbot.env", "TELEGRAM_CHAT_ID=7\nTELEGRAM_TOKEN=token\n")
		clearEnv(t, "TELEGRAM_CHAT_ID", "TELEGRAM_TOKEN")
		t.Setenv("AFKBOT_ENDPOINT_SERVER_HOST", "example.org")

		var cfg AgentConfig
		require.NoError(t, LoadAndValidate("", &cfg, WithEnv("AFKBOT", envFile)))
		assert.Equal(t, "7", cfg.Alerts.Telegram.ChatID)
	})

	after, hadAfter := os.LookupEnv("TELEGRAM_CHAT_ID")
	assert.Equal(t, hadBefore, hadAfter)
	assert.Equal(t, before, after)
}

func TestLoadAndValidate_MissingEnvFileIgnored(t *testing.T) {
	t.Setenv("AFKBOT_ENDPOINT_SERVER_HOST", "example.org")

	var cfg AgentConfig
	require.NoError(t, LoadAndValidate("", &cfg, WithEnv("AFKBOT", filepath.Join(t.TempDir(), "nope.env"))))
	assert.Equal(t, "example.org", cfg.Endpoint.Host)
}

func TestLoadFile_Errors(t *testing.T) {
	var cfg AgentConfig

	err := LoadFile(filepath.Join(t.TempDir(), "missing.json"), &cfg)
	assert.ErrorContains(t, err, "failed to read file")

	err = LoadFile(writeFile(t, "bad.json", `{"endpoint":`), &cfg)
	assert.ErrorContains(t, err, "failed to unmarshal JSON")

	err = LoadFile(writeFile(t, "bad.json", `{"probe":{"timeout":true}}`), &cfg)
	assert.ErrorIs(t, err, errInvalidDuration)
}

func TestAgentConfig_Validate(t *testing.T) {
	valid := func() AgentConfig {
		var c AgentConfig

		c.SetDefaults()
		c.Endpoint.Host = "play.example.net"

		return c
	}

	tests := []struct {
		name    string
		mutate  func(*AgentConfig)
		wantErr error
	}{
		{"valid", func(*AgentConfig) {}, nil},
		{"missing host", func(c *AgentConfig) { c.Endpoint.Host = "" }, errMissingHost},
		{"port zero", func(c *AgentConfig) { c.Endpoint.Port = 0 }, errInvalidPort},
		{"port too large", func(c *AgentConfig) { c.Endpoint.Port = 70000 }, errInvalidPort},
		{"bad mode", func(c *AgentConfig) { c.Probe.Mode = "tcp" }, errInvalidProbeMode},
		{"zero timeout", func(c *AgentConfig) { c.Probe.Timeout = 0 }, errInvalidTimeout},
		{
			"interval shorter than timeout",
			func(c *AgentConfig) { c.Watchdog.Interval = Duration(time.Second) },
			errIntervalTooShort,
		},
		{
			"inverted keep-alive window",
			func(c *AgentConfig) { c.KeepAlive.MinInterval = Duration(2 * time.Minute) },
			errInvalidKeepAlive,
		},
		{"zero throttle", func(c *AgentConfig) { c.Alerts.Throttle = 0 }, errInvalidThrottle},
		{"token without chat", func(c *AgentConfig) { c.Alerts.Telegram.Token = "t" }, errPartialTelegram},
		{"no data dir", func(c *AgentConfig) { c.DataDir = "" }, errMissingDataDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDashboardConfig_Addr(t *testing.T) {
	assert.Equal(t, ":3000", DashboardConfig{ListenAddr: ":3000"}.Addr())
	assert.Equal(t, "0.0.0.0:8080", DashboardConfig{ListenAddr: "0.0.0.0:3000", Port: 8080}.Addr())
	assert.Equal(t, ":8080", DashboardConfig{Port: 8080}.Addr())
}
