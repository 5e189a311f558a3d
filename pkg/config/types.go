package config

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/alerts"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/logger"
	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
	"gopkg.in/yaml.v3"
)

type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.Decode(value)
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var ns int64
		if err := node.Decode(&ns); err != nil {
			return err
		}

		*d = Duration(ns)

		return nil
	}

	return d.Decode(node.Value)
}

// Decode implements envconfig.Decoder.
func (d *Duration) Decode(value string) error {
	dur, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidDuration, err)
	}

	*d = Duration(dur)

	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type ProbeConfig struct {
	Mode    string   `json:"mode" yaml:"mode" envconfig:"PROBE_MODE"` // raknet or icmp
	Timeout Duration `json:"timeout" yaml:"timeout" envconfig:"PROBE_TIMEOUT"`
}

type WatchdogConfig struct {
	Interval Duration `json:"interval" yaml:"interval" envconfig:"WATCHDOG_INTERVAL"`
}

type KeepAliveConfig struct {
	MinInterval Duration `json:"min_interval" yaml:"min_interval" envconfig:"KEEPALIVE_MIN"`
	MaxInterval Duration `json:"max_interval" yaml:"max_interval" envconfig:"KEEPALIVE_MAX"`
}

type TelegramConfig struct {
	Token   string `json:"token,omitempty" yaml:"token,omitempty" envconfig:"TELEGRAM_TOKEN"`
	ChatID  string `json:"chat_id,omitempty" yaml:"chat_id,omitempty" envconfig:"TELEGRAM_CHAT_ID"`
	APIBase string `json:"api_base,omitempty" yaml:"api_base,omitempty" envconfig:"TELEGRAM_API_BASE"`
}

// Enabled reports whether both the bot token and chat are configured.
func (t TelegramConfig) Enabled() bool {
	return t.Token != "" && t.ChatID != ""
}

type DiscordConfig struct {
	URL string `json:"url,omitempty" yaml:"url,omitempty" envconfig:"DISCORD_WEBHOOK_URL"`
}

type AlertsConfig struct {
	Throttle Duration               `json:"throttle" yaml:"throttle" envconfig:"ALERT_THROTTLE"`
	Telegram TelegramConfig         `json:"telegram" yaml:"telegram"`
	Discord  DiscordConfig          `json:"discord" yaml:"discord"`
	Webhooks []alerts.WebhookConfig `json:"webhooks,omitempty" yaml:"webhooks,omitempty" ignored:"true"`
}

type DashboardConfig struct {
	ListenAddr        string  `json:"listen_addr" yaml:"listen_addr" envconfig:"LISTEN_ADDR"`
	Port              int     `json:"port,omitempty" yaml:"port,omitempty" envconfig:"PORT"`
	ChatLogSize       int     `json:"chat_log_size" yaml:"chat_log_size"`
	CommandsPerSecond float64 `json:"commands_per_second" yaml:"commands_per_second"`
}

// Addr is the address the dashboard listens on. A non-zero Port replaces the
// port part of ListenAddr.
func (d DashboardConfig) Addr() string {
	if d.Port <= 0 {
		return d.ListenAddr
	}

	host, _, err := net.SplitHostPort(d.ListenAddr)
	if err != nil {
		host = ""
	}

	return net.JoinHostPort(host, strconv.Itoa(d.Port))
}

type HealthConfig struct {
	ListenAddr  string `json:"listen_addr" yaml:"listen_addr" envconfig:"HEALTH_ADDR"`
	ServiceName string `json:"service_name" yaml:"service_name"`
}

// AgentConfig is the configuration document of the afkbot binary.
type AgentConfig struct {
	Endpoint    models.Endpoint      `json:"endpoint" yaml:"endpoint"`
	Probe       ProbeConfig          `json:"probe" yaml:"probe"`
	Watchdog    WatchdogConfig       `json:"watchdog" yaml:"watchdog"`
	KeepAlive   KeepAliveConfig      `json:"keep_alive" yaml:"keep_alive"`
	Alerts      AlertsConfig         `json:"alerts" yaml:"alerts"`
	Dashboard   DashboardConfig      `json:"dashboard" yaml:"dashboard"`
	Health      HealthConfig         `json:"health" yaml:"health"`
	Metrics     models.MetricsConfig `json:"metrics" yaml:"metrics"`
	DataDir     string               `json:"data_dir" yaml:"data_dir" envconfig:"DATA_DIR"`
	DBRetention Duration             `json:"db_retention" yaml:"db_retention" envconfig:"DB_RETENTION"`
	Log         logger.Config        `json:"log" yaml:"log"`
}

const (
	ProbeModeRakNet = "raknet"
	ProbeModeICMP   = "icmp"

	defaultBedrockPort = 19132
)

func (c *AgentConfig) SetDefaults() {
	c.Endpoint.Port = defaultBedrockPort
	c.Endpoint.Username = "AFKBot"
	c.Probe = ProbeConfig{Mode: ProbeModeRakNet, Timeout: Duration(3 * time.Second)}
	c.Watchdog.Interval = Duration(27 * time.Second)
	c.KeepAlive = KeepAliveConfig{
		MinInterval: Duration(45 * time.Second),
		MaxInterval: Duration(60 * time.Second),
	}
	c.Alerts.Throttle = Duration(time.Hour)
	c.Dashboard = DashboardConfig{
		ListenAddr:        ":3000",
		ChatLogSize:       50,
		CommandsPerSecond: 5,
	}
	c.Health = HealthConfig{ListenAddr: ":50055", ServiceName: "afkbot"}
	c.Metrics = models.MetricsConfig{Enabled: true, Retention: 100}
	c.DataDir = "/data"
	c.DBRetention = Duration(7 * 24 * time.Hour)
	c.Log = logger.Config{Level: "info", Format: "json"}
}

func (c *AgentConfig) Validate() error {
	if c.Endpoint.Host == "" {
		return errMissingHost
	}

	if c.Endpoint.Port < 1 || c.Endpoint.Port > 65535 {
		return fmt.Errorf("%w: %d", errInvalidPort, c.Endpoint.Port)
	}

	switch c.Probe.Mode {
	case ProbeModeRakNet, ProbeModeICMP:
	default:
		return fmt.Errorf("%w: %q", errInvalidProbeMode, c.Probe.Mode)
	}

	if c.Probe.Timeout <= 0 {
		return errInvalidTimeout
	}

	if c.Watchdog.Interval <= c.Probe.Timeout {
		return errIntervalTooShort
	}

	if c.KeepAlive.MinInterval <= 0 || c.KeepAlive.MinInterval > c.KeepAlive.MaxInterval {
		return errInvalidKeepAlive
	}

	if c.Alerts.Throttle <= 0 {
		return errInvalidThrottle
	}

	if (c.Alerts.Telegram.Token == "") != (c.Alerts.Telegram.ChatID == "") {
		return errPartialTelegram
	}

	if c.Dashboard.Addr() == "" {
		return errInvalidListenAddr
	}

	if c.DataDir == "" {
		return errMissingDataDir
	}

	return nil
}
