package config

import "errors"

var (
	errInvalidDuration   = errors.New("invalid duration")
	errEnvOverlay        = errors.New("failed to apply environment")
	errMissingHost       = errors.New("endpoint host is required")
	errInvalidPort       = errors.New("endpoint port must be between 1 and 65535")
	errInvalidTimeout    = errors.New("probe timeout must be positive")
	errIntervalTooShort  = errors.New("watchdog interval must be longer than the probe timeout")
	errInvalidKeepAlive  = errors.New("keep-alive interval window is invalid")
	errInvalidThrottle   = errors.New("alert throttle must be positive")
	errPartialTelegram   = errors.New("telegram needs both token and chat id")
	errInvalidProbeMode  = errors.New("unknown probe mode")
	errMissingDataDir    = errors.New("data dir is required")
	errInvalidListenAddr = errors.New("dashboard listen address is required")
)
