// Package models pkg/models/metrics.go
package models

import "time"

// MetricPoint is one probe round trip kept in the in-memory ring buffer.
type MetricPoint struct {
	Timestamp    time.Time `json:"timestamp"`
	ResponseTime int64     `json:"response_time"` // nanoseconds
	Reachable    bool      `json:"reachable"`
}

type MetricsConfig struct {
	Enabled   bool `json:"enabled" yaml:"enabled"`
	Retention int  `json:"retention" yaml:"retention"`
}
