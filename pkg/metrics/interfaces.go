package metrics

import (
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
)

// MetricStore keeps the most recent probe round trips.
type MetricStore interface {
	Add(timestamp time.Time, rtt time.Duration, reachable bool)
	GetPoints() []models.MetricPoint
	GetLastPoint() *models.MetricPoint
}
