package metrics

import (
	"sync/atomic"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/models"
)

// LockFreeRingBuffer is a fixed size ring of probe points. Writers claim a
// slot with an atomic counter and publish the point with an atomic store.
type LockFreeRingBuffer struct {
	points []atomic.Pointer[models.MetricPoint]
	pos    atomic.Int64
	size   int64
}

// NewBuffer creates a MetricStore holding the last size points.
func NewBuffer(size int) MetricStore {
	if size <= 0 {
		size = 1
	}

	return &LockFreeRingBuffer{
		points: make([]atomic.Pointer[models.MetricPoint], size),
		size:   int64(size),
	}
}

func (b *LockFreeRingBuffer) Add(timestamp time.Time, rtt time.Duration, reachable bool) {
	pos := b.pos.Add(1) - 1

	b.points[pos%b.size].Store(&models.MetricPoint{
		Timestamp:    timestamp,
		ResponseTime: rtt.Nanoseconds(),
		Reachable:    reachable,
	})
}

// GetPoints returns the stored points, oldest first.
func (b *LockFreeRingBuffer) GetPoints() []models.MetricPoint {
	pos := b.pos.Load()

	n := pos
	if n > b.size {
		n = b.size
	}

	points := make([]models.MetricPoint, 0, n)

	for i := pos - n; i < pos; i++ {
		if p := b.points[i%b.size].Load(); p != nil {
			points = append(points, *p)
		}
	}

	return points
}

func (b *LockFreeRingBuffer) GetLastPoint() *models.MetricPoint {
	pos := b.pos.Load()
	if pos == 0 {
		return nil
	}

	p := b.points[(pos-1)%b.size].Load()
	if p == nil {
		return nil
	}

	cp := *p

	return &cp
}
