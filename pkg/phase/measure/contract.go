package measure

import (
	"time"

	"github.com/askiada/go-phase/pkg/phase/model"
)

// Measure collects one Metric per phase.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
	SetTotalDuration(total time.Duration)
	GetTotalDuration() time.Duration
	Reset()
}

// Metric holds the timings of a single phase.
type Metric interface {
	AddHandlerDuration(bucket model.Bucket, elapsed time.Duration)
	AVGHandlerDuration(bucket model.Bucket) time.Duration
	HandlerCount(bucket model.Bucket) int64
	SetTotalDuration(total time.Duration)
	GetTotalDuration() time.Duration
}
