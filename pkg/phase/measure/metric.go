package measure

import (
	"sync"
	"time"

	"github.com/askiada/go-phase/pkg/phase/model"
)

type bucketInfo struct {
	elapsed time.Duration
	total   int64
}

type DefaultMetric struct {
	mu          sync.Mutex
	buckets     [3]bucketInfo
	EndDuration time.Duration
}

func (mt *DefaultMetric) AddHandlerDuration(bucket model.Bucket, elapsed time.Duration) {
	if !bucket.Valid() {
		return
	}

	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.buckets[bucket].total++
	mt.buckets[bucket].elapsed += elapsed
}

func (mt *DefaultMetric) AVGHandlerDuration(bucket model.Bucket) time.Duration {
	if !bucket.Valid() {
		return 0
	}

	mt.mu.Lock()
	defer mt.mu.Unlock()

	info := mt.buckets[bucket]
	if info.total == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(info.elapsed) / float64(info.total)))
}

func (mt *DefaultMetric) HandlerCount(bucket model.Bucket) int64 {
	if !bucket.Valid() {
		return 0
	}

	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.buckets[bucket].total
}

func (mt *DefaultMetric) SetTotalDuration(total time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.EndDuration = total
}

func (mt *DefaultMetric) GetTotalDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.EndDuration
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Hour:
		d = d.Round(time.Hour)
	case d > time.Minute:
		d = d.Round(time.Minute)
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	}

	return d
}

var _ Metric = (*DefaultMetric)(nil)
