package model

// Bucket identifies one of the three handler sequences of a phase.
type Bucket int

const (
	BeforeBucket Bucket = iota
	MainBucket
	AfterBucket
)

// Buckets lists the buckets in execution order.
var Buckets = []Bucket{BeforeBucket, MainBucket, AfterBucket}

func (b Bucket) String() string {
	switch b {
	case BeforeBucket:
		return "before"
	case MainBucket:
		return "main"
	case AfterBucket:
		return "after"
	default:
		return "unknown"
	}
}

// Valid reports whether b is one of the known buckets.
func (b Bucket) Valid() bool {
	return b >= BeforeBucket && b <= AfterBucket
}

// PhaseInfo describes a phase at the time it is observed.
type PhaseInfo struct {
	Name     string
	Position int
	Before   int
	Main     int
	After    int
}

// Count returns the number of handlers registered in bucket.
func (pi PhaseInfo) Count(bucket Bucket) int {
	switch bucket {
	case BeforeBucket:
		return pi.Before
	case MainBucket:
		return pi.Main
	case AfterBucket:
		return pi.After
	default:
		return 0
	}
}
