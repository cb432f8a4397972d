package phase

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-phase/pkg/phase/model"
)

// Bucket identifies the before, main or after handlers of a phase.
type Bucket = model.Bucket

const (
	BeforeBucket = model.BeforeBucket
	MainBucket   = model.MainBucket
	AfterBucket  = model.AfterBucket
)

const (
	beforeSuffix = ":before"
	afterSuffix  = ":after"
)

// Target is a handler destination: a phase name and one of its buckets.
type Target struct {
	Phase  string
	Bucket Bucket
}

// ParseTarget splits "name", "name:before" or "name:after" into a Target.
func ParseTarget(target string) (Target, error) {
	res := Target{Phase: target, Bucket: MainBucket}

	switch {
	case strings.HasSuffix(target, beforeSuffix):
		res = Target{Phase: strings.TrimSuffix(target, beforeSuffix), Bucket: BeforeBucket}
	case strings.HasSuffix(target, afterSuffix):
		res = Target{Phase: strings.TrimSuffix(target, afterSuffix), Bucket: AfterBucket}
	}

	if res.Phase == "" {
		return Target{}, errors.Wrapf(ErrInvalidTarget, "%q has no phase name", target)
	}

	return res, nil
}

func (t Target) String() string {
	switch t.Bucket {
	case BeforeBucket:
		return t.Phase + beforeSuffix
	case AfterBucket:
		return t.Phase + afterSuffix
	default:
		return t.Phase
	}
}
