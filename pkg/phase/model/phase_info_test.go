package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askiada/go-phase/pkg/phase/model"
)

func TestBucketString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "before", model.BeforeBucket.String())
	assert.Equal(t, "main", model.MainBucket.String())
	assert.Equal(t, "after", model.AfterBucket.String())
	assert.Equal(t, "unknown", model.Bucket(9).String())
	assert.False(t, model.Bucket(9).Valid())
}

func TestPhaseInfoCount(t *testing.T) {
	t.Parallel()

	info := model.PhaseInfo{Name: "auth", Before: 1, Main: 2, After: 3}
	assert.Equal(t, 1, info.Count(model.BeforeBucket))
	assert.Equal(t, 2, info.Count(model.MainBucket))
	assert.Equal(t, 3, info.Count(model.AfterBucket))
	assert.Equal(t, 0, info.Count(model.Bucket(-1)))
}
