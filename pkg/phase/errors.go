package phase

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrListMustBeSet   = errors.New("list must be set")
	ErrNilPhase        = errors.New("phase must be set")
	ErrEmptyName       = errors.New("phase name must be set")
	ErrNilHandler      = errors.New("handler must be set")
	ErrDuplicatePhase  = errors.New("duplicate phase")
	ErrUnknownPhase    = errors.New("unknown phase")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidTarget   = errors.New("invalid handler target")
	ErrInvalidBucket   = errors.New("invalid bucket")
)

func duplicatePhaseError(name string) error {
	return errors.Wrapf(ErrDuplicatePhase, "phase %q already exists", name)
}

func unknownPhaseError(name string) error {
	return errors.Wrapf(ErrUnknownPhase, "%q", name)
}

// HandlerError is returned by a run when a handler fails.
// The handler error is kept as is and is reachable with errors.Is, errors.As and errors.Cause.
type HandlerError struct {
	Phase  string
	Bucket Bucket
	Index  int
	Err    error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("phase %q: %s handler %d: %v", e.Phase, e.Bucket, e.Index, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Cause implements the causer interface of github.com/pkg/errors.
func (e *HandlerError) Cause() error {
	return e.Err
}
