package scheduler

import (
	"errors"
)

var (
	// ErrCanceled is the Result of a job that was canceled before it fired.
	ErrCanceled = errors.New("job canceled")
	// ErrFailed matches the Result of a job whose task returned an error.
	ErrFailed = &errFailed{}
)

type errFailed struct {
	err error
}

func (e *errFailed) Error() string {
	reason := "unknown reason"
	if e.err != nil {
		reason = e.err.Error()
	}
	return "job failed: " + reason
}

func (e *errFailed) Is(err error) bool {
	return err == ErrFailed
}

func (e *errFailed) Unwrap() error {
	return e.err
}
