// Package scheduler runs a task once, after a given delay.
package scheduler

import (
	"context"
	"sync"
	"time"
)

// Task is the work a Job performs when it fires.
type Task interface {
	Run(ctx context.Context) error
}

// RunFunc adapts a plain function to the Task interface.
type RunFunc func(ctx context.Context) error

// Run calls f.
func (f RunFunc) Run(ctx context.Context) error { return f(ctx) }

// Schedule runs task after waitTime. Once the job has run, failed or been canceled, it
// signals done (if not nil); the caller must consume the signal.
func Schedule(ctx context.Context, task Task, waitTime time.Duration, done chan struct{}) *Job {
	subCtx, cancel := context.WithCancel(ctx)
	j := Job{
		task:   task,
		state:  stateScheduled,
		due:    time.Now().Add(waitTime),
		done:   done,
		cancel: cancel,
	}
	go j.run(subCtx, waitTime)
	return &j
}

// Job is a scheduled task.
type Job struct {
	task   Task
	due    time.Time
	done   chan struct{}
	cancel context.CancelFunc
	state  state
	err    error
	lock   sync.RWMutex
}

func (j *Job) run(ctx context.Context, waitTime time.Duration) {
	select {
	case <-ctx.Done():
		j.setState(stateCanceled, ErrCanceled)
	case <-time.After(waitTime):
		if err := j.task.Run(ctx); err != nil {
			j.setState(stateFailed, &errFailed{err: err})
		} else {
			j.setState(stateCompleted, nil)
		}
	}
	if j.done != nil {
		j.done <- struct{}{}
	}
}

// Cancel stops a job that hasn't fired yet.
func (j *Job) Cancel() {
	j.cancel()
}

// Due returns the time the job will fire.
func (j *Job) Due() time.Time {
	return j.due
}

// Result reports whether the job has finished, and its outcome: nil for a completed job,
// ErrCanceled for a canceled one, or an error matching ErrFailed when the task failed.
func (j *Job) Result() (bool, error) {
	j.lock.RLock()
	defer j.lock.RUnlock()
	finished := j.state.finished()
	if finished {
		j.cancel()
	}
	return finished, j.err
}

func (j *Job) setState(state state, err error) {
	j.lock.Lock()
	defer j.lock.Unlock()
	j.state = state
	j.err = err
}

type state int

const (
	stateUnknown state = iota
	stateScheduled
	stateCanceled
	stateCompleted
	stateFailed
)

func (s state) finished() bool {
	return s == stateCompleted || s == stateFailed || s == stateCanceled
}
