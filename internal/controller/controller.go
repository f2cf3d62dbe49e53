// Package controller turns poller updates into user notifications and schedules
// just-in-time refreshes around upcoming schedule transitions.
package controller

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/vigilocam/detection-scheduler/internal/notifier"
	"github.com/vigilocam/detection-scheduler/internal/poller"
	"github.com/vigilocam/detection-scheduler/pkg/scheduler"
)

// refreshGrace pushes the just-in-time refresh slightly past the transition, so the
// evaluation lands on the far side of the boundary.
const refreshGrace = time.Second

// A Controller receives updates from a Poller and notifies the user of every camera
// that changed detection status. It schedules a poller refresh at the next upcoming
// transition, so status changes are reported when they happen rather than on the next
// polling interval.
type Controller struct {
	poller.Poller
	notifier.Notifier
	logger       *slog.Logger
	jobCompleted chan struct{}
	job          *scheduler.Job
	lastSeen     map[string]poller.CameraStatus
}

func New(p poller.Poller, n notifier.Notifier, logger *slog.Logger) *Controller {
	return &Controller{
		Poller:       p,
		Notifier:     n,
		logger:       logger,
		jobCompleted: make(chan struct{}, 1),
	}
}

func (c *Controller) Run(ctx context.Context) error {
	c.logger.Debug("started")
	defer c.logger.Debug("stopped")

	ch := c.Poller.Subscribe()
	defer c.Poller.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			c.cancelJob()
			return nil
		case update := <-ch:
			c.processUpdate(ctx, update)
		case <-c.jobCompleted:
			c.processCompletedJob()
		}
	}
}

// processUpdate notifies the user of all cameras whose status changed since the last
// update, and lines up a refresh for the next transition. The first update only
// establishes the baseline.
func (c *Controller) processUpdate(ctx context.Context, update poller.Update) {
	for _, transition := range c.transitions(update) {
		c.logger.Debug("camera changed status", slog.Any("transition", transition))
		c.Notifier.Notify(transition)
	}
	c.scheduleRefresh(ctx, update)
}

func (c *Controller) transitions(update poller.Update) []notifier.Transition {
	previous := c.lastSeen
	c.lastSeen = update.Cameras
	if previous == nil {
		return nil
	}
	var transitions []notifier.Transition
	for _, id := range update.CameraIDs() {
		status := update.Cameras[id]
		before, ok := previous[id]
		if !ok || before.Status == status.Status {
			continue
		}
		transitions = append(transitions, notifier.Transition{
			Camera: status.Name,
			From:   before.Status,
			To:     status.Status,
			Reason: status.Reason,
			Until:  status.NextChange,
		})
	}
	return transitions
}

// scheduleRefresh schedules a one-shot poller refresh at the update's earliest
// transition. If a refresh is already scheduled for an earlier time, it stays.
func (c *Controller) scheduleRefresh(ctx context.Context, update poller.Update) {
	next, ok := nextTransition(update)
	if !ok {
		c.cancelJob()
		return
	}
	due := next.Add(refreshGrace)
	if j := c.job; j != nil {
		if finished, _ := j.Result(); !finished && !j.Due().After(due) {
			return
		}
		c.cancelJob()
	}
	c.logger.Debug("scheduling refresh", slog.Time("due", due))
	c.job = scheduler.Schedule(ctx, scheduler.RunFunc(func(_ context.Context) error {
		c.Poller.Refresh()
		return nil
	}), time.Until(due), c.jobCompleted)
}

func (c *Controller) cancelJob() {
	if c.job != nil {
		c.job.Cancel()
		c.job = nil
	}
}

func (c *Controller) processCompletedJob() {
	if c.job == nil {
		return
	}
	finished, err := c.job.Result()
	if !finished {
		return
	}
	if err != nil && !errors.Is(err, scheduler.ErrCanceled) {
		c.logger.Error("scheduled refresh failed", "err", err)
	}
	c.job = nil
}

// nextTransition returns the earliest time any camera in the update changes status.
func nextTransition(update poller.Update) (time.Time, bool) {
	var next time.Time
	for _, status := range update.Cameras {
		if status.NextChange.IsZero() {
			continue
		}
		if next.IsZero() || status.NextChange.Before(next) {
			next = status.NextChange
		}
	}
	return next, !next.IsZero()
}
