// Package poller evaluates the detection schedules of all configured cameras and
// publishes the result to its subscribers.
package poller

import (
	"context"
	"log/slog"
	"time"

	"github.com/vigilocam/detection-scheduler/internal/camera"
	"github.com/vigilocam/detection-scheduler/internal/detect"
	"github.com/vigilocam/detection-scheduler/pkg/pubsub"
)

type Poller interface {
	Subscribe() chan Update
	Unsubscribe(ch chan Update)
	Refresh()
}

var _ Poller = &ArmingPoller{}

// ArmingPoller evaluates every camera on a fixed interval, and early on Refresh.
type ArmingPoller struct {
	*pubsub.Publisher[Update]
	// Clock returns the current time. Defaults to time.Now.
	Clock    func() time.Time
	cameras  []camera.Camera
	interval time.Duration
	logger   *slog.Logger
	refresh  chan struct{}
}

func New(cameras []camera.Camera, interval time.Duration, logger *slog.Logger) *ArmingPoller {
	return &ArmingPoller{
		Publisher: pubsub.New[Update](logger.With(slog.String("component", "registry"))),
		cameras:   cameras,
		interval:  interval,
		logger:    logger,
		refresh:   make(chan struct{}, 1),
	}
}

func (p *ArmingPoller) Run(ctx context.Context) error {
	p.logger.Debug("started", slog.Duration("interval", p.interval))
	defer p.logger.Debug("stopped")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		case <-p.refresh:
		}
		p.poll()
	}
}

// Refresh asks the poller for an immediate evaluation. If one is already pending, the
// call is a no-op.
func (p *ArmingPoller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

func (p *ArmingPoller) poll() {
	start := time.Now()
	update := p.update()
	p.Publisher.Publish(update)
	p.logger.Debug("poll completed", slog.Duration("duration", time.Since(start)), slog.Any("update", update))
}

func (p *ArmingPoller) now() time.Time {
	if p.Clock != nil {
		return p.Clock()
	}
	return time.Now()
}

func (p *ArmingPoller) update() Update {
	now := p.now()
	update := Update{Time: now, Cameras: make(map[string]CameraStatus, len(p.cameras))}
	for i := range p.cameras {
		update.Cameras[p.cameras[i].ID] = p.status(p.cameras[i], now)
	}
	return update
}

func (p *ArmingPoller) status(c camera.Camera, now time.Time) CameraStatus {
	loc, err := c.Location()
	if err != nil {
		p.logger.Warn("invalid camera timezone, evaluating in UTC", slog.String("camera", c.ID), slog.Any("err", err))
		loc = time.UTC
	}
	localNow := now.In(loc)
	evaluation := detect.Evaluate(c.Schedule, localNow)
	status := CameraStatus{
		Name:         c.Name,
		Status:       evaluation.Status,
		Reason:       evaluation.Reason,
		Zones:        len(c.Zones),
		EnabledZones: len(c.Zones.Enabled()),
	}
	if next, ok := detect.NextTransition(c.Schedule, localNow); ok {
		status.NextChange = next
	}
	return status
}
