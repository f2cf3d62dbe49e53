// Package testutils builds poller updates for tests.
package testutils

import (
	"time"

	"github.com/vigilocam/detection-scheduler/internal/detect"
	"github.com/vigilocam/detection-scheduler/internal/poller"
)

func Update(options ...UpdateOption) poller.Update {
	u := poller.Update{Cameras: make(map[string]poller.CameraStatus)}
	for _, option := range options {
		option(&u)
	}
	return u
}

type UpdateOption func(*poller.Update)

func WithTime(t time.Time) UpdateOption {
	return func(u *poller.Update) {
		u.Time = t
	}
}

func WithCamera(id, name string, status detect.Status, reason string, options ...CameraOption) UpdateOption {
	return func(u *poller.Update) {
		c := poller.CameraStatus{
			Name:   name,
			Status: status,
			Reason: reason,
		}
		for _, option := range options {
			option(&c)
		}
		u.Cameras[id] = c
	}
}

type CameraOption func(*poller.CameraStatus)

func WithZones(zones, enabled int) CameraOption {
	return func(c *poller.CameraStatus) {
		c.Zones = zones
		c.EnabledZones = enabled
	}
}

func WithNextChange(t time.Time) CameraOption {
	return func(c *poller.CameraStatus) {
		c.NextChange = t
	}
}
