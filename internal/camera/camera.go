// Package camera holds the per-camera detection settings and the cameras
// file the runtime loads them from.
package camera

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/vigilocam/detection-scheduler/internal/detect"
)

// Camera is the detection configuration of a single camera.
type Camera struct {
	ID          string           `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	SnapshotURL string           `json:"snapshot_url,omitempty" yaml:"snapshot_url,omitempty"`
	Timezone    string           `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	Schedule    *detect.Schedule `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	Zones       detect.ZoneSet   `json:"zones" yaml:"zones"`
}

// New returns a camera with the default detection settings: no schedule,
// so detection is always armed, and a single enabled Full Frame zone.
func New(id, name string) Camera {
	preset, _ := detect.GetPreset(detect.PresetFullFrame)
	zone, _ := preset.NewZone()
	return Camera{ID: id, Name: name, Zones: detect.ZoneSet{zone}}
}

// Location resolves the camera's IANA timezone. A camera without one runs
// in the host's local time.
func (c Camera) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func (c Camera) Validate() error {
	if c.ID == "" {
		return &detect.ValidationError{Field: "id", Reason: "camera has no id"}
	}
	if _, err := c.Location(); err != nil {
		return &detect.ValidationError{Field: "timezone", Reason: err.Error()}
	}
	if err := c.Schedule.Validate(); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	if err := c.Zones.Validate(); err != nil {
		return fmt.Errorf("zones: %w", err)
	}
	return nil
}

func (c Camera) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", c.ID),
		slog.String("name", c.Name),
		slog.Int("zones", len(c.Zones)),
	)
}
