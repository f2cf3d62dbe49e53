package poller

import (
	"log/slog"
	"slices"
	"time"

	"github.com/vigilocam/detection-scheduler/internal/detect"
)

// Update is the result of one evaluation sweep over all configured cameras.
type Update struct {
	Time    time.Time               `json:"time"`
	Cameras map[string]CameraStatus `json:"cameras"`
}

// CameraStatus is the arming state of one camera at Update.Time.
type CameraStatus struct {
	Name         string        `json:"name"`
	Status       detect.Status `json:"status"`
	Reason       string        `json:"reason"`
	Zones        int           `json:"zones"`
	EnabledZones int           `json:"enabled_zones"`
	// NextChange is the time the camera's status will change. Zero if it never does.
	NextChange time.Time `json:"next_change"`
}

// Armed returns the number of cameras currently capturing motion events.
func (update Update) Armed() int {
	var count int
	for _, c := range update.Cameras {
		if c.Status.Armed() {
			count++
		}
	}
	return count
}

// CameraIDs returns the ids of all cameras in the update, sorted.
func (update Update) CameraIDs() []string {
	ids := make([]string, 0, len(update.Cameras))
	for id := range update.Cameras {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (update Update) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Time("time", update.Time),
		slog.Int("cameras", len(update.Cameras)),
		slog.Int("armed", update.Armed()),
	)
}

func (c CameraStatus) LogValue() slog.Value {
	attribs := make([]slog.Attr, 3, 4)
	attribs[0] = slog.String("name", c.Name)
	attribs[1] = slog.String("status", c.Status.String())
	attribs[2] = slog.String("reason", c.Reason)
	if !c.NextChange.IsZero() {
		attribs = append(attribs, slog.Time("next_change", c.NextChange))
	}
	return slog.GroupValue(attribs...)
}
