package collector

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/vigilocam/detection-scheduler/internal/detect"
	"github.com/vigilocam/detection-scheduler/internal/poller/testutils"
)

func TestCollector(t *testing.T) {
	update := testutils.Update(
		testutils.WithCamera("front", "Front Door", detect.Active, "inside window 09:00-17:00", testutils.WithZones(3, 2)),
		testutils.WithCamera("garden", "Garden", detect.AlwaysActive, "no schedule", testutils.WithZones(1, 1)),
		testutils.WithCamera("gate", "Gate", detect.Inactive, "outside scheduled windows", testutils.WithZones(2, 0)),
	)

	c := Collector{Logger: slog.Default()}
	c.lastUpdate = &update

	require.NoError(t, testutil.CollectAndCompare(&c, strings.NewReader(`
# HELP detsched_camera_detection_active 1 if the camera is currently capturing motion events
# TYPE detsched_camera_detection_active gauge
detsched_camera_detection_active{camera="front"} 1
detsched_camera_detection_active{camera="garden"} 1
detsched_camera_detection_active{camera="gate"} 0

# HELP detsched_camera_schedule_enabled 1 if the camera restricts motion detection to a schedule
# TYPE detsched_camera_schedule_enabled gauge
detsched_camera_schedule_enabled{camera="front"} 1
detsched_camera_schedule_enabled{camera="garden"} 0
detsched_camera_schedule_enabled{camera="gate"} 1

# HELP detsched_camera_zones Number of detection zones configured for the camera
# TYPE detsched_camera_zones gauge
detsched_camera_zones{camera="front"} 3
detsched_camera_zones{camera="garden"} 1
detsched_camera_zones{camera="gate"} 2

# HELP detsched_camera_zones_enabled Number of detection zones currently enabled for the camera
# TYPE detsched_camera_zones_enabled gauge
detsched_camera_zones_enabled{camera="front"} 2
detsched_camera_zones_enabled{camera="garden"} 1
detsched_camera_zones_enabled{camera="gate"} 0
`)))
}

func TestCollector_NoUpdate(t *testing.T) {
	c := Collector{Logger: slog.Default()}
	require.Zero(t, testutil.CollectAndCount(&c))
}
