package testutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vigilocam/detection-scheduler/internal/detect"
)

func TestWithCamera(t *testing.T) {
	next := time.Date(2024, time.March, 4, 17, 0, 0, 0, time.UTC)
	u := Update(
		WithTime(time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)),
		WithCamera("cam-1", "Front Door", detect.Active, "inside window 09:00-17:00",
			WithZones(3, 2),
			WithNextChange(next),
		),
		WithCamera("cam-2", "Garden", detect.AlwaysActive, "no schedule"),
	)

	require.Len(t, u.Cameras, 2)
	front := u.Cameras["cam-1"]
	assert.Equal(t, "Front Door", front.Name)
	assert.Equal(t, detect.Active, front.Status)
	assert.Equal(t, 3, front.Zones)
	assert.Equal(t, 2, front.EnabledZones)
	assert.Equal(t, next, front.NextChange)

	garden := u.Cameras["cam-2"]
	assert.Equal(t, detect.AlwaysActive, garden.Status)
	assert.True(t, garden.NextChange.IsZero())

	assert.Equal(t, 2, u.Armed())
	assert.Equal(t, []string{"cam-1", "cam-2"}, u.CameraIDs())
}
