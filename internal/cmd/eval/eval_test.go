package eval

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_evalCameras(t *testing.T) {
	const cameras = `
cameras:
  - id: front
    name: Front Door
    schedule:
      enabled: true
      days: [0, 1, 2, 3, 4]
      time_ranges:
        - start_time: "09:00"
          end_time: "17:00"
    zones:
      - id: 2ff1f7b4-7a37-4b96-9a84-21a485eb5758
        name: Driveway
        enabled: true
        vertices:
          - { x: 0.1, y: 0.1 }
          - { x: 0.9, y: 0.1 }
          - { x: 0.5, y: 0.9 }
      - id: 9b3f54a1-04a2-4cd8-8a5e-6f0f34645bad
        name: Porch
        enabled: false
        vertices:
          - { x: 0, y: 0 }
          - { x: 1, y: 0 }
          - { x: 1, y: 1 }
  - id: garden
    name: Garden
    zones: []
`
	path := filepath.Join(t.TempDir(), "cameras.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cameras), 0o644))

	v := viper.New()
	v.Set("cameras", path)
	v.Set("at", "2024-03-04 12:00") // a Monday

	var output bytes.Buffer
	require.NoError(t, evalCameras(&output, v)(nil, nil))

	const want = `CAMERA               STATUS         UNTIL             ZONES  REASON
Front Door           active         2024-03-04 17:00  1/2    inside window 09:00-17:00
Garden               always active  -                 0/0    no schedule
`
	assert.Equal(t, want, output.String())

	// a positional argument beats the configured path
	output.Reset()
	require.NoError(t, evalCameras(&output, v)(nil, []string{path}))
	assert.Equal(t, want, output.String())
}

func Test_evalCameras_Errors(t *testing.T) {
	v := viper.New()
	v.Set("at", "noon")
	assert.ErrorContains(t, evalCameras(io.Discard, v)(nil, nil), "invalid evaluation time")

	v = viper.New()
	v.Set("cameras", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, evalCameras(io.Discard, v)(nil, nil), os.ErrNotExist)
}
