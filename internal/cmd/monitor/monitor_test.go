package monitor

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vigilocam/detection-scheduler/internal/camera"
)

func Test_makeTasks(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]any
		want     int
	}{
		{
			name: "without slack",
			want: 6,
		},
		{
			name:     "with slack",
			settings: map[string]any{"slack.token": "xoxb-1234"},
			want:     8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := viper.New()
			v.Set("poller.interval", 30*time.Second)
			for key, value := range tt.settings {
				v.Set(key, value)
			}

			cfg := camera.Configuration{Cameras: []camera.Camera{camera.New("front", "Front Door")}}
			tasks := makeTasks(v, cfg, "1.0", prometheus.NewPedanticRegistry(), slog.Default())
			assert.Len(t, tasks, tt.want)
		})
	}
}

func Test_run(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cameras.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cameras:
  - id: front
    name: Front Door
`), 0o644))

	v := viper.New()
	v.Set("cameras", path)
	v.Set("poller.interval", time.Minute)
	v.Set("exporter.addr", "localhost:0")
	v.Set("health.addr", "localhost:0")
	v.Set("preview.cache.size", 1024)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error)
	go func() {
		errCh <- run(ctx, v, "dev", prometheus.NewPedanticRegistry(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	}()

	cancel()
	assert.NoError(t, <-errCh)
}

func Test_run_NoCamerasFile(t *testing.T) {
	v := viper.New()
	v.Set("cameras", filepath.Join(t.TempDir(), "missing.yaml"))

	err := run(context.Background(), v, "dev", prometheus.NewPedanticRegistry(), slog.Default())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
