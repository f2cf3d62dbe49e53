package collector

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vigilocam/detection-scheduler/internal/detect"
	"github.com/vigilocam/detection-scheduler/internal/poller/testutils"
	"github.com/vigilocam/detection-scheduler/internal/testutil"
)

func TestCollector_Run(t *testing.T) {
	p := testutil.NewFakePoller()
	c := Collector{Poller: p, Logger: slog.Default()}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error)
	go func() {
		errCh <- c.Run(ctx)
	}()

	assert.Eventually(t, func() bool { return p.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	p.Publish(testutils.Update(
		testutils.WithCamera("front", "Front Door", detect.Active, "inside window 09:00-17:00"),
	))

	assert.Eventually(t, func() bool {
		c.lock.RLock()
		defer c.lock.RUnlock()
		return c.lastUpdate != nil
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-errCh)
	assert.Zero(t, p.Subscribers())
}
