package testutil

import (
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/vigilocam/detection-scheduler/internal/poller"
	"github.com/vigilocam/detection-scheduler/pkg/pubsub"
)

var _ poller.Poller = &FakePoller{}

// FakePoller stands in for an ArmingPoller: tests publish updates by hand and count
// Refresh calls.
type FakePoller struct {
	*pubsub.Publisher[poller.Update]
	refreshes atomic.Int32
}

func NewFakePoller() *FakePoller {
	return &FakePoller{Publisher: pubsub.New[poller.Update](slog.New(slog.NewTextHandler(io.Discard, nil)))}
}

func (f *FakePoller) Refresh() {
	f.refreshes.Add(1)
}

// Refreshes returns the number of times Refresh was called.
func (f *FakePoller) Refreshes() int {
	return int(f.refreshes.Load())
}
