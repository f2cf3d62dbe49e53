// Package preview fetches camera snapshot stills, used as the backdrop when editing
// detection zones.
package preview

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/clambin/go-common/http/metrics"
	"github.com/clambin/go-common/http/roundtripper"
	"github.com/coocood/freecache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vigilocam/detection-scheduler/internal/camera"
	"github.com/vigilocam/detection-scheduler/internal/detect"
)

type Client struct {
	HTTPClient *http.Client
	cache      *freecache.Cache
	ttl        time.Duration
}

// New returns a Client that caches snapshots for ttl. cacheSize is in bytes.
func New(cacheSize int, ttl time.Duration, m metrics.RequestMetrics) *Client {
	return &Client{
		HTTPClient: &http.Client{
			Transport: roundtripper.New(
				roundtripper.WithRequestMetrics(m),
				roundtripper.WithRoundTripper(http.DefaultTransport),
			),
		},
		cache: freecache.NewCache(cacheSize),
		ttl:   ttl,
	}
}

// NewSnapshotMetrics returns the request metrics for snapshot fetches.
func NewSnapshotMetrics(namespace, subsystem string, labels prometheus.Labels) metrics.RequestMetrics {
	return metrics.NewRequestMetrics(metrics.Options{
		Namespace:   namespace,
		Subsystem:   subsystem,
		ConstLabels: labels,
		LabelValues: func(request *http.Request, statusCode int) (string, string, string) {
			return request.Method, request.URL.Path, strconv.Itoa(statusCode)
		},
	})
}

// Snapshot returns a still from the camera, served from cache while one is fresh.
func (c *Client) Snapshot(ctx context.Context, cam camera.Camera) ([]byte, error) {
	if cam.SnapshotURL == "" {
		return nil, &detect.ValidationError{Field: "snapshot_url", Reason: "camera has no snapshot url"}
	}

	key := []byte(cam.ID)
	if image, err := c.cache.Get(key); err == nil {
		return image, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cam.SnapshotURL, nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("snapshot: %s", resp.Status)
	}
	image, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	if c.ttl > 0 {
		_ = c.cache.Set(key, image, max(int(c.ttl.Seconds()), 1))
	}
	return image, nil
}
