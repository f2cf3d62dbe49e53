// Package collector exports the poller's view of all cameras as Prometheus metrics.
package collector

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vigilocam/detection-scheduler/internal/detect"
	"github.com/vigilocam/detection-scheduler/internal/poller"
)

var (
	detectionActive = prometheus.NewDesc(
		prometheus.BuildFQName("detsched", "camera", "detection_active"),
		"1 if the camera is currently capturing motion events",
		[]string{"camera"},
		nil,
	)
	scheduleEnabled = prometheus.NewDesc(
		prometheus.BuildFQName("detsched", "camera", "schedule_enabled"),
		"1 if the camera restricts motion detection to a schedule",
		[]string{"camera"},
		nil,
	)
	zoneCount = prometheus.NewDesc(
		prometheus.BuildFQName("detsched", "camera", "zones"),
		"Number of detection zones configured for the camera",
		[]string{"camera"},
		nil,
	)
	enabledZoneCount = prometheus.NewDesc(
		prometheus.BuildFQName("detsched", "camera", "zones_enabled"),
		"Number of detection zones currently enabled for the camera",
		[]string{"camera"},
		nil,
	)
)

var _ prometheus.Collector = &Collector{}

type Collector struct {
	Poller     poller.Poller
	Logger     *slog.Logger
	lock       sync.RWMutex
	lastUpdate *poller.Update
}

func (c *Collector) Run(ctx context.Context) error {
	c.Logger.Debug("started")
	defer c.Logger.Debug("stopped")

	ch := c.Poller.Subscribe()
	defer c.Poller.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			c.lock.Lock()
			c.lastUpdate = &update
			c.lock.Unlock()
		}
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- detectionActive
	ch <- scheduleEnabled
	ch <- zoneCount
	ch <- enabledZoneCount
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if c.lastUpdate == nil {
		return
	}
	for id, status := range c.lastUpdate.Cameras {
		ch <- prometheus.MustNewConstMetric(detectionActive, prometheus.GaugeValue, boolValue(status.Status.Armed()), id)
		ch <- prometheus.MustNewConstMetric(scheduleEnabled, prometheus.GaugeValue, boolValue(status.Status != detect.AlwaysActive), id)
		ch <- prometheus.MustNewConstMetric(zoneCount, prometheus.GaugeValue, float64(status.Zones), id)
		ch <- prometheus.MustNewConstMetric(enabledZoneCount, prometheus.GaugeValue, float64(status.EnabledZones), id)
	}
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
