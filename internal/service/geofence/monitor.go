package geofence

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/restolab/staffpoint-backend-go/internal/pkg/sse"
)

// PositionSource supplies the device's current coordinates. Implementations
// wrap whatever positioning hardware or API the deployment has.
type PositionSource interface {
	Position(ctx context.Context) (lat, lon float64, err error)
}

// TopicGeofence is the SSE topic the monitor publishes status changes on.
const TopicGeofence = "geofence"

// Monitor samples the position source on a fixed interval and publishes the
// latest status. Consumers read the most recent value only; there is no
// queued backlog, and stopping the monitor is cancelling its context.
type Monitor struct {
	source   PositionSource
	site     Site
	interval time.Duration
	hub      *sse.Hub

	mu     sync.RWMutex
	latest Status
}

func NewMonitor(source PositionSource, site Site, interval time.Duration, hub *sse.Hub) *Monitor {
	return &Monitor{
		source:   source,
		site:     site,
		interval: interval,
		hub:      hub,
		latest:   StatusError, // nothing sampled yet
	}
}

// Current returns the most recently published status.
func (m *Monitor) Current() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.latest
}

// Run samples until ctx is cancelled. It blocks; callers start it in a
// goroutine.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.sample(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Geofence monitor stopping")
			return
		case <-ticker.C:
			m.sample(ctx)
		}
	}
}

func (m *Monitor) sample(ctx context.Context) {
	lat, lon, err := m.source.Position(ctx)
	status := Evaluate(Sample{Latitude: lat, Longitude: lon, Err: err}, m.site)

	m.mu.Lock()
	changed := m.latest != status
	m.latest = status
	m.mu.Unlock()

	if err != nil {
		slog.Warn("Geofence sample failed", "error", err)
	}

	if changed && m.hub != nil {
		m.hub.Publish(TopicGeofence, sse.Event{
			Topic: TopicGeofence,
			Event: "geofence_status",
			Data:  map[string]string{"status": string(status)},
		})
	}
}
