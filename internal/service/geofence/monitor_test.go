package geofence

import (
	"context"
	"errors"
	"testing"

	"github.com/restolab/staffpoint-backend-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedSource struct {
	lat, lon float64
	err      error
}

func (s *scriptedSource) Position(ctx context.Context) (float64, float64, error) {
	return s.lat, s.lon, s.err
}

func TestMonitorStartsInErrorState(t *testing.T) {
	m := NewMonitor(&scriptedSource{}, Site{RadiusMeters: 100}, 0, nil)
	assert.Equal(t, StatusError, m.Current())
}

func TestMonitorSampleUpdatesCurrent(t *testing.T) {
	source := &scriptedSource{lat: -6.2, lon: 106.8}
	site := Site{Latitude: -6.2, Longitude: 106.8, RadiusMeters: 100}
	m := NewMonitor(source, site, 0, nil)

	m.sample(context.Background())
	assert.Equal(t, StatusValid, m.Current())

	source.lat = -6.3
	m.sample(context.Background())
	assert.Equal(t, StatusInvalid, m.Current())

	source.err = errors.New("gps timeout")
	m.sample(context.Background())
	assert.Equal(t, StatusError, m.Current())
}

func TestMonitorPublishesOnlyOnChange(t *testing.T) {
	source := &scriptedSource{lat: -6.2, lon: 106.8}
	site := Site{Latitude: -6.2, Longitude: 106.8, RadiusMeters: 100}
	hub := sse.NewHub()
	m := NewMonitor(source, site, 0, hub)

	events, cleanup := hub.Subscribe(TopicGeofence)
	defer cleanup()

	// ERROR -> VALID publishes
	m.sample(context.Background())
	select {
	case event := <-events:
		data, ok := event.Data.(map[string]string)
		require.True(t, ok)
		assert.Equal(t, string(StatusValid), data["status"])
	default:
		t.Fatal("expected a status change event")
	}

	// VALID -> VALID is silent
	m.sample(context.Background())
	select {
	case <-events:
		t.Fatal("unchanged status must not publish")
	default:
	}
}
