package geofence

import (
	"context"
	"errors"
)

// FixedSource reports the kiosk's installed coordinates. Restaurant kiosks are
// stationary, so the deployment configures the position once; a source left
// unconfigured reports an error, which surfaces as ERROR status rather than a
// silent pass.
type FixedSource struct {
	Latitude   float64
	Longitude  float64
	Configured bool
}

var errPositionNotConfigured = errors.New("kiosk position is not configured")

// Position implements PositionSource.
func (s FixedSource) Position(ctx context.Context) (float64, float64, error) {
	if !s.Configured {
		return 0, 0, errPositionNotConfigured
	}
	return s.Latitude, s.Longitude, nil
}
