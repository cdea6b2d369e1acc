package geofence

import (
	"errors"
	"testing"

	"github.com/restolab/staffpoint-backend-go/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestValidateInsideRadius(t *testing.T) {
	site := Site{Latitude: -6.2, Longitude: 106.8, RadiusMeters: 100}
	assert.Equal(t, StatusValid, Validate(-6.2, 106.8, site))
}

func TestValidateExactlyAtRadiusIsValid(t *testing.T) {
	site := Site{Latitude: -6.2, Longitude: 106.8}
	lat, lon := -6.2, 106.801

	// Set the radius to the exact haversine distance of the sample point; the
	// boundary itself is inside the fence.
	site.RadiusMeters = utils.CalculateHaversineDistance(lat, lon, site.Latitude, site.Longitude)
	assert.Equal(t, StatusValid, Validate(lat, lon, site))

	// The smallest shrink of the radius flips the same point outside.
	site.RadiusMeters -= 0.001
	assert.Equal(t, StatusInvalid, Validate(lat, lon, site))
}

func TestValidateOutsideRadius(t *testing.T) {
	site := Site{Latitude: -6.2, Longitude: 106.8, RadiusMeters: 100}
	// Roughly a kilometer east
	assert.Equal(t, StatusInvalid, Validate(-6.2, 106.809, site))
}

func TestEvaluateErrorIsNeverValid(t *testing.T) {
	site := Site{Latitude: -6.2, Longitude: 106.8, RadiusMeters: 1e9}

	// Even a sample whose coordinates would trivially pass must report ERROR
	// when the fix failed.
	sample := Sample{Latitude: -6.2, Longitude: 106.8, Err: errors.New("gps timeout")}
	assert.Equal(t, StatusError, Evaluate(sample, site))
}

func TestEvaluateDelegatesToValidate(t *testing.T) {
	site := Site{Latitude: -6.2, Longitude: 106.8, RadiusMeters: 100}

	assert.Equal(t, StatusValid, Evaluate(Sample{Latitude: -6.2, Longitude: 106.8}, site))
	assert.Equal(t, StatusInvalid, Evaluate(Sample{Latitude: -6.3, Longitude: 106.8}, site))
}

func TestValidateSamplesAreIndependent(t *testing.T) {
	// No hysteresis: a point at the boundary judged twice gives the same
	// answer both times, and moving it out and back flips cleanly.
	site := Site{Latitude: 0, Longitude: 0, RadiusMeters: 150}

	inside := Validate(0, 0.001, site)
	outside := Validate(0, 0.002, site)
	assert.Equal(t, StatusValid, inside)
	assert.Equal(t, StatusInvalid, outside)
	assert.Equal(t, inside, Validate(0, 0.001, site))
}
