package geofence

import (
	"github.com/restolab/staffpoint-backend-go/internal/pkg/utils"
)

// Status of one position sample against the configured site.
type Status string

const (
	StatusValid   Status = "VALID"
	StatusInvalid Status = "INVALID"
	// StatusError means positioning was unavailable. It is never equivalent
	// to StatusValid.
	StatusError Status = "ERROR"
)

// Site is the admin-configured geofence center, read-only to the engine.
type Site struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// Sample is one position reading. Err is set when the positioning source
// failed to produce a fix.
type Sample struct {
	Latitude  float64
	Longitude float64
	Err       error
}

// Validate evaluates a single coordinate against the site radius. Each sample
// is judged independently; a device oscillating at the boundary will flicker
// between VALID and INVALID, and that is the intended behavior.
func Validate(lat, lon float64, site Site) Status {
	distance := utils.CalculateHaversineDistance(lat, lon, site.Latitude, site.Longitude)
	if distance <= site.RadiusMeters {
		return StatusValid
	}
	return StatusInvalid
}

// Evaluate maps a sample to a status, reporting StatusError for failed fixes.
func Evaluate(sample Sample, site Site) Status {
	if sample.Err != nil {
		return StatusError
	}
	return Validate(sample.Latitude, sample.Longitude, site)
}
