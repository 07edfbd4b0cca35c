// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"

	"github.com/paulmach/orb"
)

// DefaultAllowedRadiusMeters applies when a checkpoint has coordinates but no usable radius.
const DefaultAllowedRadiusMeters = 30.0

// Checkpoint is a physical patrol location. Coordinates are optional; checkpoints created before
// GPS capture existed have none and are never geofenced.
type Checkpoint struct {
	ID            CheckpointID `json:"id"`
	Name          string       `json:"name"`
	Location      string       `json:"location"`
	Description   string       `json:"description"`
	Latitude      *float64     `json:"latitude,omitempty"`
	Longitude     *float64     `json:"longitude,omitempty"`
	AllowedRadius *float64     `json:"allowed_radius,omitempty"`
	GPSAccuracy   *float64     `json:"gps_accuracy,omitempty"` // accuracy reported when the checkpoint was captured
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// Point returns the checkpoint position, or false when it has no finite coordinates.
func (c *Checkpoint) Point() (orb.Point, bool) {
	if c.Latitude == nil || c.Longitude == nil {
		return orb.Point{}, false
	}
	lat, lng := *c.Latitude, *c.Longitude
	if !isFinite(lat) || !isFinite(lng) {
		return orb.Point{}, false
	}

	return orb.Point{lng, lat}, true
}

// RadiusOr returns the stored allowed radius, or def when it is missing, NaN or negative.
func (c *Checkpoint) RadiusOr(def float64) float64 {
	if c.AllowedRadius == nil {
		return def
	}
	r := *c.AllowedRadius
	if !isFinite(r) || r < 0 {
		return def
	}

	return r
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
