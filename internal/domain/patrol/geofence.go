// Package patrol holds the pure decision logic of the service: geofence verdicts, assignment
// baselines, dashboard metrics and the admin notification feed. Nothing in here performs I/O.
package patrol

import (
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb"

	"patrol/internal/domain/entity"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine distance.
const EarthRadiusMeters = 6371000.0

// ReasonLocationMissing is recorded when a geofenced checkpoint is scanned without a position.
const ReasonLocationMissing = "Guard location missing"

// GeofenceInput is everything the evaluator looks at.
type GeofenceInput struct {
	GuardLatitude  *float64
	GuardLongitude *float64
	Accuracy       *float64
	Checkpoint     *entity.Checkpoint
	DefaultRadius  float64 // used when the checkpoint radius is unusable; <= 0 means 30 m
}

// Verdict is the outcome of a geofence evaluation.
type Verdict struct {
	Result            entity.ScanResult
	FailureReason     *string
	DistanceMeters    *float64 // raw haversine distance, nil when no geofencing happened
	EffectiveDistance *float64
	AccuracyUsed      float64
	RequiredRadius    *float64
}

// Passed reports whether the verdict allows the scan.
func (v Verdict) Passed() bool {
	return v.Result == entity.ScanResultPassed
}

// EvaluateGeofence decides whether a guard-reported position is close enough to a checkpoint.
// Reported accuracy is subtracted from the distance, so a larger accuracy can only help the guard.
func EvaluateGeofence(in GeofenceInput) Verdict {
	if in.Checkpoint == nil {
		return Verdict{Result: entity.ScanResultPassed}
	}
	target, ok := in.Checkpoint.Point()
	if !ok {
		return Verdict{Result: entity.ScanResultPassed}
	}

	def := in.DefaultRadius
	if def <= 0 || !isFinite(def) {
		def = entity.DefaultAllowedRadiusMeters
	}
	radius := in.Checkpoint.RadiusOr(def)

	guard, ok := guardPoint(in.GuardLatitude, in.GuardLongitude)
	if !ok {
		return Verdict{
			Result:         entity.ScanResultFailed,
			FailureReason:  ptr(ReasonLocationMissing),
			RequiredRadius: ptr(radius),
		}
	}

	accuracy := sanitizeAccuracy(in.Accuracy)
	distance := Haversine(guard, target)
	effective := math.Max(0, distance-accuracy)

	v := Verdict{
		Result:            entity.ScanResultPassed,
		DistanceMeters:    ptr(distance),
		EffectiveDistance: ptr(effective),
		AccuracyUsed:      accuracy,
		RequiredRadius:    ptr(radius),
	}
	if effective > radius {
		v.Result = entity.ScanResultFailed
		v.FailureReason = ptr(outOfRangeReason(effective, accuracy, radius))
	}

	return v
}

// Haversine returns the great-circle distance in meters between two lon/lat points.
func Haversine(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLng := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func outOfRangeReason(effective, accuracy, radius float64) string {
	return fmt.Sprintf(
		"Guard is out of range: %.1fm from checkpoint (GPS accuracy ±%.1fm) exceeds allowed radius of %sm",
		effective, accuracy, strconv.FormatFloat(radius, 'f', -1, 64),
	)
}

func guardPoint(lat, lng *float64) (orb.Point, bool) {
	if lat == nil || lng == nil || !isFinite(*lat) || !isFinite(*lng) {
		return orb.Point{}, false
	}

	return orb.Point{*lng, *lat}, true
}

func sanitizeAccuracy(acc *float64) float64 {
	if acc == nil || !isFinite(*acc) || *acc < 0 {
		return 0
	}

	return *acc
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func ptr[T any](v T) *T {
	return &v
}
