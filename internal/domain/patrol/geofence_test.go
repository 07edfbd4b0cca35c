package patrol

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patrol/internal/domain/entity"
)

func fptr(v float64) *float64 { return &v }

func checkpointAt(lat, lng float64, radius *float64) *entity.Checkpoint {
	return &entity.Checkpoint{ID: "cp-1", Name: "Gate", Latitude: fptr(lat), Longitude: fptr(lng), AllowedRadius: radius}
}

func TestEvaluateGeofence_Scenarios(t *testing.T) {
	cp := checkpointAt(0, 0, fptr(10))

	t.Run("out of range without accuracy", func(t *testing.T) {
		v := EvaluateGeofence(GeofenceInput{GuardLatitude: fptr(0), GuardLongitude: fptr(0.0001), Accuracy: fptr(0), Checkpoint: cp})
		assert.Equal(t, entity.ScanResultFailed, v.Result)
		require.NotNil(t, v.FailureReason)
		assert.Contains(t, *v.FailureReason, "out of range")
		assert.Contains(t, *v.FailureReason, "exceeds allowed radius of 10m")
		require.NotNil(t, v.DistanceMeters)
		assert.InDelta(t, 11.1, *v.DistanceMeters, 0.1)
	})

	t.Run("accuracy margin brings guard inside", func(t *testing.T) {
		v := EvaluateGeofence(GeofenceInput{GuardLatitude: fptr(0), GuardLongitude: fptr(0.0001), Accuracy: fptr(5), Checkpoint: cp})
		assert.Equal(t, entity.ScanResultPassed, v.Result)
		assert.Nil(t, v.FailureReason)
		require.NotNil(t, v.EffectiveDistance)
		assert.InDelta(t, 6.1, *v.EffectiveDistance, 0.1)
	})
}

func TestEvaluateGeofence_NoCoordinates(t *testing.T) {
	cp := &entity.Checkpoint{ID: "legacy", Name: "Legacy"}

	positions := []struct {
		name     string
		lat, lng *float64
	}{
		{"missing position", nil, nil},
		{"far away", fptr(51.5), fptr(-0.12)},
		{"nan position", fptr(math.NaN()), fptr(1)},
	}
	for _, p := range positions {
		t.Run(p.name, func(t *testing.T) {
			v := EvaluateGeofence(GeofenceInput{GuardLatitude: p.lat, GuardLongitude: p.lng, Checkpoint: cp})
			assert.Equal(t, entity.ScanResultPassed, v.Result)
			assert.Nil(t, v.DistanceMeters)
			assert.Nil(t, v.FailureReason)
		})
	}
}

func TestEvaluateGeofence_LocationMissing(t *testing.T) {
	cp := checkpointAt(25.03, 121.56, fptr(20))

	for _, tc := range []struct {
		name     string
		lat, lng *float64
	}{
		{"nil latitude", nil, fptr(121.56)},
		{"nil longitude", fptr(25.03), nil},
		{"nan latitude", fptr(math.NaN()), fptr(121.56)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v := EvaluateGeofence(GeofenceInput{GuardLatitude: tc.lat, GuardLongitude: tc.lng, Checkpoint: cp})
			assert.Equal(t, entity.ScanResultFailed, v.Result)
			require.NotNil(t, v.FailureReason)
			assert.Equal(t, ReasonLocationMissing, *v.FailureReason)
		})
	}
}

func TestEvaluateGeofence_ExactPositionAlwaysPasses(t *testing.T) {
	for _, r := range []float64{0, 0.5, 30, 1000} {
		cp := checkpointAt(48.8584, 2.2945, fptr(r))
		v := EvaluateGeofence(GeofenceInput{GuardLatitude: fptr(48.8584), GuardLongitude: fptr(2.2945), Accuracy: fptr(0), Checkpoint: cp})
		assert.Equal(t, entity.ScanResultPassed, v.Result, "radius %v", r)
	}
}

func TestEvaluateGeofence_AccuracyProperty(t *testing.T) {
	cp := checkpointAt(0, 0, fptr(5))
	guardLat, guardLng := 0.0, 0.0003
	p, ok := cp.Point()
	require.True(t, ok)
	distance := Haversine(p, orb.Point{guardLng, guardLat})

	for _, acc := range []float64{0, distance, distance + 1} {
		v := EvaluateGeofence(GeofenceInput{GuardLatitude: fptr(guardLat), GuardLongitude: fptr(guardLng), Accuracy: fptr(acc), Checkpoint: cp})
		want := math.Max(0, distance-acc) <= 5
		assert.Equal(t, want, v.Passed(), "accuracy %v", acc)
	}
}

func TestEvaluateGeofence_RadiusDefaults(t *testing.T) {
	// ~22m away
	lat, lng := fptr(0.0), fptr(0.0002)

	tests := []struct {
		name   string
		radius *float64
		def    float64
		want   entity.ScanResult
		radOut float64
	}{
		{"missing radius uses 30m", nil, 0, entity.ScanResultPassed, 30},
		{"nan radius uses 30m", fptr(math.NaN()), 0, entity.ScanResultPassed, 30},
		{"negative radius uses 30m", fptr(-1), 0, entity.ScanResultPassed, 30},
		{"configured default", nil, 15, entity.ScanResultFailed, 15},
		{"zero radius honoured", fptr(0), 0, entity.ScanResultFailed, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := EvaluateGeofence(GeofenceInput{
				GuardLatitude: lat, GuardLongitude: lng,
				Checkpoint:    checkpointAt(0, 0, tc.radius),
				DefaultRadius: tc.def,
			})
			assert.Equal(t, tc.want, v.Result)
			require.NotNil(t, v.RequiredRadius)
			assert.InDelta(t, tc.radOut, *v.RequiredRadius, 1e-9)
		})
	}
}

func TestEvaluateGeofence_InvalidAccuracyIsIgnored(t *testing.T) {
	cp := checkpointAt(0, 0, fptr(10))
	for _, acc := range []*float64{nil, fptr(math.NaN()), fptr(math.Inf(1)), fptr(-20)} {
		v := EvaluateGeofence(GeofenceInput{GuardLatitude: fptr(0), GuardLongitude: fptr(0.0001), Accuracy: acc, Checkpoint: cp})
		assert.Equal(t, entity.ScanResultFailed, v.Result)
		assert.Zero(t, v.AccuracyUsed)
	}
}
