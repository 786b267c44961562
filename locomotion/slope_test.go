package locomotion

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestSlopeClassifier(t *testing.T) {
	c := SlopeClassifier{MaxAngle: 45, Deadzone: 0.1}
	still := mgl64.Vec3{}
	moving := mgl64.Vec3{0, 0, 0.5}

	tests := []struct {
		name             string
		sample           GroundSample
		dir              mgl64.Vec3
		steep            bool
		steepWhileMoving bool
	}{
		{"flat", GroundSample{Grounded: true, Normal: tilted(0)}, moving, false, false},
		{"gentle", GroundSample{Grounded: true, Normal: tilted(10)}, moving, false, false},
		{"at limit", GroundSample{Grounded: true, Normal: tilted(44.9)}, moving, false, false},
		{"steep standing", GroundSample{Grounded: true, Normal: tilted(60)}, still, true, false},
		{"steep moving", GroundSample{Grounded: true, Normal: tilted(60)}, moving, true, true},
		{"steep airborne", GroundSample{Grounded: false, Normal: tilted(60)}, moving, false, false},
		{"steep below deadzone", GroundSample{Grounded: true, Normal: tilted(60)}, mgl64.Vec3{0.05, 0, 0}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.steep, c.Steep(tt.sample))
			assert.Equal(t, tt.steepWhileMoving, c.SteepWhileMoving(tt.sample, tt.dir))
		})
	}
}

func TestSlopeAngle(t *testing.T) {
	c := SlopeClassifier{MaxAngle: 45}
	assert.InDelta(t, 0, c.Angle(tilted(0)), 1e-9)
	assert.InDelta(t, 30, c.Angle(tilted(30)), 1e-9)
	assert.InDelta(t, 60, c.Angle(tilted(60)), 1e-9)
}
