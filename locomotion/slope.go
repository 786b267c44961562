package locomotion

import (
	"github.com/automoto/strider/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// SlopeClassifier classifies ground by its normal.
type SlopeClassifier struct {
	MaxAngle float64 // degrees
	Deadzone float64 // movement magnitude treated as no input
}

// Angle returns the incline of normal from world up in degrees.
func (SlopeClassifier) Angle(normal mgl64.Vec3) float64 {
	return gamemath.Angle(normal, gamemath.Up)
}

// Steep reports grounded contact with a surface steeper than MaxAngle.
func (c SlopeClassifier) Steep(s GroundSample) bool {
	if !s.Grounded {
		return false
	}
	return c.Angle(s.Normal) > c.MaxAngle
}

// SteepWhileMoving reports steep ground while the robot is trying to move
// across it. Standing still on the same slope is handled by slope gravity.
func (c SlopeClassifier) SteepWhileMoving(s GroundSample, dir mgl64.Vec3) bool {
	if dir.Len() < c.Deadzone {
		return false
	}
	return c.Steep(s)
}
