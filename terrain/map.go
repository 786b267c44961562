// Package terrain provides TMX ground-map parsing. It has no dependencies on
// ebitengine, donburi, or resolv.
package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Map holds the ground geometry parsed from a TMX file, in world units.
// X maps to world X, the TMX Y axis maps to world Z.
type Map struct {
	Name   string
	Slabs  []Slab
	Spawns []Spawn
	Width  float64
	Depth  float64
}

// Slab is a planar ground patch over an axis-aligned XZ rectangle.
// Its surface height is Height at (X, Z), rising GradeX per unit along X
// and GradeZ per unit along Z.
type Slab struct {
	X, Z         float64
	Width, Depth float64
	Height       float64
	GradeX       float64
	GradeZ       float64
	Layer        string
}

// Spawn represents a robot spawn location.
type Spawn struct {
	X, Z  float64
	Yaw   float64 // degrees
	Index int
}

// Contains reports whether (x, z) lies within the slab's footprint.
func (s Slab) Contains(x, z float64) bool {
	return x >= s.X && x <= s.X+s.Width && z >= s.Z && z <= s.Z+s.Depth
}

// HeightAt returns the surface height at (x, z), extrapolating the plane
// outside the footprint.
func (s Slab) HeightAt(x, z float64) float64 {
	return s.Height + s.GradeX*(x-s.X) + s.GradeZ*(z-s.Z)
}

// Normal returns the unit surface normal.
func (s Slab) Normal() mgl64.Vec3 {
	return mgl64.Vec3{-s.GradeX, 1, -s.GradeZ}.Normalize()
}

// Clamp returns the point of the footprint closest to (x, z).
func (s Slab) Clamp(x, z float64) (float64, float64) {
	return math.Max(s.X, math.Min(x, s.X+s.Width)), math.Max(s.Z, math.Min(z, s.Z+s.Depth))
}

// SlopeDegrees returns the slab's incline from horizontal.
func (s Slab) SlopeDegrees() float64 {
	return mgl64.RadToDeg(math.Atan(math.Hypot(s.GradeX, s.GradeZ)))
}
