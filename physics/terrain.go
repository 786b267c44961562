package physics

import (
	"fmt"
	"log"
	"math"

	"github.com/automoto/strider/gamemath"
	"github.com/automoto/strider/terrain"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Slabs are registered in resolv space at spaceScale units per world unit.
// Query probes are padded by probePad space units so candidates near cell
// edges are never missed.
const (
	spaceScale = 100
	cellSize   = 50
	probePad   = 2
)

// Hit is the result of a ray cast against terrain.
type Hit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

// Terrain answers ground queries against the slabs of a terrain map.
// Slabs live in a resolv Space laid over the XZ plane; the space only narrows
// candidates and the exact tests run against the slab planes.
// A Terrain is not safe for concurrent use.
type Terrain struct {
	Space *resolv.Space
	Map   *terrain.Map

	slabs []terrain.Slab
	probe *resolv.Object
}

// NewTerrain builds a queryable world from m.
func NewTerrain(m *terrain.Map) (*Terrain, error) {
	if m == nil || len(m.Slabs) == 0 {
		return nil, fmt.Errorf("new terrain: map has no slabs")
	}

	width, depth := m.Width, m.Depth
	for _, s := range m.Slabs {
		width = math.Max(width, s.X+s.Width)
		depth = math.Max(depth, s.Z+s.Depth)
	}
	space := resolv.NewSpace(toSpace(width)+cellSize, toSpace(depth)+cellSize, cellSize, cellSize)

	t := &Terrain{
		Space: space,
		Map:   m,
		slabs: append([]terrain.Slab(nil), m.Slabs...),
	}
	for i := range t.slabs {
		s := &t.slabs[i]
		obj := resolv.NewObject(s.X*spaceScale, s.Z*spaceScale, s.Width*spaceScale, s.Depth*spaceScale, s.Layer)
		obj.Data = s
		space.Add(obj)
	}

	t.probe = resolv.NewObject(0, 0, probePad, probePad)
	space.Add(t.probe)

	log.Printf("[physics] terrain %q: %d slabs, %.1fx%.1f units", m.Name, len(t.slabs), width, depth)
	return t, nil
}

// candidates returns slabs on layer whose cells touch the XZ rectangle.
func (t *Terrain) candidates(minX, minZ, maxX, maxZ float64, layer string) []*terrain.Slab {
	t.probe.X = minX*spaceScale - probePad
	t.probe.Y = minZ*spaceScale - probePad
	t.probe.W = (maxX-minX)*spaceScale + 2*probePad
	t.probe.H = (maxZ-minZ)*spaceScale + 2*probePad
	t.probe.Update()

	check := t.probe.Check(0, 0, layer)
	if check == nil {
		return nil
	}
	objs := check.ObjectsByTags(layer)
	out := make([]*terrain.Slab, 0, len(objs))
	for _, obj := range objs {
		if s, ok := obj.Data.(*terrain.Slab); ok {
			out = append(out, s)
		}
	}
	return out
}

func toSpace(v float64) int {
	return int(math.Ceil(v * spaceScale))
}

// CheckSphere reports whether a sphere overlaps any slab on layer.
// Slabs are solid below their surface.
func (t *Terrain) CheckSphere(center mgl64.Vec3, radius float64, layer string) bool {
	x, z := center.X(), center.Z()
	for _, s := range t.candidates(x-radius, z-radius, x+radius, z+radius, layer) {
		if sphereTouchesSlab(s, center, radius) {
			return true
		}
	}
	return false
}

func sphereTouchesSlab(s *terrain.Slab, center mgl64.Vec3, radius float64) bool {
	n := s.Normal()
	origin := mgl64.Vec3{s.X, s.Height, s.Z}
	d := center.Sub(origin).Dot(n)

	// Closest point on the infinite plane, if it lies over the footprint.
	foot := center.Sub(n.Mul(d))
	if s.Contains(foot.X(), foot.Z()) {
		return d <= radius
	}

	cx, cz := s.Clamp(center.X(), center.Z())
	edge := mgl64.Vec3{cx, s.HeightAt(cx, cz), cz}
	if center.Sub(edge).Len() <= radius {
		return true
	}
	// Centre buried under the surface near an edge.
	return s.Contains(center.X(), center.Z()) && center.Y() <= s.HeightAt(center.X(), center.Z())
}

// RaycastDown casts a ray straight down from origin and returns the highest
// surface on layer within maxDist.
func (t *Terrain) RaycastDown(origin mgl64.Vec3, maxDist float64, layer string) (Hit, bool) {
	x, z := origin.X(), origin.Z()
	var best Hit
	found := false
	for _, s := range t.candidates(x, z, x, z, layer) {
		if !s.Contains(x, z) {
			continue
		}
		h := s.HeightAt(x, z)
		dist := origin.Y() - h
		if dist < 0 || dist > maxDist {
			continue
		}
		if !found || dist < best.Distance {
			best = Hit{
				Point:    mgl64.Vec3{x, h, z},
				Normal:   s.Normal(),
				Distance: dist,
			}
			found = true
		}
	}
	return best, found
}

// HeightAt returns the highest surface height on layer at (x, z).
func (t *Terrain) HeightAt(x, z float64, layer string) (float64, bool) {
	best := math.Inf(-1)
	for _, s := range t.candidates(x, z, x, z, layer) {
		if s.Contains(x, z) {
			best = math.Max(best, s.HeightAt(x, z))
		}
	}
	if math.IsInf(best, -1) {
		return 0, false
	}
	return best, true
}

// SpawnPose returns the body position for spawn index i resting on the surface.
func (t *Terrain) SpawnPose(i int, layer string, clearance float64) (mgl64.Vec3, float64, error) {
	if len(t.Map.Spawns) == 0 {
		return mgl64.Vec3{}, 0, fmt.Errorf("terrain %q has no spawn points", t.Map.Name)
	}
	sp := t.Map.Spawns[i%len(t.Map.Spawns)]
	y, ok := t.HeightAt(sp.X, sp.Z, layer)
	if !ok {
		return mgl64.Vec3{}, 0, fmt.Errorf("spawn %d at (%.2f, %.2f) is not over %s", sp.Index, sp.X, sp.Z, layer)
	}
	return mgl64.Vec3{sp.X, y, sp.Z}.Add(gamemath.Up.Mul(clearance)), sp.Yaw, nil
}
