package systems

import (
	"image/color"

	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/automoto/strider/legs"
	"github.com/automoto/strider/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	colorSlab     = color.RGBA{70, 70, 80, 255}
	colorSteep    = color.RGBA{140, 50, 50, 255}
	colorHazard   = color.RGBA{150, 110, 30, 255}
	colorOutline  = color.RGBA{30, 30, 36, 255}
	colorBody     = color.RGBA{0, 170, 255, 255}
	colorAirborne = color.RGBA{255, 200, 0, 255}
	colorResting  = color.RGBA{220, 220, 220, 255}
	colorStepping = color.RGBA{0, 255, 120, 255}
	colorTarget   = color.RGBA{255, 0, 160, 255}
)

// view maps world XZ to screen pixels, centred on the camera. World +Z is
// screen up.
type view struct {
	cx, cz float64
	w, h   float64
	scale  float64
}

func newView(ecs *ecs.ECS, screen *ebiten.Image) view {
	v := view{
		w:     float64(screen.Bounds().Dx()),
		h:     float64(screen.Bounds().Dy()),
		scale: cfg.C.Scale,
	}
	camera := GetOrCreateCamera(ecs)
	v.cx, v.cz = camera.X, camera.Z
	return v
}

func (v view) project(x, z float64) (float32, float32) {
	return float32(v.w/2 + (x-v.cx)*v.scale), float32(v.h/2 - (z-v.cz)*v.scale)
}

// DrawTerrain renders every slab, shaded by height and tinted when too steep
// to walk.
func DrawTerrain(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Terrain.First(ecs.World)
	if !ok {
		return
	}
	world := components.Terrain.Get(entry)
	v := newView(ecs, screen)
	maxSlope := cfg.Locomotion.MaxSlopeAngle

	for _, s := range world.Map.Slabs {
		x, y := v.project(s.X, s.Z+s.Depth)
		w, h := float32(s.Width*v.scale), float32(s.Depth*v.scale)

		c := colorSlab
		switch {
		case s.Layer == cfg.LayerHazard:
			c = colorHazard
		case s.SlopeDegrees() > maxSlope:
			c = colorSteep
		}
		c = shade(c, s.HeightAt(s.X+s.Width/2, s.Z+s.Depth/2))
		vector.FillRect(screen, x, y, w, h, c, false)
		vector.StrokeRect(screen, x, y, w, h, 1, colorOutline, false)
	}
}

// shade brightens c with height.
func shade(c color.RGBA, height float64) color.RGBA {
	lift := height * 20
	if lift > 80 {
		lift = 80
	}
	add := func(ch uint8) uint8 {
		v := float64(ch) + lift
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return color.RGBA{add(c.R), add(c.G), add(c.B), c.A}
}

// DrawRobots renders each robot's body, heading and feet.
func DrawRobots(ecs *ecs.ECS, screen *ebiten.Image) {
	v := newView(ecs, screen)
	tags.Robot.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.Robot.Get(e).Controller
		body := components.Body.Get(e)
		bob := components.BodyBob.Get(e)
		pos := body.Position()

		for _, st := range ctrl.Legs().Steppers {
			drawFoot(screen, v, st, pos.Y()-cfg.Physics.Clearance)
		}

		bodyColor := colorBody
		if ctrl.Airborne() {
			bodyColor = colorAirborne
		}
		radius := float32((0.35 + bob.Offset) * v.scale)
		x, y := v.project(pos.X(), pos.Z())
		vector.FillCircle(screen, x, y, radius, bodyColor, true)

		nose := pos.Add(body.Rotation().Rotate(mgl64.Vec3{0, 0, 0.6}))
		nx, ny := v.project(nose.X(), nose.Z())
		vector.StrokeLine(screen, x, y, nx, ny, 2, colorOutline, true)
	})
}

func drawFoot(screen *ebiten.Image, v view, st *legs.Stepper, groundY float64) {
	foot := st.Foot()
	fx, fy := v.project(foot.X(), foot.Z())
	c := colorResting
	if st.Phase() == legs.Stepping {
		target := st.Target()
		tx, ty := v.project(target.X(), target.Z())
		vector.StrokeLine(screen, fx, fy, tx, ty, 1, colorTarget, true)
		c = colorStepping
	}
	// Lifted feet draw larger
	r := float32((0.08 + (foot.Y()-groundY)*0.1) * v.scale)
	if r < 2 {
		r = 2
	}
	vector.FillCircle(screen, fx, fy, r, c, true)
}
