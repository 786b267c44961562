package animation

import (
	"sort"

	"github.com/automoto/strider/gamemath"
)

type dampedFloat struct {
	value    float64
	velocity float64
}

// Params is an animation parameter sink. Float parameters are smoothed toward
// the value last set, with the damp time the caller passes.
type Params struct {
	bools  map[string]bool
	floats map[string]*dampedFloat
}

func NewParams() *Params {
	return &Params{
		bools:  make(map[string]bool),
		floats: make(map[string]*dampedFloat),
	}
}

func (p *Params) SetBool(name string, v bool) {
	p.bools[name] = v
}

func (p *Params) Bool(name string) bool {
	return p.bools[name]
}

// SetFloat moves the named parameter toward v. A non-positive dampTime sets it
// directly.
func (p *Params) SetFloat(name string, v, dampTime, dt float64) {
	f, ok := p.floats[name]
	if !ok {
		f = &dampedFloat{}
		p.floats[name] = f
	}
	if dampTime <= 0 || dt <= 0 {
		f.value = v
		f.velocity = 0
		return
	}
	f.value = gamemath.SmoothDamp(f.value, v, &f.velocity, dampTime, dt)
}

func (p *Params) Float(name string) float64 {
	if f, ok := p.floats[name]; ok {
		return f.value
	}
	return 0
}

// Names lists every parameter set so far, sorted.
func (p *Params) Names() []string {
	names := make([]string, 0, len(p.bools)+len(p.floats))
	for n := range p.bools {
		names = append(names, n)
	}
	for n := range p.floats {
		if _, dup := p.bools[n]; !dup {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
