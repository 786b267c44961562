package components

import (
	"github.com/automoto/strider/animation"
	"github.com/yohamta/donburi"
)

type AnimatorData struct {
	Params *animation.Params
}

var Animator = donburi.NewComponentType[AnimatorData]()

// BodyBobData holds the bob animator and the offset it produced last frame.
type BodyBobData struct {
	Bob    *animation.BodyBob
	Offset float64
}

var BodyBob = donburi.NewComponentType[BodyBobData]()
