package components

import (
	cfg "github.com/automoto/strider/config"
	"github.com/yohamta/donburi"
)

// SFXRequest is a queued one-shot cue.
type SFXRequest struct {
	Sound  cfg.SoundID
	Volume float64 // 0.0 - 1.0, scaled by SFXVolume when played
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []SFXRequest
	Played     int // cues handed to the player so far
}

var Audio = donburi.NewComponentType[AudioData]()
