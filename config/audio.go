package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
)

var soundNames = map[SoundID]string{
	SoundNone: "none",
	SoundJump: "jump",
}

func (s SoundID) String() string {
	if name, ok := soundNames[s]; ok {
		return name
	}
	return "unknown"
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// CueConfig describes a synthesized one-shot cue
type CueConfig struct {
	StartHz  float64 // pitch at the start of the sweep
	EndHz    float64 // pitch at the end of the sweep
	Duration float64 // seconds
}

var Audio AudioConfig
var Cues map[SoundID]CueConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Cues = map[SoundID]CueConfig{
		SoundJump: {StartHz: 320, EndHz: 760, Duration: 0.12},
	}
}
