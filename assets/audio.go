package assets

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/automoto/strider/config"
)

// CueBank synthesizes and caches one-shot cues as 16-bit little-endian
// stereo PCM, the format ebiten's audio players consume.
type CueBank struct {
	cache      map[config.SoundID][]byte
	sampleRate int
}

// NewCueBank creates a bank for the given sample rate.
func NewCueBank(sampleRate int) *CueBank {
	return &CueBank{
		cache:      make(map[config.SoundID][]byte),
		sampleRate: sampleRate,
	}
}

// Preload synthesizes every configured cue.
func (b *CueBank) Preload() error {
	for id := range config.Cues {
		if _, err := b.PCM(id); err != nil {
			return err
		}
	}
	return nil
}

// PCM returns the cached samples for id, synthesizing them on first use.
func (b *CueBank) PCM(id config.SoundID) ([]byte, error) {
	if pcm, ok := b.cache[id]; ok {
		return pcm, nil
	}
	cue, ok := config.Cues[id]
	if !ok {
		return nil, fmt.Errorf("no cue configured for sound %v", id)
	}
	pcm := SynthesizeCue(cue, b.sampleRate)
	if len(pcm) == 0 {
		return nil, fmt.Errorf("cue %v is empty", id)
	}
	b.cache[id] = pcm
	return pcm, nil
}

// SynthesizeCue renders a sine sweep from StartHz to EndHz with a linear
// fade out.
func SynthesizeCue(cue config.CueConfig, sampleRate int) []byte {
	n := int(cue.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		hz := cue.StartHz + (cue.EndHz-cue.StartHz)*t
		phase += 2 * math.Pi * hz / float64(sampleRate)
		s := int16(math.Sin(phase) * (1 - t) * 0.5 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
