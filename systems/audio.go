package systems

import (
	"log"
	"sync"

	"github.com/automoto/strider/archetypes"
	"github.com/automoto/strider/assets"
	"github.com/automoto/strider/components"
	cfg "github.com/automoto/strider/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// AudioPlayer plays a one-shot cue at a final volume.
type AudioPlayer interface {
	Play(sound cfg.SoundID, volume float64)
}

// Global audio state, shared across all scenes. Headless runs never install
// a player, so queued cues are only counted.
var (
	audioPlayer AudioPlayer
	audioMu     sync.Mutex
)

// SetAudioPlayer installs the player UpdateAudio hands cues to. Nil disables
// playback.
func SetAudioPlayer(p AudioPlayer) {
	audioMu.Lock()
	defer audioMu.Unlock()
	audioPlayer = p
}

func currentAudioPlayer() AudioPlayer {
	audioMu.Lock()
	defer audioMu.Unlock()
	return audioPlayer
}

// UpdateAudio processes pending SFX
func UpdateAudio(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	player := currentAudioPlayer()
	for _, req := range audioData.PendingSFX {
		volume := req.Volume * audioData.SFXVolume
		if player != nil && volume > 0 {
			player.Play(req.Sound, volume)
		}
		audioData.Played++
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID, volume float64) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, components.SFXRequest{
		Sound:  sound,
		Volume: volume,
	})
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	GetOrCreateAudio(e).SFXVolume = volume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = archetypes.Audio.Spawn(e)
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  cfg.Audio.DefaultSFXVol,
			PendingSFX: make([]components.SFXRequest, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// AudioQueue is the locomotion.AudioSink robots in this ECS share.
type AudioQueue struct {
	ecs *ecs.ECS
}

func NewAudioQueue(e *ecs.ECS) AudioQueue {
	return AudioQueue{ecs: e}
}

func (q AudioQueue) PlayOneShot(sound cfg.SoundID, volume float64) {
	PlaySFX(q.ecs, sound, volume)
}

// EbitenAudio plays synthesized cues through an ebiten audio context.
type EbitenAudio struct {
	context *audio.Context
	cues    *assets.CueBank
}

var (
	ebitenAudio     *EbitenAudio
	ebitenAudioOnce sync.Once
)

// InitEbitenAudio creates the process-wide audio context (called once) and
// installs it as the audio player.
func InitEbitenAudio() *EbitenAudio {
	ebitenAudioOnce.Do(func() {
		ebitenAudio = &EbitenAudio{
			context: audio.NewContext(cfg.Audio.SampleRate),
			cues:    assets.NewCueBank(cfg.Audio.SampleRate),
		}
		if err := ebitenAudio.cues.Preload(); err != nil {
			log.Printf("[audio] preload cues: %v", err)
		}
	})
	SetAudioPlayer(ebitenAudio)
	return ebitenAudio
}

func (a *EbitenAudio) Play(sound cfg.SoundID, volume float64) {
	pcm, err := a.cues.PCM(sound)
	if err != nil {
		return
	}
	player := a.context.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()
}
