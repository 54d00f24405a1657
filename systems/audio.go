package systems

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"

	"github.com/koopaeng/koopa-engine/assets"
	"github.com/koopaeng/koopa-engine/components"
	cfg "github.com/koopaeng/koopa-engine/config"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSynth        *assets.BeepSynth
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalSynth = assets.NewBeepSynth(globalAudioContext)
	})
}

// UpdateAudio drains queued SFX through the synth. This is the only system
// that touches the audio device; gameplay just queues SoundIDs, so the
// simulation stays headless in tests.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}

	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		if spec, ok := cfg.Audio.Beeps[soundID]; ok {
			globalSynth.Play(spec.Freq, spec.Ms, spec.Vol)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
