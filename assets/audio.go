// Package assets synthesizes the game's placeholder art and sound at
// startup. Nothing is loaded from disk; sprites are drawn procedurally and
// SFX are generated square waves, matching the engine's beep aesthetic.
package assets

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// BeepSynth generates and caches square-wave PCM clips and plays them
// through a shared audio context.
type BeepSynth struct {
	context *audio.Context
	cache   map[beepKey][]byte
}

type beepKey struct {
	freq float64
	ms   int
	vol  float64
}

// NewBeepSynth creates a synth bound to the given context.
func NewBeepSynth(ctx *audio.Context) *BeepSynth {
	return &BeepSynth{
		context: ctx,
		cache:   make(map[beepKey][]byte),
	}
}

// Play fires a one-shot 50%-duty square beep. Clips are rendered once and
// cached; players are cheap throwaway wrappers over the cached bytes.
func (s *BeepSynth) Play(freq float64, ms int, vol float64) {
	key := beepKey{freq: freq, ms: ms, vol: vol}
	pcm, ok := s.cache[key]
	if !ok {
		pcm = renderSquare(s.context.SampleRate(), freq, ms, vol)
		s.cache[key] = pcm
	}
	p := s.context.NewPlayerFromBytes(pcm)
	p.Play()
}

// renderSquare produces 16-bit little-endian stereo PCM of a square wave.
func renderSquare(sampleRate int, freq float64, ms int, vol float64) []byte {
	samples := sampleRate * ms / 1000
	out := make([]byte, samples*4) // 2 bytes per sample, 2 channels

	for i := 0; i < samples; i++ {
		phase := float64(i) * freq / float64(sampleRate)
		v := -vol
		if phase-float64(int(phase)) < 0.5 {
			v = vol
		}
		sample := int16(v * 32767)

		lo := byte(sample)
		hi := byte(sample >> 8)
		out[i*4] = lo
		out[i*4+1] = hi
		out[i*4+2] = lo
		out[i*4+3] = hi
	}

	return out
}
