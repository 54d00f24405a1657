package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCoin
	SoundJump
	SoundKick
	SoundStomp
	SoundPowerup
	SoundDash
	SoundHurt
)

// BeepSpec describes one synthesized square-wave effect.
type BeepSpec struct {
	Freq float64 // Hz
	Ms   int     // duration
	Vol  float64 // 0.0 - 1.0
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	Beeps      map[SoundID]BeepSpec
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		Beeps: map[SoundID]BeepSpec{
			SoundCoin:    {Freq: 880, Ms: 80, Vol: 0.6},
			SoundJump:    {Freq: 523, Ms: 100, Vol: 0.4},
			SoundKick:    {Freq: 660, Ms: 50, Vol: 0.5},
			SoundStomp:   {Freq: 392, Ms: 100, Vol: 0.5},
			SoundPowerup: {Freq: 660, Ms: 150, Vol: 0.6},
			SoundDash:    {Freq: 784, Ms: 200, Vol: 0.7},
			// The original reuses the stomp beep when the player is hurt.
			SoundHurt: {Freq: 392, Ms: 100, Vol: 0.5},
		},
	}
}
