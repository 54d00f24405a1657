package components

import (
	cfg "github.com/koopaeng/koopa-engine/config"
	"github.com/yohamta/donburi"
)

// AudioData queues SFX emitted by gameplay systems for the audio system to
// drain. Gameplay never touches the audio device directly, so the whole
// simulation runs headless in tests.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
