package components

import (
	cfg "github.com/automoto/hexcloud/config"
	"github.com/yohamta/donburi"
)

// AudioData stores per-world audio requests (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
