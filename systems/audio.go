package systems

import (
	"bytes"
	"log"
	"math"
	"sync"

	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/sound"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalDronePlayer  *audio.Player
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	globalMusicVolume  = cfg.Audio.DefaultMusicVol
	globalVolumeDB     = cfg.Audio.DefaultVolumeDB
	globalDroneMuted   bool
	audioInitOnce      sync.Once

	// Synthesized PCM per sound; nil marks a cue that failed to render
	cueCache = map[cfg.SoundID][]byte{}
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// PreloadAllSFX synthesizes every cue at startup to avoid a hitch on first play.
func PreloadAllSFX() {
	for id := range cfg.Sound.Cues {
		cueBytes(id)
	}
}

// UpdateAudio applies volume keys and plays the sound effects queued since
// the last tick.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionVolumeUp).JustPressed {
		SetVolumeDB(globalVolumeDB + cfg.Audio.VolumeStepDB)
	}
	if GetAction(input, cfg.ActionVolumeDown).JustPressed {
		SetVolumeDB(globalVolumeDB - cfg.Audio.VolumeStepDB)
	}
	if GetAction(input, cfg.ActionMute).JustPressed {
		ToggleMute()
	}

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func cueBytes(soundID cfg.SoundID) []byte {
	if pcm, ok := cueCache[soundID]; ok {
		return pcm
	}
	pcm, err := sound.Synthesize(soundID)
	if err != nil {
		log.Printf("[audio] %v", err)
		pcm = nil
	}
	cueCache[soundID] = pcm
	return pcm
}

func playSFX(soundID cfg.SoundID) {
	gain := globalSFXVolume * DBToGain(globalVolumeDB)
	if gain <= 0 {
		return
	}
	pcm := cueBytes(soundID)
	if pcm == nil {
		return
	}

	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(math.Min(gain, 1))
	player.Play()
}

// StartDrone starts the looping soundtrack if it is not already playing.
func StartDrone() {
	initGlobalAudio()
	if globalDronePlayer != nil {
		return
	}

	pcm, err := sound.Drone()
	if err != nil {
		log.Printf("[audio] drone disabled: %v", err)
		return
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := globalAudioContext.NewPlayer(loop)
	if err != nil {
		log.Printf("[audio] drone disabled: %v", err)
		return
	}
	globalDronePlayer = player
	applyDroneVolume()
	if !globalDroneMuted {
		player.Play()
	}
}

// StopDrone closes the soundtrack player.
func StopDrone() {
	if globalDronePlayer != nil {
		_ = globalDronePlayer.Close()
		globalDronePlayer = nil
	}
}

// PauseDrone pauses the soundtrack
func PauseDrone() {
	if globalDronePlayer != nil {
		globalDronePlayer.Pause()
	}
}

// ResumeDrone resumes the soundtrack unless it is muted
func ResumeDrone() {
	if globalDronePlayer != nil && !globalDroneMuted {
		globalDronePlayer.Play()
	}
}

// ToggleMute silences or restores the soundtrack. Sound effects keep playing.
func ToggleMute() {
	globalDroneMuted = !globalDroneMuted
	if globalDroneMuted {
		PauseDrone()
	} else {
		ResumeDrone()
	}
}

// IsMuted reports whether the soundtrack is muted.
func IsMuted() bool {
	return globalDroneMuted
}

// SetVolumeDB sets the global volume, clamped to the configured range.
func SetVolumeDB(db float64) {
	globalVolumeDB = ClampVolumeDB(db)
	applyDroneVolume()
}

// GetVolumeDB returns the global volume in decibels.
func GetVolumeDB() float64 {
	return globalVolumeDB
}

// ClampVolumeDB keeps db within [MinVolumeDB, MaxVolumeDB].
func ClampVolumeDB(db float64) float64 {
	return math.Max(cfg.Audio.MinVolumeDB, math.Min(cfg.Audio.MaxVolumeDB, db))
}

// DBToGain converts decibels to a linear amplitude factor. The bottom of
// the range is treated as silence.
func DBToGain(db float64) float64 {
	if db <= cfg.Audio.MinVolumeDB {
		return 0
	}
	return math.Pow(10, db/20)
}

func applyDroneVolume() {
	if globalDronePlayer != nil {
		globalDronePlayer.SetVolume(math.Min(globalMusicVolume*DBToGain(globalVolumeDB), 1))
	}
}

// PlaySFX queues a sound effect to be played by UpdateAudio
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

// PlayChord queues several sound effects to start on the same tick
func PlayChord(e *ecs.ECS, ids []cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, ids...)
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
