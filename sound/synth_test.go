package sound

import (
	"testing"

	cfg "github.com/automoto/hexcloud/config"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeLength(t *testing.T) {
	pcm, err := Synthesize(cfg.SoundNoteA)
	require.NoError(t, err)

	cue := cfg.Sound.Cues[cfg.SoundNoteA]
	samples := beep.SampleRate(cfg.Audio.SampleRate).N(msDuration(cue.DurationMS))
	assert.Len(t, pcm, samples*4, "16-bit stereo is four bytes per sample")
}

func TestSynthesizeEveryCue(t *testing.T) {
	for id := range cfg.Sound.Cues {
		pcm, err := Synthesize(id)
		require.NoError(t, err, "sound %d", id)
		assert.NotEmpty(t, pcm)
		assert.True(t, hasSignal(pcm), "sound %d is silent", id)
	}
}

func TestSynthesizeUnknownSound(t *testing.T) {
	_, err := Synthesize(cfg.SoundNone)
	assert.Error(t, err)
}

func TestCueRejectsBadInput(t *testing.T) {
	_, err := Cue(cfg.CueConfig{Frequency: 440, DurationMS: 0}, 1, 44100)
	assert.Error(t, err)

	_, err = Cue(cfg.CueConfig{Frequency: 30000, DurationMS: 10}, 1, 44100)
	assert.Error(t, err)
}

func TestEnvelopeStartsSilent(t *testing.T) {
	s, err := Cue(cfg.CueConfig{Frequency: 440, DurationMS: 100, AttackMS: 20, ReleaseMS: 20}, 1, 44100)
	require.NoError(t, err)

	buf := make([][2]float64, 4)
	n, ok := s.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 4, n)
	assert.Zero(t, buf[0][0])
}

func TestDrone(t *testing.T) {
	pcm, err := Drone()
	require.NoError(t, err)

	want := beep.SampleRate(cfg.Audio.SampleRate).N(secondsDuration(cfg.Audio.DroneSeconds))
	assert.Len(t, pcm, want*4)
	assert.True(t, hasSignal(pcm))
}

func hasSignal(pcm []byte) bool {
	for _, b := range pcm {
		if b != 0 {
			return true
		}
	}
	return false
}
