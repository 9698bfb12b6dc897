// Package sound renders the game's cues and ambient drone into PCM buffers
// that the ebiten audio context can play directly.
package sound

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	cfg "github.com/automoto/hexcloud/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// oscillator generates the square and noise waveforms for a fixed number of
// samples. Sine cues come from the beep tone generator.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     cfg.Waveform
	rate     beep.SampleRate
	noise    *rand.Rand
}

func newOscillator(freq float64, d time.Duration, wave cfg.Waveform, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:   freq,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		noise:  rand.New(rand.NewPCG(uint64(freq*1000)+1, uint64(d))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case cfg.WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case cfg.WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, total, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(total),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			gain = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// scaled returns s attenuated by a linear gain. A gain of zero silences it.
func scaled(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Format is the PCM layout produced by this package: 16-bit stereo.
func Format(sampleRate int) beep.Format {
	return beep.Format{SampleRate: beep.SampleRate(sampleRate), NumChannels: 2, Precision: 2}
}

// Cue renders one cue as a streamer.
func Cue(cue cfg.CueConfig, gain float64, sampleRate int) (beep.Streamer, error) {
	if cue.DurationMS <= 0 {
		return nil, fmt.Errorf("cue duration must be positive, got %dms", cue.DurationMS)
	}
	if cue.Wave != cfg.WaveNoise && cue.Frequency*2 >= float64(sampleRate) {
		return nil, fmt.Errorf("cue frequency %.1fHz is above the Nyquist limit", cue.Frequency)
	}

	rate := beep.SampleRate(sampleRate)
	total := time.Duration(cue.DurationMS) * time.Millisecond
	osc, err := source(cue, total, rate)
	if err != nil {
		return nil, err
	}
	shaped := newEnvelope(osc, total,
		time.Duration(cue.AttackMS)*time.Millisecond,
		time.Duration(cue.ReleaseMS)*time.Millisecond,
		rate)
	return scaled(shaped, gain), nil
}

func source(cue cfg.CueConfig, total time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	if cue.Wave != cfg.WaveSine {
		return newOscillator(cue.Frequency, total, cue.Wave, rate), nil
	}
	tone, err := generators.SineTone(rate, cue.Frequency)
	if err != nil {
		return nil, fmt.Errorf("sine tone: %w", err)
	}
	return beep.Take(rate.N(total), tone), nil
}

// Synthesize renders the cue registered for id as PCM bytes.
func Synthesize(id cfg.SoundID) ([]byte, error) {
	cue, ok := cfg.Sound.Cues[id]
	if !ok {
		return nil, fmt.Errorf("no cue for sound %d", id)
	}
	gain := 1.0
	if m, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		gain = m
	}
	s, err := Cue(cue, gain, cfg.Audio.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("synthesize sound %d: %w", id, err)
	}
	return Encode(s, Format(cfg.Audio.SampleRate)), nil
}

// Drone renders the looping background hum: one sine per configured
// frequency, mixed and normalized.
func Drone() ([]byte, error) {
	freqs := cfg.Audio.DroneFrequencies
	if len(freqs) == 0 {
		return nil, fmt.Errorf("drone needs at least one frequency")
	}

	rate := beep.SampleRate(cfg.Audio.SampleRate)
	length := rate.N(time.Duration(cfg.Audio.DroneSeconds * float64(time.Second)))

	voices := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		tone, err := generators.SineTone(rate, f)
		if err != nil {
			return nil, fmt.Errorf("drone voice %.1fHz: %w", f, err)
		}
		voices = append(voices, beep.Take(length, tone))
	}
	mixed := scaled(beep.Mix(voices...), 0.6/float64(len(voices)))
	return Encode(mixed, Format(cfg.Audio.SampleRate)), nil
}

// Encode drains s into little-endian signed PCM in the given format.
func Encode(s beep.Streamer, format beep.Format) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, format.Width())
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			w := format.EncodeSigned(frame, sample)
			out = append(out, frame[:w]...)
		}
		if !ok {
			return out
		}
	}
}
