package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Notes
	SoundNoteE
	SoundNoteE2
	SoundNoteA
	SoundNoteB
	SoundNoteG
	SoundNoteFSharp3
	SoundNoteD
	// Percussive cues
	SoundThud
	SoundTap
	// Combat
	SoundEnemyAttack
	SoundDebris
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// Waveform selects the oscillator used to synthesize a cue
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveNoise
)

// CueConfig describes one synthesized sound effect
type CueConfig struct {
	Frequency  float64 // Hz, ignored for noise
	Wave       Waveform
	DurationMS int
	AttackMS   int
	ReleaseMS  int
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int

	DefaultSFXVol   float64
	DefaultMusicVol float64

	// Global volume in decibels, adjusted in fixed steps
	DefaultVolumeDB float64
	VolumeStepDB    float64
	MinVolumeDB     float64
	MaxVolumeDB     float64

	DroneSeconds     float64
	DroneFrequencies []float64
}

// SoundConfig maps sound IDs to their synthesis recipe
type SoundConfig struct {
	Cues              map[SoundID]CueConfig
	VolumeMultipliers map[SoundID]float64

	// Chords played on gameplay events, in order
	ChargeChord   []SoundID
	RecallChord   []SoundID
	SpawnChord    []SoundID
	EnemyDeath    []SoundID
	GameOverChord []SoundID
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:       44100,
		DefaultSFXVol:    0.5,
		DefaultMusicVol:  1.0,
		DefaultVolumeDB:  0,
		VolumeStepDB:     5,
		MinVolumeDB:      -80,
		MaxVolumeDB:      20,
		DroneSeconds:     8,
		DroneFrequencies: []float64{82.41, 123.47, 164.81},
	}

	note := func(freq float64) CueConfig {
		return CueConfig{Frequency: freq, Wave: WaveSine, DurationMS: 400, AttackMS: 10, ReleaseMS: 300}
	}

	Sound = SoundConfig{
		Cues: map[SoundID]CueConfig{
			SoundNoteE:        note(329.63),
			SoundNoteE2:       note(659.25),
			SoundNoteA:        note(440.00),
			SoundNoteB:        note(493.88),
			SoundNoteG:        note(392.00),
			SoundNoteFSharp3:  note(185.00),
			SoundNoteD:        note(293.66),
			SoundThud:         {Frequency: 60, Wave: WaveSine, DurationMS: 250, AttackMS: 2, ReleaseMS: 200},
			SoundTap:          {Wave: WaveNoise, DurationMS: 40, AttackMS: 1, ReleaseMS: 30},
			SoundEnemyAttack:  {Frequency: 110, Wave: WaveSquare, DurationMS: 80, AttackMS: 2, ReleaseMS: 60},
			SoundDebris:       {Wave: WaveNoise, DurationMS: 60, AttackMS: 1, ReleaseMS: 50},
			SoundMenuNavigate: {Frequency: 880, Wave: WaveSquare, DurationMS: 40, AttackMS: 1, ReleaseMS: 30},
			SoundMenuSelect:   {Frequency: 1320, Wave: WaveSine, DurationMS: 120, AttackMS: 2, ReleaseMS: 80},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundTap:          0.6,
			SoundDebris:       0.25,
			SoundEnemyAttack:  0.4,
			SoundMenuNavigate: 0.3,
		},
		ChargeChord:   []SoundID{SoundNoteE, SoundNoteE2, SoundNoteA, SoundNoteB, SoundNoteG, SoundNoteFSharp3},
		RecallChord:   []SoundID{SoundNoteA},
		SpawnChord:    []SoundID{SoundNoteE2},
		EnemyDeath:    []SoundID{SoundNoteE, SoundNoteG, SoundNoteB},
		GameOverChord: []SoundID{SoundThud, SoundTap, SoundNoteE, SoundNoteD},
	}
}
