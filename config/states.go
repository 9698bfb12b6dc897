package config

// GameMode is the top-level mode of a running world
type GameMode int

const (
	ModeMenu GameMode = iota
	ModePlaying
	ModePaused
	ModeOver
)

func (m GameMode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeOver:
		return "over"
	}
	return "unknown"
}

// HexlingMode is the single behavioral mode shared by every hexling
type HexlingMode int

const (
	Recalling HexlingMode = iota
	Charging
)

func (m HexlingMode) String() string {
	if m == Charging {
		return "charging"
	}
	return "recalling"
}

// Faction separates the two sides of a fight
type Faction int

const (
	Friendly Faction = iota
	Hostile
)
