package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Radius float64
	Sides  int
	Speed  float64 // units per second on each axis

	// Velocity added per tick while overlapping a wall, along the contact side
	WallNudge float64

	Health      float64
	AggroRadius float64
	AttackRange float64
	AttackRate  float64
	BaseDamage  float64

	StartX float64
	StartY float64

	ChargeColor color.RGBA
	RecallColor color.RGBA

	FlipSeconds float64 // duration of the flip tween on charge/recall
	SpinSeconds float64 // duration of the spin tween on hexling spawn
}

// HexlingConfig contains configuration for the player's minions
type HexlingConfig struct {
	Radius float64
	Sides  int
	Speed  float64

	// Recall hysteresis band around the player
	MinPlayerDistance float64
	MaxPlayerDistance float64

	AggroRadius float64
	AttackRange float64
	AttackRate  float64
	BaseDamage  float64
	Health      float64

	// Health lost by the hexling itself on every landed attack
	Deterioration float64

	SpawnHoldMS     float64
	SpawnAttempts   int
	SpawnMinOffset  float64
	SpawnMaxOffset  float64
	ColorMinGreen   uint8
	ColorMaxRedBlue uint8
}

// EnemySpawn places one enemy and the anchor it orbits when idle
type EnemySpawn struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	AnchorX float64 `yaml:"anchor_x"`
	AnchorY float64 `yaml:"anchor_y"`
}

// EnemyConfig contains configuration for hostile combatants
type EnemyConfig struct {
	Radius float64
	Sides  int
	Color  color.RGBA

	OrbitSpeed float64 // tangential speed around the anchor while idle
	AggroSpeed float64 // pursuit speed toward the primary target
	SpinRate   float64 // radians per second, cosmetic

	AggroRadius float64
	AttackRange float64
	AttackRate  float64
	BaseDamage  float64
	Health      float64

	Spawns []EnemySpawn
}

// CooldownMode selects how an attack re-arms its cooldown
type CooldownMode int

const (
	// CooldownFixed re-arms with AttackRate reference ticks regardless of frame time.
	CooldownFixed CooldownMode = iota
	// CooldownFrameCoupled re-arms with AttackRate * dt of the tick that attacked.
	CooldownFrameCoupled
)

// CombatConfig contains attack resolution settings
type CombatConfig struct {
	Cooldown      CooldownMode
	ReferenceStep float64 // seconds per reference tick used by CooldownFixed
}

// DebrisConfig contains the enemy death burst settings
type DebrisConfig struct {
	Count    int
	Radius   float64
	Sides    int
	Speed    float64
	Lifetime float64 // seconds
	MaxSpin  float64 // radians per second
	Color    color.RGBA
}

// RoomConfig describes the procedurally bricked room
type RoomConfig struct {
	OriginX, OriginY float64 // top-left corner, y up
	Width, Height    float64
	BrickSpacing     float64
	BrickRadius      float64
	BrickSides       int
	ColliderHalf     float64

	// resolv space bounds; world coordinates are shifted by SpaceMin
	SpaceMinX, SpaceMinY float64
	SpaceWidth           int
	SpaceHeight          int
	SpaceCell            int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowDistance float64 // camera starts moving once the player is this far away
	Speed          float64
}

// FogConfig contains fog of war settings
type FogConfig struct {
	Color         color.RGBA
	PlayerRadius  float64
	HexlingRadius float64
}

// HUDConfig contains in-game overlay settings
type HUDConfig struct {
	Margin        float64
	LineHeight    float64
	TextColor     color.RGBA
	BarWidth      float64
	BarHeight     float64
	BarBgColor    color.RGBA
	BarFgColor    color.RGBA
	DebugColor    color.RGBA
	DebugTarget   color.RGBA
	ChargingLabel string
	RecallLabel   string
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA // drawn over the idle room, keep it translucent
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	TitlePulseSeconds float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// GameOverConfig contains game over overlay configuration values
type GameOverConfig struct {
	OverlayColor      color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu  bool   // Skip menu and go directly to game
	DrawDebug bool   // Outline colliders and draw target lines
	Seed      uint64 // 0 picks a fresh seed every round
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Hexling HexlingConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Debris DebrisConfig
var Room RoomConfig
var Camera CameraConfig
var Fog FogConfig
var HUD HUDConfig
var Pause PauseConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
	}

	Player = PlayerConfig{
		Radius:      30,
		Sides:       6,
		Speed:       200,
		WallNudge:   100,
		Health:      50,
		AggroRadius: 0, // the player never auto-targets
		AttackRange: 0,
		AttackRate:  0,
		BaseDamage:  0,
		StartX:      200,
		StartY:      0,
		ChargeColor: color.RGBA{R: 230, G: 90, B: 40, A: 255},
		RecallColor: color.RGBA{R: 60, G: 160, B: 230, A: 255},
		FlipSeconds: 0.25,
		SpinSeconds: 0.4,
	}

	Hexling = HexlingConfig{
		Radius:            6,
		Sides:             6,
		Speed:             200,
		MinPlayerDistance: 65,
		MaxPlayerDistance: 85,
		AggroRadius:       50,
		AttackRange:       10,
		AttackRate:        1,
		BaseDamage:        1,
		Health:            10,
		Deterioration:     0.1,
		SpawnHoldMS:       1500,
		SpawnAttempts:     4,
		SpawnMinOffset:    65,
		SpawnMaxOffset:    85,
		ColorMinGreen:     120,
		ColorMaxRedBlue:   90,
	}

	Enemy = EnemyConfig{
		Radius:      20,
		Sides:       3,
		Color:       LightRed,
		OrbitSpeed:  50,
		AggroSpeed:  50,
		SpinRate:    3,
		AggroRadius: 200,
		AttackRange: 100,
		AttackRate:  10,
		BaseDamage:  1,
		Health:      20,
		Spawns: []EnemySpawn{
			{X: -300, Y: 400, AnchorX: -250, AnchorY: 350},
			{X: 600, Y: -350, AnchorX: 550, AnchorY: -300},
			{X: -650, Y: -300, AnchorX: -600, AnchorY: -250},
		},
	}

	Combat = CombatConfig{
		Cooldown:      CooldownFixed,
		ReferenceStep: 1.0 / 60.0,
	}

	Debris = DebrisConfig{
		Count:    8,
		Radius:   5,
		Sides:    3,
		Speed:    120,
		Lifetime: 1.5,
		MaxSpin:  8,
		Color:    Orange,
	}

	Room = RoomConfig{
		OriginX:      -400,
		OriginY:      200,
		Width:        800,
		Height:       400,
		BrickSpacing: 18,
		BrickRadius:  10,
		BrickSides:   5,
		ColliderHalf: 9,
		SpaceMinX:    -2048,
		SpaceMinY:    -2048,
		SpaceWidth:   4096,
		SpaceHeight:  4096,
		SpaceCell:    32,
	}

	Camera = CameraConfig{
		FollowDistance: 200,
		Speed:          200,
	}

	Fog = FogConfig{
		Color:         color.RGBA{R: 0, G: 0, B: 8, A: 200},
		PlayerRadius:  260,
		HexlingRadius: 48,
	}

	HUD = HUDConfig{
		Margin:        16,
		LineHeight:    22,
		TextColor:     White,
		BarWidth:      120,
		BarHeight:     8,
		BarBgColor:    DarkGray,
		BarFgColor:    LightGreen,
		DebugColor:    Magenta,
		DebugTarget:   color.RGBA{R: 255, G: 255, B: 0, A: 160},
		ChargingLabel: "CHARGE",
		RecallLabel:   "RECALL",
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Main Menu"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 10, G: 20, B: 30, A: 170},
		TitleColor:        LightGreen,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		Title:             "HEXCLOUD",
		TitleY:            200,
		TitlePulseSeconds: 1.2,
		MenuStartY:        300,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Start", "Exit"},
	}

	GameOver = GameOverConfig{
		OverlayColor:      color.RGBA{R: 40, G: 10, B: 10, A: 200},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            260,
		MenuStartY:        340,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Retry", "Main Menu"},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:  false,
		DrawDebug: false,
		Seed:      0,
	}
}
