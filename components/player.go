package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Milliseconds the spawn action has been held; SpawnLatched is set once a
	// hold has produced its hexling and stays set until release.
	SpawnHeldMS  float64
	SpawnLatched bool

	Flip *gween.Tween // scales the shape horizontally on charge/recall
	Spin *gween.Tween // rotates the shape on hexling spawn
}

var Player = donburi.NewComponentType[PlayerData]()
