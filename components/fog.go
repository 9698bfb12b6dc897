package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// FogData tracks the light sources that reveal the map.
type FogData struct {
	Player    math.Vec2
	HasPlayer bool
	Hexlings  map[donburi.Entity]math.Vec2
}

var Fog = donburi.NewComponentType[FogData]()
