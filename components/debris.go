package components

import "github.com/yohamta/donburi"

type DebrisData struct {
	Timer float64 // seconds left before the piece removes itself
	Spin  float64 // radians per second
}

var Debris = donburi.NewComponentType[DebrisData]()
