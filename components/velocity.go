package components

import "github.com/yohamta/donburi"

// VelocityData is integrated into the object position every tick.
type VelocityData struct {
	X, Y float64
}

var Velocity = donburi.NewComponentType[VelocityData]()
