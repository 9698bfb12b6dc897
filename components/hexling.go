package components

import "github.com/yohamta/donburi"

type HexlingData struct {
	// Set once the hexling drifts past the far recall threshold and cleared
	// when it is back within the near one.
	Returning bool
}

var Hexling = donburi.NewComponentType[HexlingData]()
