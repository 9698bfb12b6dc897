package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ShapeData describes how an entity is drawn. Sides == 0 draws a circle.
type ShapeData struct {
	Sides    int
	Radius   float64
	Color    color.RGBA
	Rotation float64
	ScaleX   float64
}

var Shape = donburi.NewComponentType[ShapeData]()
