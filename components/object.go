package components

import (
	cfg "github.com/automoto/hexcloud/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData carries an entity's bounding box in the resolv space. Resolv
// positions are the top-left corner shifted by the space origin, so gameplay
// code goes through Center and SetCenter.
type ObjectData struct {
	*resolv.Object
}

// Center returns the world position of the object's centre.
func (o *ObjectData) Center() (x, y float64) {
	return o.X + o.W/2 + cfg.Room.SpaceMinX, o.Y + o.H/2 + cfg.Room.SpaceMinY
}

// SetCenter moves the object so its centre sits at the world position.
func (o *ObjectData) SetCenter(x, y float64) {
	o.X = x - o.W/2 - cfg.Room.SpaceMinX
	o.Y = y - o.H/2 - cfg.Room.SpaceMinY
}

// Translate moves the object by a world offset.
func (o *ObjectData) Translate(dx, dy float64) {
	o.X += dx
	o.Y += dy
}

// NewCenteredObject builds a resolv object of size w×h centred on (x, y).
func NewCenteredObject(x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x-w/2-cfg.Room.SpaceMinX, y-h/2-cfg.Room.SpaceMinY, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
