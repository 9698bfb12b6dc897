package components

import (
	"github.com/automoto/hexcloud/shared/collide"
	"github.com/yohamta/donburi"
)

// Contact is one overlap found this tick, seen from the owning entity.
type Contact struct {
	Other donburi.Entity
	Side  collide.Side
}

// ColliderData is the bounding shape used by overlap detection. Contacts is
// rebuilt from scratch every tick.
type ColliderData struct {
	Shape    collide.Shape
	Radius   float64
	HalfW    float64
	HalfH    float64
	Contacts []Contact
}

var Collider = donburi.NewComponentType[ColliderData]()
