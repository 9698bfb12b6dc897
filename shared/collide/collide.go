// Package collide holds the pairwise overlap test used by the collision
// systems. Coordinates are world units with y pointing up.
package collide

import "math"

// Side classifies where a body sits relative to the body it touches.
type Side int

const (
	Inside Side = iota
	Top
	Bottom
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "inside"
}

// Shape selects the overlap test for a body.
type Shape int

const (
	Circle Shape = iota
	Box
)

// Body is a collidable shape centred on (X, Y).
type Body struct {
	X, Y   float64
	Shape  Shape
	Radius float64
	HalfW  float64
	HalfH  float64
}

// Extents returns the half width and half height of the body's bounding box.
func (b Body) Extents() (float64, float64) {
	if b.Shape == Circle {
		return b.Radius, b.Radius
	}
	return b.HalfW, b.HalfH
}

// Contact records one overlapping body by its index in the input slice.
type Contact struct {
	Other int
	Side  Side
}

// Overlaps reports whether a and b intersect. Two circles use the distance
// test; any pair involving a box compares bounding boxes.
func Overlaps(a, b Body) bool {
	if a.Shape == Circle && b.Shape == Circle {
		dx, dy := a.X-b.X, a.Y-b.Y
		r := a.Radius + b.Radius
		return dx*dx+dy*dy < r*r
	}
	return boxesOverlap(a, b)
}

func boxesOverlap(a, b Body) bool {
	aw, ah := a.Extents()
	bw, bh := b.Extents()
	return a.X-aw < b.X+bw && a.X+aw > b.X-bw &&
		a.Y-ah < b.Y+bh && a.Y+ah > b.Y-bh
}

// Classify returns the side of b on which a lies, picking the axis with the
// smaller penetration. When both axes penetrate equally the x axis wins.
// Bodies whose boxes do not intersect classify as Inside; callers test
// Overlaps first.
func Classify(a, b Body) Side {
	aw, ah := a.Extents()
	bw, bh := b.Extents()
	aMinX, aMaxX := a.X-aw, a.X+aw
	aMinY, aMaxY := a.Y-ah, a.Y+ah
	bMinX, bMaxX := b.X-bw, b.X+bw
	bMinY, bMaxY := b.Y-bh, b.Y+bh

	xSide, xDepth := Inside, math.Inf(-1)
	switch {
	case aMinX < bMinX && aMaxX > bMinX && aMaxX < bMaxX:
		xSide, xDepth = Left, bMinX-aMaxX
	case aMinX > bMinX && aMinX < bMaxX && aMaxX > bMaxX:
		xSide, xDepth = Right, aMinX-bMaxX
	}

	ySide, yDepth := Inside, math.Inf(-1)
	switch {
	case aMinY < bMinY && aMaxY > bMinY && aMaxY < bMaxY:
		ySide, yDepth = Bottom, bMinY-aMaxY
	case aMinY > bMinY && aMinY < bMaxY && aMaxY > bMaxY:
		ySide, yDepth = Top, aMinY-bMaxY
	}

	if math.Abs(yDepth) < math.Abs(xDepth) {
		return ySide
	}
	return xSide
}

// Detect compares every pair of bodies once and returns, per body, the
// bodies it overlaps in ascending index order. A body never lists itself.
func Detect(bodies []Body) [][]Contact {
	contacts := make([][]Contact, len(bodies))
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if !Overlaps(bodies[i], bodies[j]) {
				continue
			}
			contacts[i] = append(contacts[i], Contact{Other: j, Side: Classify(bodies[i], bodies[j])})
			contacts[j] = append(contacts[j], Contact{Other: i, Side: Classify(bodies[j], bodies[i])})
		}
	}
	return contacts
}

// Push returns the unit push direction for a contact side.
// Inside pushes along both axes.
func Push(side Side) (dx, dy float64) {
	switch side {
	case Top:
		return 0, 1
	case Bottom:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 1, 1
}
