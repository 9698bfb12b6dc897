package gamemath

import "math"

// Distance returns the euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// Direction returns the unit vector from (fromX, fromY) toward (toX, toY).
// Coincident points yield the zero vector.
func Direction(fromX, fromY, toX, toY float64) (dx, dy float64) {
	dx, dy = toX-fromX, toY-fromY
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0
	}
	return dx / dist, dy / dist
}

// Toward returns a velocity of the given speed heading to the target.
func Toward(fromX, fromY, toX, toY, speed float64) (velX, velY float64) {
	dx, dy := Direction(fromX, fromY, toX, toY)
	return dx * speed, dy * speed
}

// Away returns a velocity of the given speed heading away from the point.
func Away(fromX, fromY, awayX, awayY, speed float64) (velX, velY float64) {
	dx, dy := Direction(fromX, fromY, awayX, awayY)
	return -dx * speed, -dy * speed
}

// Orbit returns a velocity tangent to the circle around the anchor,
// turning counter-clockwise.
func Orbit(x, y, anchorX, anchorY, speed float64) (velX, velY float64) {
	dx, dy := Direction(x, y, anchorX, anchorY)
	return -dy * speed, dx * speed
}

// WrapAngle keeps an angle in [0, 2π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
