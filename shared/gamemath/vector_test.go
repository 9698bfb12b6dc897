package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionIsUnitLength(t *testing.T) {
	dx, dy := Direction(1, 1, 4, 5)
	assert.InDelta(t, 0.6, dx, 1e-9)
	assert.InDelta(t, 0.8, dy, 1e-9)
}

func TestDirectionOfCoincidentPointsIsZero(t *testing.T) {
	dx, dy := Direction(3, 3, 3, 3)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestTowardAndAway(t *testing.T) {
	vx, vy := Toward(0, 0, 10, 0, 200)
	assert.InDelta(t, 200, vx, 1e-9)
	assert.InDelta(t, 0, vy, 1e-9)

	vx, vy = Away(0, 0, 0, 50, 200)
	assert.InDelta(t, 0, vx, 1e-9)
	assert.InDelta(t, -200, vy, 1e-9)
}

func TestOrbitIsPerpendicularToAnchor(t *testing.T) {
	x, y, ax, ay := -300.0, 400.0, -250.0, 350.0
	vx, vy := Orbit(x, y, ax, ay, 50)

	dx, dy := Direction(x, y, ax, ay)
	assert.InDelta(t, 0, vx*dx+vy*dy, 1e-9)
	assert.InDelta(t, 50, math.Hypot(vx, vy), 1e-9)
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, 0.5, WrapAngle(0.5+4*math.Pi), 1e-9)
	assert.InDelta(t, 2*math.Pi-0.5, WrapAngle(-0.5), 1e-9)
}
