package collide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func circle(x, y, r float64) Body {
	return Body{X: x, Y: y, Shape: Circle, Radius: r}
}

func box(x, y, hw, hh float64) Body {
	return Body{X: x, Y: y, Shape: Box, HalfW: hw, HalfH: hh}
}

func TestOverlapsCirclesIsSymmetric(t *testing.T) {
	pairs := [][2]Body{
		{circle(0, 0, 10), circle(15, 0, 6)},
		{circle(0, 0, 10), circle(16, 0, 6)},
		{circle(-3, 4, 1), circle(0, 0, 4)},
		{circle(100, 100, 30), circle(0, 0, 6)},
		{circle(0, 0, 5), circle(0, 0, 5)},
	}
	for _, p := range pairs {
		assert.Equal(t, Overlaps(p[0], p[1]), Overlaps(p[1], p[0]))
	}
}

func TestOverlapsCircleDistanceIsStrict(t *testing.T) {
	assert.True(t, Overlaps(circle(0, 0, 10), circle(15.9, 0, 6)))
	assert.False(t, Overlaps(circle(0, 0, 10), circle(16, 0, 6)), "touching circles do not overlap")
	// Bounding boxes overlap at the corner, the circles do not.
	assert.False(t, Overlaps(circle(0, 0, 10), circle(14, 14, 6)))
}

func TestOverlapsBoxAgainstCircleUsesBounds(t *testing.T) {
	assert.True(t, Overlaps(box(0, 0, 9, 9), circle(14, 14, 6)))
	assert.False(t, Overlaps(box(0, 0, 9, 9), circle(15, 0, 6)))
}

func TestClassifySides(t *testing.T) {
	wall := box(0, 0, 10, 10)

	assert.Equal(t, Left, Classify(box(-15, 0, 10, 10), wall))
	assert.Equal(t, Right, Classify(box(15, 0, 10, 10), wall))
	assert.Equal(t, Top, Classify(box(0, 15, 10, 10), wall))
	assert.Equal(t, Bottom, Classify(box(0, -15, 10, 10), wall))
	assert.Equal(t, Inside, Classify(box(0, 0, 4, 4), wall))
}

func TestClassifyPicksShallowAxis(t *testing.T) {
	wall := box(0, 0, 10, 10)

	// Deep on x (penetration 18), shallow on y (penetration 2).
	assert.Equal(t, Top, Classify(box(-2, 18, 10, 10), wall))
	// Deep on y, shallow on x.
	assert.Equal(t, Right, Classify(box(18, -2, 10, 10), wall))
}

func TestClassifyTieFavorsX(t *testing.T) {
	assert.Equal(t, Left, Classify(box(-15, -15, 10, 10), box(0, 0, 10, 10)))
}

func TestDetectIsSymmetricAndExcludesSelf(t *testing.T) {
	bodies := []Body{
		circle(0, 0, 30),
		circle(40, 0, 12),
		box(-35, 0, 9, 9),
		circle(500, 500, 6),
	}

	contacts := Detect(bodies)
	require.Len(t, contacts, len(bodies))

	for i, list := range contacts {
		for _, c := range list {
			assert.NotEqual(t, i, c.Other, "body %d lists itself", i)

			found := false
			for _, back := range contacts[c.Other] {
				if back.Other == i {
					found = true
				}
			}
			assert.True(t, found, "contact %d->%d has no mirror", i, c.Other)
		}
	}

	assert.Empty(t, contacts[3])
	require.Len(t, contacts[0], 2)
	assert.Equal(t, 1, contacts[0][0].Other)
	assert.Equal(t, 2, contacts[0][1].Other)
}

func TestDetectSidesAreRelativeToEachBody(t *testing.T) {
	contacts := Detect([]Body{box(-15, 0, 10, 10), box(0, 0, 10, 10)})

	require.Len(t, contacts[0], 1)
	require.Len(t, contacts[1], 1)
	assert.Equal(t, Left, contacts[0][0].Side)
	assert.Equal(t, Right, contacts[1][0].Side)
}

func TestPush(t *testing.T) {
	dx, dy := Push(Top)
	assert.Equal(t, [2]float64{0, 1}, [2]float64{dx, dy})
	dx, dy = Push(Left)
	assert.Equal(t, [2]float64{-1, 0}, [2]float64{dx, dy})
	dx, dy = Push(Inside)
	assert.Equal(t, [2]float64{1, 1}, [2]float64{dx, dy})
}
