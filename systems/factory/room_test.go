package factory

import (
	"testing"

	cfg "github.com/automoto/hexcloud/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomBricksLeaveExits(t *testing.T) {
	r := cfg.Room
	bricks := RoomBricks(r)
	require.NotEmpty(t, bricks)

	left, top := r.OriginX, r.OriginY
	right, bottom := r.OriginX+r.Width, r.OriginY-r.Height

	for _, b := range bricks {
		onHorizontal := b.Y == top || b.Y == bottom
		onVertical := b.X == left || b.X == right
		assert.True(t, onHorizontal || onVertical, "brick %v is off the perimeter", b)

		if onHorizontal {
			off := b.X - left
			assert.False(t, off > r.Width/3 && off < 2*r.Width/3, "brick %v blocks a horizontal exit", b)
		}
		if onVertical && !onHorizontal {
			off := top - b.Y
			assert.False(t, off > r.Height/3 && off < 2*r.Height/3, "brick %v blocks a vertical exit", b)
		}
	}
}

func TestRoomBricksHaveNoDuplicates(t *testing.T) {
	seen := map[[2]float64]bool{}
	for _, b := range RoomBricks(cfg.Room) {
		key := [2]float64{b.X, b.Y}
		assert.False(t, seen[key], "duplicate brick at %v", b)
		seen[key] = true
	}
}
