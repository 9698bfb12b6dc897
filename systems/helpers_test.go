package systems

import (
	"testing"

	"github.com/automoto/hexcloud/components"
	"github.com/automoto/hexcloud/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testStep = 1.0 / 60

// newTestWorld builds a world with the singletons a round needs but no room,
// player or enemies.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateDefaultSpace(e)
	factory.CreateGame(e, 7)
	factory.CreateCamera(e, 0, 0)
	factory.CreateFog(e)
	RegisterEventHandlers(e)
	SetDelta(e, testStep)
	return e
}

func mustGame(t *testing.T, e *ecs.ECS) *components.GameData {
	t.Helper()
	game, ok := GetGame(e)
	require.True(t, ok)
	return game
}

func moveTo(entry *donburi.Entry, x, y float64) {
	components.Object.Get(entry).SetCenter(x, y)
}

func run(e *ecs.ECS, systems ...ecs.System) {
	for _, s := range systems {
		s(e)
	}
}

func count(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) { n++ })
	return n
}
