package factory

import (
	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/yohamta/donburi/ecs"
)

// PopulateWorld builds a fresh round: space, game state, room, player,
// enemies, camera and fog.
func PopulateWorld(ecs *ecs.ECS, seed uint64) {
	CreateDefaultSpace(ecs)
	game := CreateGame(ecs, seed)
	CreateRoom(ecs, components.Game.Get(game).Rand)
	CreatePlayer(ecs, cfg.Player.StartX, cfg.Player.StartY)
	CreateEnemies(ecs)
	CreateCamera(ecs, cfg.Player.StartX, cfg.Player.StartY)
	CreateFog(ecs)
}

// PopulateBackdrop builds the idle scene shown behind the main menu: the
// room and the enemies circling their anchors, with no player.
func PopulateBackdrop(ecs *ecs.ECS, seed uint64) {
	CreateDefaultSpace(ecs)
	game := CreateGame(ecs, seed)
	components.Game.Get(game).Mode = cfg.ModeMenu
	CreateRoom(ecs, components.Game.Get(game).Rand)
	CreateEnemies(ecs)
	CreateCamera(ecs, 0, 0)
}
