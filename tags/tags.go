package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Enemy   = donburi.NewTag().SetName("Enemy")
	Hexling = donburi.NewTag().SetName("Hexling")
	Wall    = donburi.NewTag().SetName("Wall")
	Debris  = donburi.NewTag().SetName("Debris")

	// Despawn marks an entity for removal at the end of the tick
	Despawn = donburi.NewTag().SetName("Despawn")
)

// Resolv tags for spawn placement checks
const (
	ResolvSolid   = "solid"
	ResolvPlayer  = "Player"
	ResolvEnemy   = "Enemy"
	ResolvHexling = "Hexling"
)
