package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	// Point the enemy circles while it has no target
	AnchorX, AnchorY float64

	OrbitSpeed float64
	AggroSpeed float64
	SpinRate   float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
