package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/systems"
	"github.com/automoto/hexcloud/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// menuBackdropSeed keeps the room behind the title the same on every visit.
const menuBackdropSeed = 1

// MenuScene shows the title menu over an idle room where the enemies keep
// circling their anchors.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	factory.PopulateBackdrop(ms.ecs, menuBackdropSeed)

	startRound := func() interface{} {
		return NewWorldScene(ms.sceneChanger)
	}

	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateClock)
	ms.ecs.AddSystem(systems.UpdateEnemyMotion)
	ms.ecs.AddSystem(systems.UpdatePositions)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, startRound))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawShapes)
	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
