package scenes

import (
	"image/color"
	"log"
	"math/rand/v2"
	"sync"

	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/systems"
	"github.com/automoto/hexcloud/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs one round: the room, the player, the enemies and the
// hexlings the player raises. Pause and game over are overlays on top of it.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewWorldScene creates a scene for a fresh round
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	// Synthesize every cue up front so the first chord does not hitch
	systems.PreloadAllSFX()

	ws.ecs = ecs.NewECS(donburi.NewWorld())

	createWorldScene := func() interface{} {
		return NewWorldScene(ws.sceneChanger)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(ws.sceneChanger)
	}

	AddWorldSystems(ws.ecs, ws.sceneChanger, createWorldScene, createMenuScene)
	AddWorldRenderers(ws.ecs)

	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	factory.PopulateWorld(ws.ecs, seed)
	systems.RegisterEventHandlers(ws.ecs)
	systems.StartDrone()

	log.Printf("[game] round started (seed %d)", seed)
}

// AddWorldSystems registers the tick pipeline in order. Audio, input, pause
// and the clock always run; the gameplay systems only run while playing;
// removals and the game over overlay run last.
func AddWorldSystems(e *ecs.ECS, sc SceneChanger, createWorldScene, createMenuScene func() interface{}) {
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdatePause(sc, createMenuScene))
	e.AddSystem(systems.UpdateClock)

	e.AddSystem(systems.WithGameplayChecks(systems.UpdateControls))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEvents))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisionDetection))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerCollisions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateHexlingCollisions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemyTargets))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateHexlingTargets))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemyMotion))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateHexlingMotion))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateAttacks))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDebris))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePositions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateTweens))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateFog))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	e.AddSystem(systems.UpdateRemovals)
	e.AddSystem(systems.NewUpdateGameOver(sc, createWorldScene, createMenuScene))
}

// AddWorldRenderers registers the draw passes, back to front.
func AddWorldRenderers(e *ecs.ECS) {
	e.AddRenderer(cfg.Default, systems.DrawShapes)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawFog)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawPause)
	e.AddRenderer(cfg.Default, systems.DrawGameOver)
}
