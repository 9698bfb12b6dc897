package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/fonts"
	"github.com/automoto/hexcloud/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	skipMenu := flag.Bool("skip-menu", false, "Start a round immediately")
	seed := flag.Uint64("seed", 0, "Round seed (0 picks a fresh one every round)")
	tuning := flag.String("tuning", "", "YAML file overriding gameplay tuning")
	legacyCooldown := flag.Bool("legacy-cooldown", false, "Re-arm attacks with rate*dt instead of a fixed step")
	debug := flag.Bool("debug", false, "Outline colliders and draw target lines")
	flag.Parse()

	config.Debug.SkipMenu = *skipMenu
	config.Debug.Seed = *seed
	config.Debug.DrawDebug = *debug

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Printf("[tuning] %v, using defaults", err)
		} else {
			log.Printf("[tuning] loaded %s", *tuning)
		}
	}
	if *legacyCooldown {
		config.Combat.Cooldown = config.CooldownFrameCoupled
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
