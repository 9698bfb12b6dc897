package systems

import (
	"fmt"
	"log"

	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/fonts"
	"github.com/automoto/hexcloud/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnterGameOver ends the round: every enemy and hexling is marked for
// removal, the summary is recorded and the overlay takes over input.
func EnterGameOver(e *ecs.ECS) {
	game, ok := GetGame(e)
	if !ok || game.Mode == cfg.ModeOver {
		return
	}
	game.Mode = cfg.ModeOver

	var doomed []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	tags.Hexling.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})
	for _, entry := range doomed {
		MarkForRemoval(entry)
	}

	gameOver := GetOrCreateGameOver(e)
	gameOver.SelectedOption = components.GameOverRetry
	gameOver.Survived = game.Survived
	gameOver.Defeated = game.Defeated

	PlayChord(e, cfg.Sound.GameOverChord)
	StopDrone()
	log.Printf("[game] game over after %.1fs, %d enemies defeated", game.Survived, game.Defeated)
}

// NewUpdateGameOver creates the game over overlay system with scene
// transition capability. It only reacts while the round is over.
func NewUpdateGameOver(sceneChanger SceneChanger, createWorldScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		game, ok := GetGame(e)
		if !ok || game.Mode != cfg.ModeOver {
			return
		}
		gameOver := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.GameOverMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed && sceneChanger != nil {
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				log.Printf("[game] restarting round")
				sceneChanger.ChangeScene(createWorldScene())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// DrawGameOver renders the game over overlay on top of the world
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	game, ok := GetGame(e)
	if !ok || game.Mode != cfg.ModeOver {
		return
	}
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())

	vector.FillRect(screen, 0, 0, float32(width), float32(screen.Bounds().Dy()), cfg.GameOver.OverlayColor, false)

	titleFont := fonts.Title.Get()
	title := "DISSOLVED"
	text.Draw(screen, title, titleFont, centeredX(title, titleFont, width), int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	summaryFont := fonts.Regular.Get()
	summary := fmt.Sprintf("Survived %.1fs   Enemies destroyed %d", gameOver.Survived, gameOver.Defeated)
	text.Draw(screen, summary, summaryFont, centeredX(summary, summaryFont, width), int(cfg.GameOver.TitleY)+40, cfg.GameOver.TextColorNormal)

	menuFont := fonts.Large.Get()
	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}
		text.Draw(screen, option, menuFont, centeredX(option, menuFont, width), int(y)+int(cfg.GameOver.MenuItemHeight), textColor)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		e.World.Create(components.GameOver)
	}

	entry, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(entry)
}
