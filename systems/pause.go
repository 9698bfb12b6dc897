package systems

import (
	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePause returns the system that toggles pause and drives the pause
// menu. It runs AFTER UpdateInput but BEFORE any gameplay system.
func NewUpdatePause(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		game, ok := GetGame(e)
		if !ok {
			return
		}
		pause := GetOrCreatePause(e)
		input := getOrCreateInput(e)

		switch game.Mode {
		case cfg.ModePlaying:
			if GetAction(input, cfg.ActionPause).JustPressed {
				game.Mode = cfg.ModePaused
				pause.SelectedOption = components.MenuResume
				PauseDrone()
			}
			return
		case cfg.ModePaused:
		default:
			return
		}

		if GetAction(input, cfg.ActionPause).JustPressed {
			resume(game)
			return
		}

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.MenuExit) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			pause.SelectedOption = components.PauseMenuOption(
				(int(pause.SelectedOption) + 1) % numOptions,
			)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch pause.SelectedOption {
			case components.MenuResume:
				resume(game)
			case components.MenuExit:
				StopDrone()
				if sceneChanger != nil && createMenuScene != nil {
					sceneChanger.ChangeScene(createMenuScene())
				}
			}
		}
	}
}

func resume(game *components.GameData) {
	game.Mode = cfg.ModePlaying
	ResumeDrone()
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	game, ok := GetGame(ecs)
	if !ok || game.Mode != cfg.ModePaused {
		return
	}
	pause := GetOrCreatePause(ecs)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Large.Get()
	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		x := centeredX(option, fontFace, width)
		text.Draw(screen, option, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Resume"
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centeredX(hint, hintFont, width), int(height)-12, cfg.Pause.TextColorNormal)
}

// WithGameplayChecks wraps a system so it only runs while a round is being
// played: not paused, not in a menu, not after game over.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if game, ok := GetGame(e); !ok || game.Mode != cfg.ModePlaying {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
