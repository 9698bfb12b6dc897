package systems

import (
	"os"

	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/automoto/hexcloud/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

const titleGlowMin = 0.45

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		updateTitlePulse(menu)

		numOptions := int(components.MainMenuExit) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedOption = components.MainMenuOption(
				(int(menu.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedOption = components.MainMenuOption(
				(int(menu.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch menu.SelectedOption {
			case components.MainMenuStart:
				sceneChanger.ChangeScene(createWorldScene())
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		// Allow back/escape to exit
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// updateTitlePulse ping-pongs the title glow between dim and bright.
func updateTitlePulse(menu *components.MenuData) {
	if menu.Pulse == nil {
		from, to := float32(titleGlowMin), float32(1)
		if menu.PulseDown {
			from, to = to, from
		}
		menu.Pulse = gween.New(from, to, float32(cfg.Menu.TitlePulseSeconds), ease.InOutSine)
	}
	glow, done := menu.Pulse.Update(1 / float32(cfg.C.TPS))
	menu.Glow = glow
	if done {
		menu.Pulse = nil
		menu.PulseDown = !menu.PulseDown
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := cfg.Menu.Title
	titleColor := cfg.Menu.TitleColor
	titleColor.R = uint8(float32(titleColor.R) * menu.Glow)
	titleColor.G = uint8(float32(titleColor.G) * menu.Glow)
	titleColor.B = uint8(float32(titleColor.B) * menu.Glow)
	text.Draw(screen, title, titleFont, centeredX(title, titleFont, width), int(cfg.Menu.TitleY), titleColor)

	menuFont := fonts.Large.Get()
	for i, option := range cfg.Menu.MenuOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if components.MainMenuOption(i) == menu.SelectedOption {
			textColor = cfg.Menu.TextColorSelected
		}
		text.Draw(screen, option, menuFont, centeredX(option, menuFont, width), int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select"
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centeredX(hint, hintFont, width), int(height)-12, cfg.Menu.TextColorNormal)
}

// centeredX returns the x offset that centres s horizontally.
func centeredX(s string, face font.Face, width float64) int {
	bounds := text.BoundString(face, s)
	return int((width - float64(bounds.Dx())) / 2)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		entry := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(entry, components.MenuData{
			SelectedOption: components.MainMenuStart,
			Glow:           1,
		})
	}

	entry, _ := components.Menu.First(e.World)
	return components.Menu.Get(entry)
}
