package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedOption MainMenuOption

	// Title pulse, ping-ponging between dim and full brightness
	Pulse     *gween.Tween
	Glow      float32
	PulseDown bool
}

var Menu = donburi.NewComponentType[MenuData]()
