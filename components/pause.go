package components

import "github.com/yohamta/donburi"

// PauseMenuOption is an entry of the pause overlay
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuExit                   // back to the title menu
)

type PauseData struct {
	SelectedOption PauseMenuOption
}

var Pause = donburi.NewComponentType[PauseData]()
