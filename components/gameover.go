package components

import "github.com/yohamta/donburi"

// GameOverOption represents the overlay choices after the player dies
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the overlay selection and the run summary
type GameOverData struct {
	SelectedOption GameOverOption
	Survived       float64
	Defeated       int // enemies destroyed during the run
}

var GameOver = donburi.NewComponentType[GameOverData]()
