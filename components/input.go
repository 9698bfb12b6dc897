package components

import (
	cfg "github.com/automoto/hexcloud/config"
	"github.com/yohamta/donburi"
)

// ActionState is an action's level and edges for one tick.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData double-buffers the held state of every action so edges can be
// derived without extra bookkeeping.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
