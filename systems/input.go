package systems

import (
	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// stickActions lists the actions a deflected left stick also triggers, per
// direction.
var stickActions = [4][]cfg.ActionID{
	stickLeft:  {cfg.ActionMoveLeft},
	stickRight: {cfg.ActionMoveRight},
	stickUp:    {cfg.ActionMoveUp, cfg.ActionMenuUp},
	stickDown:  {cfg.ActionMoveDown, cfg.ActionMenuDown},
}

const (
	stickLeft = iota
	stickRight
	stickUp
	stickDown
)

// UpdateInput polls keyboard and gamepads into the input buffers.
// Must run BEFORE UpdatePause and UpdateControls in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for id, binding := range cfg.Input.Bindings {
		input.Current[id] = bindingHeld(binding, gamepadIDs)
	}

	for dir, held := range stickDirections(gamepadIDs) {
		if !held {
			continue
		}
		for _, id := range stickActions[dir] {
			input.Current[id] = true
		}
	}
}

func bindingHeld(binding cfg.InputBinding, pads []ebiten.GamepadID) bool {
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, pad := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(pad) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(pad, btn) {
				return true
			}
		}
	}
	return false
}

// stickDirections reports which directions any left stick is pushed past
// the deadzone. Screen-down is positive on the vertical axis.
func stickDirections(pads []ebiten.GamepadID) [4]bool {
	var dirs [4]bool
	dead := cfg.Input.AnalogDeadzone
	for _, pad := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(pad) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(pad, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(pad, ebiten.StandardGamepadAxisLeftStickVertical)
		dirs[stickLeft] = dirs[stickLeft] || h < -dead
		dirs[stickRight] = dirs[stickRight] || h > dead
		dirs[stickUp] = dirs[stickUp] || v < -dead
		dirs[stickDown] = dirs[stickDown] || v > dead
	}
	return dirs
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction derives the edge state of an action from the two buffers.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr, prev := input.Current[id], input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// PressAction sets an action for the current frame without polling hardware.
func PressAction(ecs *ecs.ECS, id cfg.ActionID, pressed bool) {
	getOrCreateInput(ecs).Current[id] = pressed
}

// AdvanceInput rolls the buffers forward one frame, keeping the current
// state held.
func AdvanceInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Previous = input.Current
}
