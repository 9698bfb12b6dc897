package systems

import (
	"github.com/automoto/hexcloud/components"
	cfg "github.com/automoto/hexcloud/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls turns held actions into player velocity and publishes the
// charge, recall and spawn events. Events are delivered by UpdateEvents.
func UpdateControls(e *ecs.ECS) {
	player, ok := findPlayer(e.World)
	if !ok {
		return
	}
	game, ok := GetGame(e)
	if !ok {
		return
	}
	input := getOrCreateInput(e)

	vel := components.Velocity.Get(player)
	vel.X, vel.Y = 0, 0
	speed := cfg.Player.Speed
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		vel.Y += speed
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		vel.Y -= speed
	}
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		vel.X -= speed
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		vel.X += speed
	}

	switch {
	case GetAction(input, cfg.ActionCharge).JustPressed:
		ChargeEvent.Publish(e.World, Charge{})
	case GetAction(input, cfg.ActionRecall).JustPressed:
		RecallEvent.Publish(e.World, Recall{})
	case GetAction(input, cfg.ActionFlip).JustReleased:
		if game.HexlingMode == cfg.Charging {
			RecallEvent.Publish(e.World, Recall{})
		} else {
			ChargeEvent.Publish(e.World, Charge{})
		}
	}

	// One hexling per hold: the timer only restarts once the action is released.
	data := components.Player.Get(player)
	spawn := GetAction(input, cfg.ActionSpawnHexling)
	switch {
	case !spawn.Pressed:
		data.SpawnHeldMS = 0
		data.SpawnLatched = false
	case !data.SpawnLatched:
		data.SpawnHeldMS += Delta(e) * 1000
		if data.SpawnHeldMS >= cfg.Hexling.SpawnHoldMS {
			data.SpawnLatched = true
			SpawnHexlingEvent.Publish(e.World, SpawnHexling{})
		}
	}
}
