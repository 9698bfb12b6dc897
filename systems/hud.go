package systems

import (
	"fmt"

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

// DrawHUD renders player health, the hexling count, the current mode, the
// spawn charge bar and the volume in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	game, ok := GetGame(ecs)
	if !ok {
		return
	}
	face := fonts.Regular.Get()
	margin := cfg.HUD.Margin
	line := cfg.HUD.LineHeight
	y := margin + line

	if player, ok := findPlayer(ecs.World); ok {
		stats := components.Combat.Get(player)
		text.Draw(screen, fmt.Sprintf("HP %.0f/%.0f", stats.Health, stats.MaxHealth), face, int(margin), int(y), cfg.HUD.TextColor)
		y += line

		// Spawn hold progress
		held := components.Player.Get(player).SpawnHeldMS
		ratio := min(held/cfg.Hexling.SpawnHoldMS, 1)
		vector.FillRect(screen,
			float32(margin), float32(y-cfg.HUD.BarHeight),
			float32(cfg.HUD.BarWidth), float32(cfg.HUD.BarHeight),
			cfg.HUD.BarBgColor, false)
		vector.FillRect(screen,
			float32(margin), float32(y-cfg.HUD.BarHeight),
			float32(cfg.HUD.BarWidth*ratio), float32(cfg.HUD.BarHeight),
			cfg.HUD.BarFgColor, false)
		y += line
	}

	count := 0
	tags.Hexling.Each(ecs.World, func(entry *donburi.Entry) {
		if !isMarked(entry) {
			count++
		}
	})
	label := cfg.HUD.RecallLabel
	if game.HexlingMode == cfg.Charging {
		label = cfg.HUD.ChargingLabel
	}
	text.Draw(screen, fmt.Sprintf("HEXLINGS %d  %s", count, label), face, int(margin), int(y), cfg.HUD.TextColor)
	y += line

	volume := fmt.Sprintf("VOL %+.0f dB", GetVolumeDB())
	if IsMuted() {
		volume += "  (music muted)"
	}
	text.Draw(screen, volume, fonts.Small.Get(), int(margin), int(y), cfg.HUD.TextColor)
}
