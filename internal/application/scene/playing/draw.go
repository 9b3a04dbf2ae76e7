package playing

import (
	"fmt"
	"image/color"
	"maps"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/keeper/internal/application/state"
	"github.com/younwookim/keeper/internal/application/system"
	"github.com/younwookim/keeper/internal/domain/entity"
	"github.com/younwookim/keeper/internal/infrastructure/physics"
)

var (
	colorBG        = colornames.Darkslategray
	colorWall      = colornames.Dimgray
	colorHighlight = colornames.Yellow
	colorFacing    = colornames.White
	colorLifeBG    = color.RGBA{60, 60, 60, 255}
	colorLifeFG    = colornames.Crimson
	colorFallback  = colornames.Magenta

	colorDebugStatic = colornames.Steelblue
	colorDebugSensor = colornames.Cyan
	colorDebugBody   = colornames.Lime
)

// spriteColor resolves a configured color name, magenta when unknown
func spriteColor(name string) color.Color {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return colorFallback
}

// camera returns the top-left world pixel shown on screen
func (p *Playing) camera() (float64, float64) {
	pos := p.world.Position()
	camX := pos.X - float64(p.screenW)/2
	camY := pos.Y - float64(p.screenH)/2

	// Clamp camera to level bounds
	maxCamX := float64(p.level.PixelWidth() - p.screenW)
	maxCamY := float64(p.level.PixelHeight() - p.screenH)
	camX = clampf(camX, 0, maxCamX)
	camY = clampf(camY, 0, maxCamY)
	return camX, camY
}

func clampf(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// playerScreenPos returns the player's position in screen space
func (p *Playing) playerScreenPos() entity.Vec2 {
	camX, camY := p.camera()
	pos := p.world.Position()
	return entity.Vec2{X: pos.X - camX, Y: pos.Y - camY}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera()
	// Apply screen shake
	dx, dy := p.effects.ShakeOffset()
	camX += dx
	camY += dy

	p.drawTiles(screen, camX, camY)
	p.drawObjects(screen, camX, camY)
	p.drawEnemies(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)
	if p.debug {
		p.drawDebug(screen, camX, camY)
	}

	p.drawUI(screen)

	// Draw state overlays
	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	case state.StateLevelClear:
		p.drawLevelClearOverlay(screen)
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY float64) {
	ts := p.level.TileSize
	startTileX := int(camX) / ts
	startTileY := int(camY) / ts
	endTileX := (int(camX)+p.screenW)/ts + 1
	endTileY := (int(camY)+p.screenH)/ts + 1

	for ty := startTileY; ty <= endTileY && ty < p.level.Height; ty++ {
		for tx := startTileX; tx <= endTileX && tx < p.level.Width; tx++ {
			if tx < 0 || ty < 0 {
				continue
			}
			if p.level.GetTile(tx, ty).Type != entity.TileWall {
				continue
			}
			x := float32(float64(tx*ts) - camX)
			y := float32(float64(ty*ts) - camY)
			vector.DrawFilledRect(screen, x, y, float32(ts), float32(ts), colorWall, false)
		}
	}
}

func (p *Playing) drawObjects(screen *ebiten.Image, camX, camY float64) {
	interactable := p.controller.Interactable()
	for _, id := range p.objectIDs {
		obj := p.level.Objects[id]
		if !obj.Active {
			continue
		}
		if obj.Kind == entity.KindDoor && p.level.Door != nil && p.level.Door.Open {
			continue
		}

		oc := p.cfg.Entities.Objects[obj.Kind.String()]
		c := spriteColor(oc.Sprite.Color)
		if chest, ok := p.level.Chests[id]; ok && chest.Opened {
			c = colornames.Darkgoldenrod
		}
		if lever, ok := p.level.Levers[id]; ok && lever.On {
			c = colornames.Lightgreen
		}

		w, h := float32(obj.Width), float32(obj.Height)
		x := float32(obj.Pos.X-camX) - w/2
		y := float32(obj.Pos.Y-camY) - h/2
		vector.DrawFilledRect(screen, x, y, w, h, c, false)
		if id == interactable {
			vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 1, colorHighlight, false)
		}

		if hint, ok := p.level.Hints[id]; ok && hint.Visible {
			ebitenutil.DebugPrintAt(screen, hint.Text, int(x), int(y)-16)
		}
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, camX, camY float64) {
	for _, id := range slices.Sorted(maps.Keys(p.level.Enemies)) {
		enemy := p.level.Enemies[id]
		pos, ok := p.world.BodyPosition(id)
		if !ok {
			continue
		}
		ec := p.cfg.Entities.Enemies[enemy.EnemyType]
		vector.DrawFilledCircle(screen, float32(pos.X-camX), float32(pos.Y-camY), float32(ec.Body.Radius), spriteColor(ec.Sprite.Color), true)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY float64) {
	pc := p.cfg.Entities.Player
	pos := p.world.Position()
	x := float32(pos.X - camX)
	y := float32(pos.Y - camY)
	r := float32(pc.Body.Radius)

	c := spriteColor(pc.Sprite.Color)
	if p.effects.SlowMotionActive() {
		c = colornames.Orangered
	}
	vector.DrawFilledCircle(screen, x, y, r, c, true)

	// Facing indicator, longer while aiming
	reach := r + 4
	if p.look.Hands == system.HandsAiming {
		reach = r + 10
	}
	f := p.look.Facing
	vector.StrokeLine(screen, x, y, x+float32(f.X)*reach, y+float32(f.Y)*reach, 1, colorFacing, true)
}

// debugRect is a collider outline in screen space
type debugRect struct {
	x, y, w, h float32
	c          color.Color
}

// debugRects converts collider bounds to screen space, colored by kind
func debugRects(shapes []physics.DebugShape, camX, camY float64) []debugRect {
	rects := make([]debugRect, 0, len(shapes))
	for _, s := range shapes {
		c := colorDebugBody
		switch {
		case s.Static:
			c = colorDebugStatic
		case s.Sensor:
			c = colorDebugSensor
		}
		rects = append(rects, debugRect{
			x: float32(s.Min.X - camX),
			y: float32(s.Min.Y - camY),
			w: float32(s.Max.X - s.Min.X),
			h: float32(s.Max.Y - s.Min.Y),
			c: c,
		})
	}
	return rects
}

func (p *Playing) drawDebug(screen *ebiten.Image, camX, camY float64) {
	for _, r := range debugRects(p.world.DebugShapes(), camX, camY) {
		vector.StrokeRect(screen, r.x, r.y, r.w, r.h, 1, r.c, false)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	// Life bar
	barX := float32(10)
	barY := float32(p.screenH - 20)
	barW := float32(100)
	barH := float32(10)
	vector.DrawFilledRect(screen, barX, barY, barW, barH, colorLifeBG, false)

	ratio := float32(0)
	if p.life.Max() > 0 {
		ratio = float32(p.life.Current()) / float32(p.life.Max())
	}
	vector.DrawFilledRect(screen, barX, barY, barW*ratio, barH, colorLifeFG, false)

	status := fmt.Sprintf("Life: %d/%d  Keys: %d", p.life.Current(), p.life.Max(), p.controller.Keys())
	if door := p.level.Door; door != nil {
		if door.Open {
			status += "  Door: open"
		} else {
			status += fmt.Sprintf("  Door: %d keys", door.Required)
		}
	}
	if held := p.controller.Held(); held != 0 {
		status += "  Carrying"
	}
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-35)

	// Controls
	ebitenutil.DebugPrint(screen, "WASD: Move | E: Interact | ESC: Pause")
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), overlay, false)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{100, 0, 0, 180}
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), overlay, false)

	text := fmt.Sprintf("GAME OVER\n\nKeys collected: %d\n\nPress R to restart", p.controller.Keys())
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

func (p *Playing) drawLevelClearOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 60, 20, 180}
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), overlay, false)

	text := fmt.Sprintf("LEVEL CLEAR\n\n%s\n\nPress R to play again", p.level.Name)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}
