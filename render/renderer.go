// Package render draws the world into a terminal with a camera
// centered on the player.
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nightgrid/component"
	"github.com/lixenwraith/nightgrid/engine"
	"github.com/lixenwraith/nightgrid/game"
	"github.com/lixenwraith/nightgrid/vmath"
)

// World units per terminal cell. Terminal cells are roughly twice as
// tall as wide, so the vertical scale doubles to keep circles round.
const (
	cellW = 10.0
	cellH = 20.0
)

var (
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorLightGreen).Bold(true)
	styleCalm    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleAlert   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHostile = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleDead    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleBullet  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleTrail   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorLightCyan)
	styleOver    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer draws frames onto a tcell screen
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer builds a renderer over an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame: walls, entities, then the HUD line
func (r *Renderer) Draw(w *engine.World, levelName string) {
	r.screen.Clear()

	width, height := r.screen.Size()
	viewH := height - 1 // Bottom line is the HUD

	center, _ := game.PlayerPosition(w)
	origin := vmath.Vec2{
		X: center.X - float64(width)/2*cellW,
		Y: center.Y - float64(viewH)/2*cellH,
	}

	r.drawWalls(w, origin, width, viewH)
	r.drawTrails(w, origin, width, viewH)
	r.drawBullets(w, origin, width, viewH)
	r.drawEnemies(w, origin, width, viewH)
	r.drawPlayer(w, origin, width, viewH)
	r.drawHUD(w, levelName, width, height)

	r.screen.Show()
}

// toScreen projects a world position into view cells
func toScreen(p, origin vmath.Vec2) (int, int) {
	return int(math.Floor((p.X - origin.X) / cellW)), int(math.Floor((p.Y - origin.Y) / cellH))
}

func inView(x, y, width, height int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}

func (r *Renderer) drawWalls(w *engine.World, origin vmath.Vec2, width, height int) {
	walls := w.Walls()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := vmath.Vec2{
				X: origin.X + (float64(x)+0.5)*cellW,
				Y: origin.Y + (float64(y)+0.5)*cellH,
			}
			for _, wall := range walls {
				if wall.Contains(p) {
					r.screen.SetContent(x, y, '#', nil, styleWall)
					break
				}
			}
		}
	}
}

func (r *Renderer) drawTrails(w *engine.World, origin vmath.Vec2, width, height int) {
	for _, e := range engine.QueryWith[component.BulletTrail, component.Position](w) {
		pos, _ := engine.Get[component.Position](w, e)
		x, y := toScreen(pos.Vec(), origin)
		if inView(x, y, width, height) {
			r.screen.SetContent(x, y, '.', nil, styleTrail)
		}
	}
}

func (r *Renderer) drawBullets(w *engine.World, origin vmath.Vec2, width, height int) {
	for _, e := range engine.QueryWith[component.Bullet, component.Position](w) {
		pos, _ := engine.Get[component.Position](w, e)
		x, y := toScreen(pos.Vec(), origin)
		if inView(x, y, width, height) {
			r.screen.SetContent(x, y, '*', nil, styleBullet)
		}
	}
}

func (r *Renderer) drawEnemies(w *engine.World, origin vmath.Vec2, width, height int) {
	for _, e := range engine.QueryWith[component.Enemy, component.Position](w) {
		pos, _ := engine.Get[component.Position](w, e)
		x, y := toScreen(pos.Vec(), origin)
		if !inView(x, y, width, height) {
			continue
		}

		ch := 'E'
		style := styleCalm
		if hp, ok := engine.Get[component.Health](w, e); ok && hp.Dead() {
			ch, style = 'x', styleDead
		} else if ai, ok := engine.Get[component.AI](w, e); ok {
			switch ai.State {
			case component.StateSpottedUnsure, component.StateConfused:
				ch, style = '?', styleAlert
			case component.StateSurePlayerSeen:
				ch, style = '!', styleHostile
			}
		}
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

func (r *Renderer) drawPlayer(w *engine.World, origin vmath.Vec2, width, height int) {
	player, ok := engine.First[component.Player](w)
	if !ok {
		return
	}
	pos, ok := engine.Get[component.Position](w, player)
	if !ok {
		return
	}
	x, y := toScreen(pos.Vec(), origin)
	if inView(x, y, width, height) {
		r.screen.SetContent(x, y, '@', nil, stylePlayer)
	}

	// Facing indicator one cell ahead
	if rot, ok := engine.Get[component.Rotation](w, player); ok {
		dx, dy, ch := facingCell(rot.Angle)
		fx, fy := x+dx, y+dy
		if inView(fx, fy, width, height) && (dx != 0 || dy != 0) {
			r.screen.SetContent(fx, fy, ch, nil, stylePlayer)
		}
	}
}

// facingCell quantizes an angle to one of eight neighbor cells and a
// matching direction rune
func facingCell(angle float64) (int, int, rune) {
	octant := int(math.Round(vmath.NormalizeAngle(angle)/(math.Pi/4))) & 7
	switch octant {
	case 0:
		return 1, 0, '-'
	case 1:
		return 1, 1, '\\'
	case 2:
		return 0, 1, '|'
	case 3:
		return -1, 1, '/'
	case 4:
		return -1, 0, '-'
	case 5:
		return -1, -1, '\\'
	case 6:
		return 0, -1, '|'
	}
	return 1, -1, '/'
}

func (r *Renderer) drawHUD(w *engine.World, levelName string, width, height int) {
	hud := fmt.Sprintf(" %s | HP %d | Ammo %d | Enemies %d ",
		levelName, game.PlayerHealth(w), game.PlayerAmmo(w), game.AliveEnemies(w))
	r.putString(0, height-1, hud, styleHUD)

	if !game.PlayerAlive(w) {
		msg := " YOU DIED - press r to restart, ESC to quit "
		r.putString((width-len(msg))/2, (height-1)/2, msg, styleOver)
	} else if game.AliveEnemies(w) == 0 {
		msg := " AREA CLEAR - press r to restart, ESC to quit "
		r.putString((width-len(msg))/2, (height-1)/2, msg, styleHUD)
	}
}

func (r *Renderer) putString(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		if x+i >= 0 {
			r.screen.SetContent(x+i, y, ch, nil, style)
		}
	}
}
