package systems

import (
	"math"
	"testing"

	"github.com/lixenwraith/nightgrid/component"
	"github.com/lixenwraith/nightgrid/engine"
	"github.com/lixenwraith/nightgrid/parameter"
	"github.com/lixenwraith/nightgrid/vmath"
)

func TestMovementIntegratesVelocity(t *testing.T) {
	w := newTestWorld()
	player := addPlayer(w, 400, 300)
	w.SetComponent(player, component.Velocity{X: 100, Y: -50})

	sys := NewMovementSystem()
	sys.Update(w, 0.5)

	pos, _ := engine.Get[component.Position](w, player)
	if math.Abs(pos.X-450) > 0.001 || math.Abs(pos.Y-275) > 0.001 {
		t.Errorf("expected (450, 275), got (%v, %v)", pos.X, pos.Y)
	}
}

func TestMovementPushesOutOfWall(t *testing.T) {
	w := newTestWorld()
	w.AddWall(vmath.Rect{X: 500, Y: 200, W: 20, H: 200})
	player := addPlayer(w, 480, 300)
	// Ram the wall from the left
	w.SetComponent(player, component.Velocity{X: 200, Y: 0})

	sys := NewMovementSystem()
	sys.Update(w, 0.1)

	pos, _ := engine.Get[component.Position](w, player)
	if pos.X > 500-parameter.PlayerRadius+0.001 {
		t.Errorf("player should rest against the wall face, X=%v", pos.X)
	}
	if vmath.CircleRect(pos.Vec(), parameter.PlayerRadius, vmath.Rect{X: 500, Y: 200, W: 20, H: 200}) {
		t.Error("player still overlaps the wall after resolution")
	}
}

func TestMovementSlidesAlongWall(t *testing.T) {
	w := newTestWorld()
	wall := vmath.Rect{X: 500, Y: 200, W: 20, H: 200}
	w.AddWall(wall)
	player := addPlayer(w, 483, 300)
	// Push diagonally into the wall: X is absorbed, Y survives
	w.SetComponent(player, component.Velocity{X: 100, Y: 100})

	sys := NewMovementSystem()
	sys.Update(w, 0.1)

	pos, _ := engine.Get[component.Position](w, player)
	if math.Abs(pos.Y-310) > 0.001 {
		t.Errorf("Y movement should survive the slide, Y=%v", pos.Y)
	}
	if vmath.CircleRect(pos.Vec(), parameter.PlayerRadius, wall) {
		t.Error("player overlaps the wall after sliding")
	}
}

func TestMovementClampsToWorldBounds(t *testing.T) {
	w := newTestWorld()
	player := addPlayer(w, 20, 20)
	w.SetComponent(player, component.Velocity{X: -500, Y: -500})

	sys := NewMovementSystem()
	sys.Update(w, 1.0)

	pos, _ := engine.Get[component.Position](w, player)
	if pos.X != parameter.PlayerRadius || pos.Y != parameter.PlayerRadius {
		t.Errorf("expected clamp at the world edge, got (%v, %v)", pos.X, pos.Y)
	}
}

func TestMovementIgnoresWallsForBodiless(t *testing.T) {
	w := newTestWorld()
	wall := vmath.Rect{X: 500, Y: 200, W: 20, H: 200}
	w.AddWall(wall)

	// A bullet-like entity with no Radius flies straight through
	e := w.Spawn()
	w.AddComponent(e, component.Position{X: 480, Y: 300})
	w.AddComponent(e, component.Velocity{X: 800, Y: 0})

	sys := NewMovementSystem()
	sys.Update(w, 0.1)

	pos, _ := engine.Get[component.Position](w, e)
	if math.Abs(pos.X-560) > 0.001 {
		t.Errorf("bodiless entity should pass through, X=%v", pos.X)
	}
}
