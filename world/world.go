// Package world is an in-memory implementation of the engine's collaborator
// boundary: rectangular static obstacles, terrain patches and moving bodies
// that bounce inside the world bounds. The server and viewer binaries use
// it as their demo world; tests can use it as a ready-made ColliderSource.
package world

import (
	"sync"

	"navgrid/core"
)

// Rect is an axis-aligned world-space rectangle.
type Rect struct {
	Min, Max core.Vec2
}

// overlaps reports whether the rect intersects the square region centered
// at c with the given half-extent.
func (r Rect) overlaps(c core.Vec2, half float64) bool {
	return c.X+half > r.Min.X && c.X-half < r.Max.X &&
		c.Y+half > r.Min.Y && c.Y-half < r.Max.Y
}

// TerrainPatch assigns a terrain to a rectangular area.
type TerrainPatch struct {
	Area    Rect
	Terrain core.Terrain
}

// Mover is a moving circular body.
type Mover struct {
	ID       int
	Position core.Vec2
	Velocity core.Vec2
	Radius   float64
}

// World holds the demo world state. Safe for concurrent use: the tick loop
// steps movers while HTTP handlers trigger grid queries.
type World struct {
	mu      sync.Mutex
	bounds  Rect
	statics []Rect
	patches []TerrainPatch
	movers  []*Mover
	nextID  int
}

// New creates an empty world spanning the given bounds.
func New(bounds Rect) *World {
	return &World{bounds: bounds, nextID: 1}
}

// AddStatic registers a rectangular unwalkable obstacle.
func (w *World) AddStatic(r Rect) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.statics = append(w.statics, r)
}

// AddPatch registers a terrain patch.
func (w *World) AddPatch(p TerrainPatch) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.patches = append(w.patches, p)
}

// AddMover spawns a moving body and returns its id.
func (w *World) AddMover(pos, vel core.Vec2, radius float64) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	w.movers = append(w.movers, &Mover{ID: id, Position: pos, Velocity: vel, Radius: radius})
	return id
}

// RemoveMover despawns a moving body.
func (w *World) RemoveMover(id int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, m := range w.movers {
		if m.ID == id {
			w.movers = append(w.movers[:i], w.movers[i+1:]...)
			return
		}
	}
}

// Step advances every mover by dt seconds, bouncing off the world bounds.
func (w *World) Step(dt float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, m := range w.movers {
		m.Position.X += m.Velocity.X * dt
		m.Position.Y += m.Velocity.Y * dt
		if m.Position.X < w.bounds.Min.X || m.Position.X > w.bounds.Max.X {
			m.Velocity.X = -m.Velocity.X
		}
		if m.Position.Y < w.bounds.Min.Y || m.Position.Y > w.bounds.Max.Y {
			m.Velocity.Y = -m.Velocity.Y
		}
	}
}

// CollidersIn implements core.ColliderSource for the static world: overlap
// against obstacle rects and terrain patches. Moving bodies are reported
// through MovingBodies, not here.
func (w *World) CollidersIn(center core.Vec2, halfExtent float64) []core.Collider {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []core.Collider
	for i, r := range w.statics {
		if r.overlaps(center, halfExtent) {
			out = append(out, core.Collider{ID: -(i + 1), Class: core.ClassUnwalkable})
		}
	}
	for _, p := range w.patches {
		if p.Area.overlaps(center, halfExtent) {
			out = append(out, core.Collider{HasTerrain: true, Terrain: p.Terrain})
		}
	}
	return out
}

// MovingBodies implements core.ColliderSource.
func (w *World) MovingBodies() []core.MovingBody {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]core.MovingBody, 0, len(w.movers))
	for _, m := range w.movers {
		out = append(out, core.MovingBody{
			ID:       m.ID,
			Position: m.Position,
			Velocity: m.Velocity,
			Radius:   m.Radius,
		})
	}
	return out
}
