package grid

import (
	"time"

	"navgrid/core"
	"navgrid/geometry"
)

// obstacleRecord tracks one moving collider: where it was last seen and
// which cells it currently holds unwalkable. The cell set is what lets a
// disappearing obstacle be undone cleanly.
type obstacleRecord struct {
	id          int
	position    core.Vec2
	velocity    core.Vec2
	radius      float64
	markedCells []*Node
	lastUpdate  time.Time
}

// MarkDynamicObstacles runs one tracking tick: every cell previously marked
// by a tracked obstacle is restored to walkable, then the collaborator is
// re-queried and each moving body's footprint is marked around its
// predicted position (position + velocity x interval). Obstacles that have
// disappeared from the tracked area are dropped after their cells are
// restored.
func (g *Grid) MarkDynamicObstacles(interval time.Duration) {
	for _, rec := range g.obstacles {
		for _, n := range rec.markedCells {
			n.Walkable = true
		}
		rec.markedCells = rec.markedCells[:0]
	}

	seen := make(map[int]bool)
	if g.source != nil {
		now := time.Now()
		for _, body := range g.source.MovingBodies() {
			seen[body.ID] = true
			rec, ok := g.obstacles[body.ID]
			if !ok {
				rec = &obstacleRecord{id: body.ID}
				g.obstacles[body.ID] = rec
			}
			rec.position = body.Position
			rec.velocity = body.Velocity
			rec.radius = body.Radius
			rec.lastUpdate = now

			predicted := body.Position.Add(body.Velocity.Scale(interval.Seconds()))
			g.markAround(rec, predicted, body.Radius)
		}
	}

	for id := range g.obstacles {
		if !seen[id] {
			delete(g.obstacles, id)
		}
	}
}

// markAround flags every walkable cell whose center lies within radius of
// the predicted position and records it on the obstacle's claim list.
func (g *Grid) markAround(rec *obstacleRecord, center core.Vec2, radius float64) {
	c := g.NodeAt(center)
	span := int(radius/g.world.CellSize) + 1
	for gy := c.GY - span; gy <= c.GY+span; gy++ {
		for gx := c.GX - span; gx <= c.GX+span; gx++ {
			n := g.NodeAtIndex(gx, gy)
			if n == nil || !n.Walkable {
				continue
			}
			if geometry.Dist(n.World.X, n.World.Y, center.X, center.Y) <= radius {
				n.Walkable = false
				rec.markedCells = append(rec.markedCells, n)
			}
		}
	}
}

// IsInDynamicObstacleArea reports whether the grid coordinate is currently
// claimed by any tracked obstacle.
func (g *Grid) IsInDynamicObstacleArea(p core.GridPoint) bool {
	for _, rec := range g.obstacles {
		for _, n := range rec.markedCells {
			if n.GX == p.GX && n.GY == p.GY {
				return true
			}
		}
	}
	return false
}

// WithinObstacleProximity reports whether the world point lies within
// radius of any currently tracked obstacle's last-known position.
func (g *Grid) WithinObstacleProximity(p core.Vec2, radius float64) bool {
	for _, rec := range g.obstacles {
		if geometry.Dist(p.X, p.Y, rec.position.X, rec.position.Y) <= rec.radius+radius {
			return true
		}
	}
	return false
}

// TrackedObstacles returns the ids of all obstacles currently tracked.
func (g *Grid) TrackedObstacles() []int {
	ids := make([]int, 0, len(g.obstacles))
	for id := range g.obstacles {
		ids = append(ids, id)
	}
	return ids
}
