package pathfinding

import (
	"math"

	"navgrid/core"
	"navgrid/geometry"
	"navgrid/grid"
)

// PostProcessConfig holds the tunables of path simplification and
// smoothing.
type PostProcessConfig struct {
	// TurnAngleThreshold is the minimum turn (radians) at which an interior
	// waypoint survives simplification.
	TurnAngleThreshold float64

	// MinSampleCount is the number of samples used to validate a straight
	// segment before smoothing through it.
	MinSampleCount int
}

// DefaultPostProcessConfig returns the post-processing defaults.
func DefaultPostProcessConfig() PostProcessConfig {
	return PostProcessConfig{
		TurnAngleThreshold: 15 * math.Pi / 180,
		MinSampleCount:     8,
	}
}

// PostProcessor turns a raw cell sequence into a shorter, more natural
// waypoint list. Simplification and smoothing are independent passes;
// smoothing always operates on the simplified path.
type PostProcessor struct {
	grid   *grid.Grid
	config PostProcessConfig
	costs  CostModel
}

// NewPostProcessor creates a post-processor bound to a grid.
func NewPostProcessor(g *grid.Grid, config PostProcessConfig, costs CostModel) *PostProcessor {
	return &PostProcessor{grid: g, config: config, costs: costs}
}

// Simplify drops redundant interior cells. The first and last cell always
// survive; an interior cell survives when the path turns sharply there,
// when it is far from the previously kept cell, or when it is a corner.
func (p *PostProcessor) Simplify(raw []*grid.Node) []*grid.Node {
	if len(raw) <= 2 {
		return raw
	}

	maxSpan := 1.5 * p.grid.CellSize()
	kept := []*grid.Node{raw[0]}

	for i := 1; i < len(raw)-1; i++ {
		prev := kept[len(kept)-1]
		curr := raw[i]
		next := raw[i+1]

		angle := geometry.TurnAngle(
			prev.World.X, prev.World.Y,
			curr.World.X, curr.World.Y,
			next.World.X, next.World.Y,
		)
		span := geometry.Dist(prev.World.X, prev.World.Y, curr.World.X, curr.World.Y)

		if angle > p.config.TurnAngleThreshold || span > maxSpan || curr.Corner {
			kept = append(kept, curr)
		}
	}

	return append(kept, raw[len(raw)-1])
}

// Smooth replaces interior waypoints with short Bézier runs where the
// surrounding straight line is safe to cut. Corner cells are never
// smoothed, and a straight segment only validates when every sample lands
// on walkable, non-corner, normal terrain away from tracked obstacles.
func (p *PostProcessor) Smooth(nodes []*grid.Node) []core.Waypoint {
	if len(nodes) <= 2 {
		return nodesToWaypoints(nodes)
	}

	out := []core.Waypoint{waypointOf(nodes[0])}
	for i := 1; i < len(nodes)-1; i++ {
		prev := nodes[i-1]
		curr := nodes[i]
		next := nodes[i+1]

		if curr.Corner || !p.directPathValid(prev.World, next.World) {
			out = append(out, waypointOf(curr))
			continue
		}

		out = append(out, p.bezierRun(prev, curr, next)...)
	}
	return append(out, waypointOf(nodes[len(nodes)-1]))
}

// directPathValid samples the straight segment between two points and
// rejects it if any sample falls on an unwalkable, corner or non-normal
// terrain cell, or inside the obstacle proximity radius.
func (p *PostProcessor) directPathValid(a, b core.Vec2) bool {
	samples := p.config.MinSampleCount
	if samples < 2 {
		samples = 2
	}
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		pt := core.Vec2{
			X: geometry.Lerp(a.X, b.X, t),
			Y: geometry.Lerp(a.Y, b.Y, t),
		}
		n := p.grid.NodeAt(pt)
		if !n.Walkable || n.Corner || n.Terrain != core.TerrainNormal {
			return false
		}
		if p.grid.WithinObstacleProximity(pt, p.costs.ObstacleCheckRadius) {
			return false
		}
	}
	return true
}

// bezierRun samples a cubic Bézier between prev and next, with control
// points at the midpoints of the two adjacent segments. Sample spacing is
// kept at or below half a cell; synthesized points inherit the more severe
// of the two bounding terrains.
func (p *PostProcessor) bezierRun(prev, curr, next *grid.Node) []core.Waypoint {
	c1 := core.Vec2{
		X: (prev.World.X + curr.World.X) / 2,
		Y: (prev.World.Y + curr.World.Y) / 2,
	}
	c2 := core.Vec2{
		X: (curr.World.X + next.World.X) / 2,
		Y: (curr.World.Y + next.World.Y) / 2,
	}

	span := geometry.Dist(prev.World.X, prev.World.Y, next.World.X, next.World.Y)
	segments := int(math.Ceil(span / (p.grid.CellSize() / 2)))
	if segments < 2 {
		segments = 2
	}

	terrain := core.WorseTerrain(prev.Terrain, next.Terrain)
	run := make([]core.Waypoint, 0, segments-1)
	for i := 1; i < segments; i++ {
		t := float64(i) / float64(segments)
		run = append(run, core.Waypoint{
			Position: core.Vec2{
				X: geometry.CubicBezier(prev.World.X, c1.X, c2.X, next.World.X, t),
				Y: geometry.CubicBezier(prev.World.Y, c1.Y, c2.Y, next.World.Y, t),
			},
			Terrain: terrain,
		})
	}
	return run
}

func waypointOf(n *grid.Node) core.Waypoint {
	return core.Waypoint{Position: n.World, Terrain: n.Terrain}
}

func nodesToWaypoints(nodes []*grid.Node) []core.Waypoint {
	out := make([]core.Waypoint, len(nodes))
	for i, n := range nodes {
		out[i] = waypointOf(n)
	}
	return out
}
