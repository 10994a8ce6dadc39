// Package pathfinding computes traversable routes over a navgrid grid:
// A* search with selectable heuristics, terrain- and corner-aware edge
// costs, path simplification and smoothing, and a TTL result cache.
package pathfinding

import (
	"navgrid/core"
	"navgrid/grid"
)

// Engine runs A* searches over one grid. It writes the grid's per-node
// search scratch, so at most one search may run at a time; the Pathfinder
// facade serializes callers.
type Engine struct {
	grid      *grid.Grid
	costs     CostModel
	heuristic HeuristicKind

	diagonal        bool
	cornerAvoidance bool
}

// NewEngine creates a search engine over the given grid.
func NewEngine(g *grid.Grid, costs CostModel) *Engine {
	return &Engine{
		grid:            g,
		costs:           costs,
		heuristic:       HeuristicEuclidean,
		diagonal:        true,
		cornerAvoidance: true,
	}
}

// SetHeuristic selects the heuristic strategy.
func (e *Engine) SetHeuristic(k HeuristicKind) { e.heuristic = k }

// SetDiagonal enables or disables diagonal movement.
func (e *Engine) SetDiagonal(enabled bool) { e.diagonal = enabled }

// SetCornerAvoidance enables or disables corner and obstacle-proximity
// cost shaping.
func (e *Engine) SetCornerAvoidance(enabled bool) { e.cornerAvoidance = enabled }

// FindPath computes the lowest-cost cell sequence between two world points.
// Unwalkable start or goal cells are substituted with the nearest walkable
// cell; when none exists, or when the open set empties before the goal is
// reached, the result is nil. No path is never an error.
func (e *Engine) FindPath(from, to core.Vec2) ([]*grid.Node, float64) {
	start := e.grid.ClosestWalkable(e.grid.NodeAt(from))
	goal := e.grid.ClosestWalkable(e.grid.NodeAt(to))
	if start == nil || goal == nil {
		return nil, 0
	}
	if start == goal {
		return []*grid.Node{start}, 0
	}

	e.grid.ResetSearchState()

	open := newNodeQueue(e.grid.Width() * e.grid.Height())
	closed := make(map[core.GridPoint]bool)

	start.G = 0
	start.H = e.estimate(start, goal)
	start.UpdateF()
	open.push(start)

	for open.Len() > 0 {
		current := open.popMin()
		if current == goal {
			return reconstruct(current)
		}
		closed[current.Point()] = true

		for _, neighbor := range e.grid.Neighbors(current, e.diagonal) {
			if !neighbor.Walkable || closed[neighbor.Point()] {
				continue
			}

			tentative := current.G + e.edgeCost(current, neighbor)
			queued := open.contains(neighbor)
			if queued && tentative >= neighbor.G {
				continue
			}

			neighbor.Parent = current
			neighbor.G = tentative
			neighbor.H = e.estimate(neighbor, goal)
			neighbor.UpdateF()

			if queued {
				open.update(neighbor)
			} else {
				open.push(neighbor)
			}
		}
	}

	return nil, 0
}

// edgeCost prices the move from one cell to an adjacent one: a base step
// constant, scaled by the average terrain weight of the two endpoints,
// shaped by corner avoidance and obstacle proximity, and finally by the
// destination's movement penalty. The corner-avoidance factor and the
// corner-carrying movement penalty both apply when the destination is a
// corner; the compounding is deliberate.
// TODO: reconcile the double corner penalty with the corner-avoidance
// factor once tuning data exists for grids where both are enabled.
func (e *Engine) edgeCost(from, to *grid.Node) float64 {
	base := e.costs.OrthogonalCost
	if from.GX != to.GX && from.GY != to.GY {
		base = e.costs.DiagonalCost
	}

	cost := base * (from.TerrainWeight + to.TerrainWeight) / 2

	if e.cornerAvoidance {
		if to.Corner {
			cost *= e.costs.CornerAvoidanceFactor
		}
		if e.grid.WithinObstacleProximity(to.World, e.costs.ObstacleCheckRadius) {
			cost *= e.costs.ObstacleProximityFactor
		}
	}

	return cost * to.MovementPenalty
}

func (e *Engine) estimate(n, goal *grid.Node) float64 {
	return e.heuristic.estimate(
		heuristicInput{gx: n.GX, gy: n.GY, terrain: n.Terrain},
		heuristicInput{gx: goal.GX, gy: goal.GY, terrain: goal.Terrain},
	)
}

// reconstruct walks parent links from the goal back to the start and
// reverses the result.
func reconstruct(goal *grid.Node) ([]*grid.Node, float64) {
	var nodes []*grid.Node
	for n := goal; n != nil; n = n.Parent {
		nodes = append(nodes, n)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return nodes, goal.G
}
