package pathfinding

import (
	"math"

	"navgrid/core"
	"navgrid/geometry"
)

// HeuristicKind selects one of the named heuristic strategies.
type HeuristicKind int

const (
	HeuristicManhattan HeuristicKind = iota
	HeuristicEuclidean
	HeuristicChebyshev
	HeuristicOctile
	HeuristicCustom
)

// String returns the string representation of a HeuristicKind.
func (k HeuristicKind) String() string {
	switch k {
	case HeuristicManhattan:
		return "manhattan"
	case HeuristicEuclidean:
		return "euclidean"
	case HeuristicChebyshev:
		return "chebyshev"
	case HeuristicOctile:
		return "octile"
	case HeuristicCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// HeuristicByName maps a strategy name to its kind. Unknown names fall back
// to Euclidean.
func HeuristicByName(name string) HeuristicKind {
	switch name {
	case "manhattan":
		return HeuristicManhattan
	case "chebyshev":
		return HeuristicChebyshev
	case "octile":
		return HeuristicOctile
	case "custom":
		return HeuristicCustom
	default:
		return HeuristicEuclidean
	}
}

// heuristicInput is the subset of node state a heuristic may read.
type heuristicInput struct {
	gx, gy  int
	terrain core.Terrain
}

// estimate computes the selected heuristic over grid-index distance. World
// distance never enters here; terrain only matters to the custom strategy.
func (k HeuristicKind) estimate(a, b heuristicInput) float64 {
	dx := float64(geometry.Abs(b.gx - a.gx))
	dy := float64(geometry.Abs(b.gy - a.gy))

	switch k {
	case HeuristicManhattan:
		return dx + dy
	case HeuristicChebyshev:
		return math.Max(dx, dy)
	case HeuristicOctile:
		return (dx + dy) + (math.Sqrt2-2)*math.Min(dx, dy)
	case HeuristicCustom:
		return math.Sqrt(dx*dx+dy*dy) * terrainFactor(a.terrain) * terrainFactor(b.terrain)
	default:
		return math.Sqrt(dx*dx + dy*dy)
	}
}

// terrainFactor is the custom heuristic's penalty for difficult terrain at
// one endpoint. Factors compound across the two cells compared.
func terrainFactor(t core.Terrain) float64 {
	switch t {
	case core.TerrainWater:
		return 1.5
	case core.TerrainMud:
		return 2.0
	case core.TerrainSand:
		return 1.2
	default:
		return 1.0
	}
}
