package pathfinding

import (
	"math"
	"testing"

	"navgrid/core"
)

func TestHeuristicEstimates(t *testing.T) {
	a := heuristicInput{gx: 0, gy: 0, terrain: core.TerrainNormal}
	b := heuristicInput{gx: 3, gy: 4, terrain: core.TerrainNormal}

	tests := []struct {
		kind HeuristicKind
		want float64
	}{
		{HeuristicManhattan, 7},
		{HeuristicEuclidean, 5},
		{HeuristicChebyshev, 4},
		{HeuristicOctile, 7 + (math.Sqrt2-2)*3},
		{HeuristicCustom, 5}, // both endpoints normal: plain euclidean
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := tt.kind.estimate(a, b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("estimate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCustomHeuristicTerrainFactors(t *testing.T) {
	base := heuristicInput{gx: 0, gy: 0, terrain: core.TerrainNormal}
	goal := func(t core.Terrain) heuristicInput {
		return heuristicInput{gx: 3, gy: 4, terrain: t}
	}

	tests := []struct {
		name    string
		a, b    heuristicInput
		want    float64
	}{
		{"water endpoint", base, goal(core.TerrainWater), 5 * 1.5},
		{"mud endpoint", base, goal(core.TerrainMud), 5 * 2.0},
		{"sand endpoint", base, goal(core.TerrainSand), 5 * 1.2},
		{
			"factors compound across endpoints",
			heuristicInput{gx: 0, gy: 0, terrain: core.TerrainWater},
			goal(core.TerrainMud),
			5 * 1.5 * 2.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HeuristicCustom.estimate(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("estimate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeuristicSymmetryOverIndices(t *testing.T) {
	// Heuristics measure grid-index distance, so direction must not matter.
	a := heuristicInput{gx: 2, gy: 7}
	b := heuristicInput{gx: 9, gy: 1}
	for _, kind := range []HeuristicKind{HeuristicManhattan, HeuristicEuclidean, HeuristicChebyshev, HeuristicOctile} {
		if kind.estimate(a, b) != kind.estimate(b, a) {
			t.Errorf("%v: estimate not symmetric", kind)
		}
	}
}

func TestHeuristicByName(t *testing.T) {
	tests := []struct {
		name string
		want HeuristicKind
	}{
		{"manhattan", HeuristicManhattan},
		{"euclidean", HeuristicEuclidean},
		{"chebyshev", HeuristicChebyshev},
		{"octile", HeuristicOctile},
		{"custom", HeuristicCustom},
		{"nonsense", HeuristicEuclidean},
	}
	for _, tt := range tests {
		if got := HeuristicByName(tt.name); got != tt.want {
			t.Errorf("HeuristicByName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
