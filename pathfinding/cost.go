package pathfinding

import "math"

// CostModel defines the edge-cost constants and multipliers of a search.
type CostModel struct {
	OrthogonalCost float64 // base cost of a horizontal/vertical step
	DiagonalCost   float64 // base cost of a diagonal step

	// CornerAvoidanceFactor multiplies edge cost when the destination cell
	// is flagged as a corner and corner avoidance is enabled.
	CornerAvoidanceFactor float64

	// ObstacleProximityFactor multiplies edge cost when the destination
	// cell lies within ObstacleCheckRadius of a tracked obstacle.
	ObstacleProximityFactor float64

	// ObstacleCheckRadius is the world-space distance used for proximity
	// checks, both in edge cost and in smoothing validation.
	ObstacleCheckRadius float64
}

// DefaultCostModel provides reasonable defaults for path finding.
func DefaultCostModel() CostModel {
	return CostModel{
		OrthogonalCost:          1.0,
		DiagonalCost:            math.Sqrt2,
		CornerAvoidanceFactor:   1.5,
		ObstacleProximityFactor: 1.5,
		ObstacleCheckRadius:     2.0,
	}
}
