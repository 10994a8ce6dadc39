package grid

import "navgrid/core"

// Node is one cell of the navigation grid. Identity (GX, GY) and the world
// position are fixed at build time; walkability and terrain are maintained
// by the grid as the world changes.
//
// G, H, F, Parent and HeapIndex are search scratch: they belong to exactly
// one running search and are reset before each run. Two searches over the
// same grid must not overlap.
type Node struct {
	GX, GY int
	World  core.Vec2

	Walkable        bool
	Terrain         core.Terrain
	TerrainWeight   float64
	MovementPenalty float64
	Corner          bool

	G, H, F   float64
	Parent    *Node
	HeapIndex int
}

// Point returns the node's grid coordinate.
func (n *Node) Point() core.GridPoint {
	return core.GridPoint{GX: n.GX, GY: n.GY}
}

// UpdateF recomputes the total cost from the current G and H.
func (n *Node) UpdateF() {
	n.F = n.G + n.H
}

// resetScratch clears per-search state so the node can be reused.
func (n *Node) resetScratch() {
	n.G = 0
	n.H = 0
	n.F = 0
	n.Parent = nil
	n.HeapIndex = -1
}
