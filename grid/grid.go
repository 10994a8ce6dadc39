// Package grid owns the dense cell array the pathfinding engine searches
// over: building it from world bounds, classifying walkability and terrain,
// detecting corner cells and tracking moving obstacles.
package grid

import (
	"navgrid/core"
	"navgrid/geometry"
)

// Config holds the tunable classification parameters of a grid.
type Config struct {
	// Terrain cost multipliers. Normal terrain is always 1.0.
	WaterWeight float64
	SandWeight  float64
	MudWeight   float64

	// CornerPenalty is the movement-penalty multiplier applied to cells
	// flagged by corner detection.
	CornerPenalty float64
}

// DefaultConfig returns the classification defaults.
func DefaultConfig() Config {
	return Config{
		WaterWeight:   2.0,
		SandWeight:    1.5,
		MudWeight:     3.0,
		CornerPenalty: 1.5,
	}
}

// Grid is a dense rectangular array of Nodes built from a world area and a
// cell size. It owns all its nodes exclusively.
type Grid struct {
	world  core.WorldConfig
	config Config
	source core.ColliderSource

	width, height int
	nodes         []*Node

	corners   map[core.GridPoint]bool
	obstacles map[int]*obstacleRecord
}

// New creates a grid covering the configured world area. Build must be
// called before the grid is searched.
func New(world core.WorldConfig, source core.ColliderSource, config Config) *Grid {
	w, h := world.Cells()
	return &Grid{
		world:     world,
		config:    config,
		source:    source,
		width:     w,
		height:    h,
		corners:   make(map[core.GridPoint]bool),
		obstacles: make(map[int]*obstacleRecord),
	}
}

// Width returns the number of cells along the X axis.
func (g *Grid) Width() int { return g.width }

// Height returns the number of cells along the Y axis.
func (g *Grid) Height() int { return g.height }

// CellSize returns the edge length of one cell in world units.
func (g *Grid) CellSize() float64 { return g.world.CellSize }

// Build allocates the node array and classifies every cell. Any previous
// nodes, corner flags and dynamic obstacle claims are discarded.
func (g *Grid) Build() {
	g.nodes = make([]*Node, g.width*g.height)
	g.corners = make(map[core.GridPoint]bool)
	g.obstacles = make(map[int]*obstacleRecord)

	half := g.world.CellSize / 2
	for gy := 0; gy < g.height; gy++ {
		for gx := 0; gx < g.width; gx++ {
			center := core.Vec2{
				X: g.world.Origin.X + (float64(gx)+0.5)*g.world.CellSize,
				Y: g.world.Origin.Y + (float64(gy)+0.5)*g.world.CellSize,
			}
			n := &Node{
				GX:              gx,
				GY:              gy,
				World:           center,
				Walkable:        true,
				Terrain:         core.TerrainNormal,
				TerrainWeight:   1.0,
				MovementPenalty: 1.0,
				HeapIndex:       -1,
			}
			g.classify(n, center, half)
			g.nodes[gy*g.width+gx] = n
		}
	}

	g.detectCorners()
}

// classify applies the most restrictive result of all colliders overlapping
// the cell: an unwalkable classification always wins, and among terrain
// opinions the most severe terrain wins.
func (g *Grid) classify(n *Node, center core.Vec2, halfExtent float64) {
	if g.source == nil {
		return
	}
	for _, c := range g.source.CollidersIn(center, halfExtent) {
		if c.Class == core.ClassUnwalkable {
			n.Walkable = false
			continue
		}
		if c.HasTerrain && c.Terrain.Severity() >= n.Terrain.Severity() {
			n.Terrain = c.Terrain
			n.TerrainWeight = g.terrainWeight(c)
		}
	}
}

func (g *Grid) terrainWeight(c core.Collider) float64 {
	if c.TerrainWeight > 0 {
		return c.TerrainWeight
	}
	switch c.Terrain {
	case core.TerrainWater:
		return g.config.WaterWeight
	case core.TerrainSand:
		return g.config.SandWeight
	case core.TerrainMud:
		return g.config.MudWeight
	default:
		return 1.0
	}
}

// NodeAtIndex returns the node at integer grid coordinates, or nil when the
// coordinates are outside the grid.
func (g *Grid) NodeAtIndex(gx, gy int) *Node {
	if gx < 0 || gx >= g.width || gy < 0 || gy >= g.height {
		return nil
	}
	return g.nodes[gy*g.width+gx]
}

// NodeAt maps a world coordinate to its containing cell. Out-of-bounds
// points resolve to the nearest edge cell; this never fails.
func (g *Grid) NodeAt(p core.Vec2) *Node {
	tx := geometry.InverseLerp(g.world.Origin.X, g.world.Origin.X+g.world.Width, p.X)
	ty := geometry.InverseLerp(g.world.Origin.Y, g.world.Origin.Y+g.world.Height, p.Y)
	gx := geometry.Clamp(int(tx*float64(g.width)), 0, g.width-1)
	gy := geometry.Clamp(int(ty*float64(g.height)), 0, g.height-1)
	return g.nodes[gy*g.width+gx]
}

// Neighbors returns the up-to-8 cells adjacent to n. Diagonal neighbors are
// omitted when diagonal movement is disabled, or when both orthogonal cells
// flanking the diagonal are unwalkable (no cutting through blocked corners).
func (g *Grid) Neighbors(n *Node, diagonal bool) []*Node {
	neighbors := make([]*Node, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nb := g.NodeAtIndex(n.GX+dx, n.GY+dy)
			if nb == nil {
				continue
			}
			if dx != 0 && dy != 0 {
				if !diagonal {
					continue
				}
				across := g.NodeAtIndex(n.GX+dx, n.GY)
				down := g.NodeAtIndex(n.GX, n.GY+dy)
				if (across == nil || !across.Walkable) && (down == nil || !down.Walkable) {
					continue
				}
			}
			neighbors = append(neighbors, nb)
		}
	}
	return neighbors
}

// ClosestWalkable searches outward from n in expanding rings, examining the
// four ring-edge midline cells at each radius, and returns the first
// walkable cell found. Returns nil when no walkable cell is within range.
func (g *Grid) ClosestWalkable(n *Node) *Node {
	if n == nil {
		return nil
	}
	if n.Walkable {
		return n
	}
	maxRadius := geometry.Max(g.width, g.height) / 2
	for r := 1; r <= maxRadius; r++ {
		candidates := [4]*Node{
			g.NodeAtIndex(n.GX+r, n.GY),
			g.NodeAtIndex(n.GX-r, n.GY),
			g.NodeAtIndex(n.GX, n.GY+r),
			g.NodeAtIndex(n.GX, n.GY-r),
		}
		for _, c := range candidates {
			if c != nil && c.Walkable {
				return c
			}
		}
	}
	return nil
}

// detectCorners recomputes the corner set. A walkable interior cell is a
// corner when at least 5 of its 8 neighbors are unwalkable and at least 2
// of its orthogonal neighbors are unwalkable.
func (g *Grid) detectCorners() {
	for gy := 1; gy < g.height-1; gy++ {
		for gx := 1; gx < g.width-1; gx++ {
			n := g.nodes[gy*g.width+gx]
			if !n.Walkable {
				continue
			}
			blocked, orthoBlocked := 0, 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nb := g.nodes[(gy+dy)*g.width+(gx+dx)]
					if nb.Walkable {
						continue
					}
					blocked++
					if dx == 0 || dy == 0 {
						orthoBlocked++
					}
				}
			}
			if blocked >= 5 && orthoBlocked >= 2 {
				n.Corner = true
				n.MovementPenalty = g.config.CornerPenalty
				g.corners[n.Point()] = true
			}
		}
	}
}

// IsInCorner reports whether the cell containing the world point is flagged
// as a corner.
func (g *Grid) IsInCorner(p core.Vec2) bool {
	return g.corners[g.NodeAt(p).Point()]
}

// ResetSearchState clears every node's per-search scratch fields. Called by
// the search engine before each run.
func (g *Grid) ResetSearchState() {
	for _, n := range g.nodes {
		n.resetScratch()
	}
}
