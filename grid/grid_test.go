package grid

import (
	"strings"
	"testing"

	"navgrid/core"
)

// mapSource implements core.ColliderSource from an ASCII map:
// '.' walkable, 'X' unwalkable, '~' water, 's' sand, 'm' mud.
// Row 0 of the map is grid row 0.
type mapSource struct {
	rows   []string
	bodies []core.MovingBody
}

func parseMap(s string) *mapSource {
	var rows []string
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	return &mapSource{rows: rows}
}

func (m *mapSource) worldConfig() core.WorldConfig {
	return core.WorldConfig{
		Origin:   core.Vec2{X: 0, Y: 0},
		Width:    float64(len(m.rows[0])),
		Height:   float64(len(m.rows)),
		CellSize: 1,
	}
}

func (m *mapSource) CollidersIn(center core.Vec2, halfExtent float64) []core.Collider {
	gx, gy := int(center.X), int(center.Y)
	if gy < 0 || gy >= len(m.rows) || gx < 0 || gx >= len(m.rows[gy]) {
		return nil
	}
	switch m.rows[gy][gx] {
	case 'X':
		return []core.Collider{{Class: core.ClassUnwalkable}}
	case '~':
		return []core.Collider{{HasTerrain: true, Terrain: core.TerrainWater}}
	case 's':
		return []core.Collider{{HasTerrain: true, Terrain: core.TerrainSand}}
	case 'm':
		return []core.Collider{{HasTerrain: true, Terrain: core.TerrainMud}}
	default:
		return nil
	}
}

func (m *mapSource) MovingBodies() []core.MovingBody {
	return m.bodies
}

func buildGrid(t *testing.T, s string) (*Grid, *mapSource) {
	t.Helper()
	src := parseMap(s)
	g := New(src.worldConfig(), src, DefaultConfig())
	g.Build()
	return g, src
}

func TestBuildClassification(t *testing.T) {
	g, _ := buildGrid(t, `
		.X~
		sm.`)

	tests := []struct {
		gx, gy   int
		walkable bool
		terrain  core.Terrain
	}{
		{0, 0, true, core.TerrainNormal},
		{1, 0, false, core.TerrainNormal},
		{2, 0, true, core.TerrainWater},
		{0, 1, true, core.TerrainSand},
		{1, 1, true, core.TerrainMud},
		{2, 1, true, core.TerrainNormal},
	}
	for _, tt := range tests {
		n := g.NodeAtIndex(tt.gx, tt.gy)
		if n.Walkable != tt.walkable {
			t.Errorf("(%d,%d) walkable = %v, want %v", tt.gx, tt.gy, n.Walkable, tt.walkable)
		}
		if n.Terrain != tt.terrain {
			t.Errorf("(%d,%d) terrain = %v, want %v", tt.gx, tt.gy, n.Terrain, tt.terrain)
		}
	}
}

func TestBuildMostRestrictiveWins(t *testing.T) {
	// A source that reports both an unwalkable collider and a terrain
	// collider for every cell: unwalkable must win.
	src := &overlapSource{}
	g := New(core.WorldConfig{Width: 2, Height: 2, CellSize: 1}, src, DefaultConfig())
	g.Build()

	n := g.NodeAtIndex(0, 0)
	if n.Walkable {
		t.Fatal("unwalkable classification should win over terrain")
	}
}

type overlapSource struct{}

func (o *overlapSource) CollidersIn(core.Vec2, float64) []core.Collider {
	return []core.Collider{
		{HasTerrain: true, Terrain: core.TerrainWater},
		{Class: core.ClassUnwalkable},
	}
}

func (o *overlapSource) MovingBodies() []core.MovingBody { return nil }

func TestNeighborsBoundsAndDedup(t *testing.T) {
	g, _ := buildGrid(t, `
		.....
		.....
		.....
		.....
		.....`)

	for gy := 0; gy < g.Height(); gy++ {
		for gx := 0; gx < g.Width(); gx++ {
			n := g.NodeAtIndex(gx, gy)
			neighbors := g.Neighbors(n, true)
			if len(neighbors) > 8 {
				t.Fatalf("(%d,%d): %d neighbors, want <= 8", gx, gy, len(neighbors))
			}
			seen := make(map[core.GridPoint]bool)
			for _, nb := range neighbors {
				if nb.GX < 0 || nb.GX >= g.Width() || nb.GY < 0 || nb.GY >= g.Height() {
					t.Errorf("(%d,%d): neighbor %v out of bounds", gx, gy, nb.Point())
				}
				if seen[nb.Point()] {
					t.Errorf("(%d,%d): duplicate neighbor %v", gx, gy, nb.Point())
				}
				seen[nb.Point()] = true
			}
		}
	}

	if got := len(g.Neighbors(g.NodeAtIndex(0, 0), true)); got != 3 {
		t.Errorf("corner cell neighbors = %d, want 3", got)
	}
	if got := len(g.Neighbors(g.NodeAtIndex(2, 2), true)); got != 8 {
		t.Errorf("center cell neighbors = %d, want 8", got)
	}
	if got := len(g.Neighbors(g.NodeAtIndex(2, 2), false)); got != 4 {
		t.Errorf("center cell orthogonal neighbors = %d, want 4", got)
	}
}

func TestNeighborsDiagonalCutting(t *testing.T) {
	// Both orthogonal cells flanking the (1,1)->(2,2) diagonal are blocked,
	// so that diagonal must be excluded even with diagonal movement on.
	g, _ := buildGrid(t, `
		...
		..X
		.X.`)

	n := g.NodeAtIndex(1, 1)
	for _, nb := range g.Neighbors(n, true) {
		if nb.GX == 2 && nb.GY == 2 {
			t.Fatal("diagonal through blocked corner must be excluded")
		}
	}

	// With only one flanking cell blocked the diagonal stays reachable.
	g2, _ := buildGrid(t, `
		...
		..X
		...`)
	found := false
	for _, nb := range g2.Neighbors(g2.NodeAtIndex(1, 1), true) {
		if nb.GX == 2 && nb.GY == 2 {
			found = true
		}
	}
	if !found {
		t.Fatal("diagonal with one open flank should be included")
	}
}

func TestNodeAtClamping(t *testing.T) {
	g, _ := buildGrid(t, `
		.....
		.....
		.....`)

	tests := []struct {
		name   string
		point  core.Vec2
		gx, gy int
	}{
		{"inside", core.Vec2{X: 2.5, Y: 1.5}, 2, 1},
		{"negative", core.Vec2{X: -10, Y: -10}, 0, 0},
		{"beyond max", core.Vec2{X: 100, Y: 100}, 4, 2},
		{"on edge", core.Vec2{X: 5, Y: 3}, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := g.NodeAt(tt.point)
			if n.GX != tt.gx || n.GY != tt.gy {
				t.Errorf("NodeAt(%v) = (%d,%d), want (%d,%d)", tt.point, n.GX, n.GY, tt.gx, tt.gy)
			}
		})
	}
}

func TestClosestWalkable(t *testing.T) {
	g, _ := buildGrid(t, `
		XXXXX
		XXXXX
		XX.XX
		XXXXX
		XXXXX`)

	n := g.ClosestWalkable(g.NodeAtIndex(2, 0))
	if n == nil {
		t.Fatal("expected a walkable cell within ring range")
	}
	if n.GX != 2 || n.GY != 2 {
		t.Errorf("ClosestWalkable = (%d,%d), want (2,2)", n.GX, n.GY)
	}

	// Already-walkable nodes return themselves.
	if got := g.ClosestWalkable(n); got != n {
		t.Error("walkable node should resolve to itself")
	}
}

func TestClosestWalkableNone(t *testing.T) {
	g, _ := buildGrid(t, `
		XXXX
		XXXX
		XXXX
		XXXX`)

	if n := g.ClosestWalkable(g.NodeAtIndex(1, 1)); n != nil {
		t.Errorf("fully blocked grid: got (%d,%d), want nil", n.GX, n.GY)
	}
}

func TestCornerDetection(t *testing.T) {
	// (1,1) is walkable with 5 blocked neighbors, 2 of them orthogonal.
	g, _ := buildGrid(t, `
		XXX
		X.X
		...`)

	n := g.NodeAtIndex(1, 1)
	if !n.Corner {
		t.Fatal("(1,1) should be flagged as a corner")
	}
	if n.MovementPenalty != DefaultConfig().CornerPenalty {
		t.Errorf("corner penalty = %v, want %v", n.MovementPenalty, DefaultConfig().CornerPenalty)
	}
	if !g.IsInCorner(core.Vec2{X: 1.5, Y: 1.5}) {
		t.Error("IsInCorner should report the corner cell")
	}

	// An open cell is not a corner.
	if g.NodeAtIndex(1, 2).Corner {
		t.Error("(1,2) should not be a corner")
	}
}

func TestCornerDetectionRequiresOrthogonalBlocks(t *testing.T) {
	// 5 blocked neighbors but only 1 orthogonal: not a corner.
	g, _ := buildGrid(t, `
		X.X
		X..
		X.X`)

	if g.NodeAtIndex(1, 1).Corner {
		t.Error("cell with a single blocked orthogonal neighbor must not be a corner")
	}
}
