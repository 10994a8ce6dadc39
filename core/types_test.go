package core

import "testing"

func TestTerrainSeverityOrder(t *testing.T) {
	// Mud > Water > Sand > Normal.
	order := []Terrain{TerrainNormal, TerrainSand, TerrainWater, TerrainMud}
	for i := 1; i < len(order); i++ {
		if order[i].Severity() <= order[i-1].Severity() {
			t.Errorf("%v severity %d not above %v severity %d",
				order[i], order[i].Severity(), order[i-1], order[i-1].Severity())
		}
	}
}

func TestWorseTerrain(t *testing.T) {
	tests := []struct {
		a, b, want Terrain
	}{
		{TerrainNormal, TerrainMud, TerrainMud},
		{TerrainWater, TerrainSand, TerrainWater},
		{TerrainMud, TerrainWater, TerrainMud},
		{TerrainNormal, TerrainNormal, TerrainNormal},
	}
	for _, tt := range tests {
		if got := WorseTerrain(tt.a, tt.b); got != tt.want {
			t.Errorf("WorseTerrain(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestWorldConfigCells(t *testing.T) {
	tests := []struct {
		name   string
		config WorldConfig
		cx, cy int
	}{
		{"exact fit", WorldConfig{Width: 10, Height: 5, CellSize: 1}, 10, 5},
		{"fractional cells truncate", WorldConfig{Width: 10, Height: 10, CellSize: 3}, 3, 3},
		{"degenerate world still one cell", WorldConfig{Width: 0.1, Height: 0.1, CellSize: 1}, 1, 1},
		{"zero cell size", WorldConfig{Width: 10, Height: 10}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy := tt.config.Cells()
			if cx != tt.cx || cy != tt.cy {
				t.Errorf("Cells() = (%d,%d), want (%d,%d)", cx, cy, tt.cx, tt.cy)
			}
		})
	}
}

func TestPathHelpers(t *testing.T) {
	var empty Path
	if !empty.IsEmpty() || empty.Length() != 0 {
		t.Error("zero path should be empty")
	}

	p := Path{Waypoints: []Waypoint{{Position: Vec2{X: 1, Y: 2}}}}
	if p.IsEmpty() || p.Length() != 1 {
		t.Error("single waypoint path misreported")
	}
}
