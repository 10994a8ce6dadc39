package world

import (
	"testing"

	"navgrid/core"
)

func TestCollidersInOverlap(t *testing.T) {
	w := New(Rect{Min: core.Vec2{}, Max: core.Vec2{X: 10, Y: 10}})
	w.AddStatic(Rect{Min: core.Vec2{X: 2, Y: 2}, Max: core.Vec2{X: 4, Y: 4}})
	w.AddPatch(TerrainPatch{
		Area:    Rect{Min: core.Vec2{X: 6, Y: 6}, Max: core.Vec2{X: 8, Y: 8}},
		Terrain: core.TerrainWater,
	})

	tests := []struct {
		name       string
		center     core.Vec2
		wantCount  int
		wantBlock  bool
		wantWater  bool
	}{
		{"inside static", core.Vec2{X: 3, Y: 3}, 1, true, false},
		{"inside patch", core.Vec2{X: 7, Y: 7}, 1, false, true},
		{"open ground", core.Vec2{X: 5, Y: 1}, 0, false, false},
		{"touching static edge", core.Vec2{X: 4.4, Y: 3}, 1, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.CollidersIn(tt.center, 0.5)
			if len(got) != tt.wantCount {
				t.Fatalf("colliders = %d, want %d", len(got), tt.wantCount)
			}
			for _, c := range got {
				if tt.wantBlock && c.Class != core.ClassUnwalkable {
					t.Error("expected an unwalkable collider")
				}
				if tt.wantWater && (!c.HasTerrain || c.Terrain != core.TerrainWater) {
					t.Error("expected a water terrain collider")
				}
			}
		})
	}
}

func TestMoverStepAndBounce(t *testing.T) {
	w := New(Rect{Min: core.Vec2{}, Max: core.Vec2{X: 10, Y: 10}})
	id := w.AddMover(core.Vec2{X: 9.5, Y: 5}, core.Vec2{X: 2, Y: 0}, 0.5)

	w.Step(0.5) // crosses the right bound, velocity flips
	bodies := w.MovingBodies()
	if len(bodies) != 1 || bodies[0].ID != id {
		t.Fatalf("bodies = %v", bodies)
	}
	if bodies[0].Velocity.X >= 0 {
		t.Errorf("velocity.X = %v, want negative after bounce", bodies[0].Velocity.X)
	}

	w.RemoveMover(id)
	if got := w.MovingBodies(); len(got) != 0 {
		t.Errorf("bodies after removal = %d, want 0", len(got))
	}
}
