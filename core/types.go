// Package core contains the fundamental types shared by the navgrid engine.
package core

import "fmt"

// GridPoint is an integer cell coordinate on the navigation grid.
type GridPoint struct {
	GX, GY int
}

// String returns the string representation of a GridPoint.
func (p GridPoint) String() string {
	return fmt.Sprintf("(%d,%d)", p.GX, p.GY)
}

// Vec2 is a world-space coordinate.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Terrain classifies the surface of a grid cell.
type Terrain int

const (
	TerrainNormal Terrain = iota
	TerrainWater
	TerrainSand
	TerrainMud
)

// String returns the string representation of a Terrain.
func (t Terrain) String() string {
	switch t {
	case TerrainNormal:
		return "Normal"
	case TerrainWater:
		return "Water"
	case TerrainSand:
		return "Sand"
	case TerrainMud:
		return "Mud"
	default:
		return "Unknown"
	}
}

// Severity ranks terrains for worst-case comparisons: Mud > Water > Sand > Normal.
func (t Terrain) Severity() int {
	switch t {
	case TerrainMud:
		return 3
	case TerrainWater:
		return 2
	case TerrainSand:
		return 1
	default:
		return 0
	}
}

// WorseTerrain returns the more severe of two terrains.
func WorseTerrain(a, b Terrain) Terrain {
	if b.Severity() > a.Severity() {
		return b
	}
	return a
}

// Waypoint is a single step of a computed route: a world position plus
// the terrain it crosses.
type Waypoint struct {
	Position Vec2    `json:"position"`
	Terrain  Terrain `json:"terrain"`
}

// Path is an ordered sequence of waypoints. An empty path means "no route".
type Path struct {
	Waypoints []Waypoint
	Cost      float64
}

// Length returns the number of waypoints in the path.
func (p Path) Length() int {
	return len(p.Waypoints)
}

// IsEmpty returns true if the path has no waypoints.
func (p Path) IsEmpty() bool {
	return len(p.Waypoints) == 0
}

// WorldConfig describes the area covered by a grid: its world-space origin
// (minimum corner), extents and the edge length of one square cell.
type WorldConfig struct {
	Origin   Vec2
	Width    float64
	Height   float64
	CellSize float64
}

// Cells returns the grid dimensions implied by the config.
func (w WorldConfig) Cells() (int, int) {
	if w.CellSize <= 0 {
		return 0, 0
	}
	cx := int(w.Width / w.CellSize)
	cy := int(w.Height / w.CellSize)
	if cx < 1 {
		cx = 1
	}
	if cy < 1 {
		cy = 1
	}
	return cx, cy
}
