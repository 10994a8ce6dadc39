package core

// Classification tags a collider as blocking or merely slowing movement.
type Classification int

const (
	ClassWalkable Classification = iota
	ClassUnwalkable
)

// BodyKind distinguishes static scenery from moving bodies.
type BodyKind int

const (
	BodyStatic BodyKind = iota
	BodyKinematic
	BodyDynamic
)

// Collider is one overlapping shape returned by a world query. A collider
// always carries a walkability classification; terrain information is
// optional (HasTerrain false means "no terrain opinion").
type Collider struct {
	ID            int
	Class         Classification
	Kind          BodyKind
	HasTerrain    bool
	Terrain       Terrain
	TerrainWeight float64
}

// MovingBody is the tracked state of a non-static collider.
type MovingBody struct {
	ID       int
	Position Vec2
	Velocity Vec2
	Radius   float64
}

// ColliderSource is the boundary to the host world: it answers region
// queries during grid construction and reports moving bodies for dynamic
// obstacle tracking. Implementations must treat all queries as read-only.
type ColliderSource interface {
	// CollidersIn returns every collider overlapping the square region
	// centered at center with the given half-extent.
	CollidersIn(center Vec2, halfExtent float64) []Collider

	// MovingBodies returns the current state of every non-static collider
	// inside the tracked area.
	MovingBodies() []MovingBody
}
