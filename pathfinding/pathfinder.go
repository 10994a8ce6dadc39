package pathfinding

import (
	"sync"
	"time"

	"navgrid/core"
	"navgrid/grid"
)

// Options collects the feature toggles and intervals of a Pathfinder.
type Options struct {
	DiagonalMovement     bool
	ObstacleTracking     bool
	CornerAvoidance      bool
	Simplification       bool
	Smoothing            bool
	PeriodicRebuild      bool
	PeriodicRevalidation bool

	Heuristic HeuristicKind

	TrackingInterval     time.Duration
	RevalidationInterval time.Duration
	RebuildInterval      time.Duration
	CacheTTL             time.Duration

	Costs       CostModel
	Grid        grid.Config
	PostProcess PostProcessConfig
}

// DefaultOptions returns the default feature set: everything on except
// periodic full-grid rebuild.
func DefaultOptions() Options {
	return Options{
		DiagonalMovement:     true,
		ObstacleTracking:     true,
		CornerAvoidance:      true,
		Simplification:       true,
		Smoothing:            true,
		PeriodicRebuild:      false,
		PeriodicRevalidation: true,
		Heuristic:            HeuristicEuclidean,
		TrackingInterval:     200 * time.Millisecond,
		RevalidationInterval: 500 * time.Millisecond,
		RebuildInterval:      5 * time.Second,
		CacheTTL:             2 * time.Second,
		Costs:                DefaultCostModel(),
		Grid:                 DefaultGridConfig(),
		PostProcess:          DefaultPostProcessConfig(),
	}
}

// DefaultGridConfig re-exports the grid defaults so callers configuring a
// Pathfinder only need this package.
func DefaultGridConfig() grid.Config {
	return grid.DefaultConfig()
}

// Pathfinder is the engine facade: it owns the grid, the search engine,
// the post-processor and the result cache, and drives the periodic tasks.
// All grid-mutating work (tracking, rebuild, searches) runs behind one
// mutex; a path request blocks its caller until search and post-processing
// complete.
type Pathfinder struct {
	mu sync.Mutex

	grid   *grid.Grid
	engine *Engine
	post   *PostProcessor
	cache  *PathCache
	opts   Options

	lastTracking     time.Time
	lastRevalidation time.Time
	lastRebuild      time.Time
}

// NewPathfinder builds the grid for the given world and returns a ready
// engine facade.
func NewPathfinder(world core.WorldConfig, source core.ColliderSource, opts Options) *Pathfinder {
	g := grid.New(world, source, opts.Grid)
	g.Build()

	e := NewEngine(g, opts.Costs)
	e.SetHeuristic(opts.Heuristic)
	e.SetDiagonal(opts.DiagonalMovement)
	e.SetCornerAvoidance(opts.CornerAvoidance)

	return &Pathfinder{
		grid:   g,
		engine: e,
		post:   NewPostProcessor(g, opts.PostProcess, opts.Costs),
		cache:  NewPathCache(opts.CacheTTL),
		opts:   opts,
	}
}

// Grid exposes the underlying grid for read-only inspection (viewers,
// handlers). Mutation stays inside this package.
func (p *Pathfinder) Grid() *grid.Grid { return p.grid }

// Cache exposes the path cache for stats reporting.
func (p *Pathfinder) Cache() *PathCache { return p.cache }

// RequestPath returns the waypoints of a traversable route between two
// world points, or an empty slice when no route exists. Results are served
// from the cache when a live entry matches; computed results are stored and
// registered as active paths.
func (p *Pathfinder) RequestPath(from, to core.Vec2) []core.Waypoint {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	fromCell := p.grid.NodeAt(from).Point()
	toCell := p.grid.NodeAt(to).Point()

	if waypoints, ok := p.cache.Get(fromCell, toCell, now); ok {
		return waypoints
	}

	waypoints := p.compute(from, to)
	if len(waypoints) > 0 {
		p.cache.Put(fromCell, toCell, waypoints, now)
	}
	return waypoints
}

// compute runs search and post-processing. Caller holds p.mu.
func (p *Pathfinder) compute(from, to core.Vec2) []core.Waypoint {
	raw, _ := p.engine.FindPath(from, to)
	if len(raw) == 0 {
		return nil
	}
	if p.opts.Simplification {
		raw = p.post.Simplify(raw)
	}
	if p.opts.Smoothing {
		return p.post.Smooth(raw)
	}
	return nodesToWaypoints(raw)
}

// Tick advances the periodic tasks. Effects are ordered: a due rebuild
// reclassifies first, then obstacle tracking re-marks occupancy, then
// active-path revalidation runs, so a request issued after Tick sees
// up-to-date walkability.
func (p *Pathfinder) Tick(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.opts.PeriodicRebuild && now.Sub(p.lastRebuild) >= p.opts.RebuildInterval {
		p.grid.Build()
		p.lastRebuild = now
	}

	if p.opts.ObstacleTracking && now.Sub(p.lastTracking) >= p.opts.TrackingInterval {
		p.grid.MarkDynamicObstacles(p.opts.TrackingInterval)
		p.lastTracking = now
	}

	if p.opts.PeriodicRevalidation && now.Sub(p.lastRevalidation) >= p.opts.RevalidationInterval {
		p.revalidate(now)
		p.lastRevalidation = now
	}
}

// revalidate re-checks every active path against current walkability and
// dynamic obstacle occupancy. Caller holds p.mu.
func (p *Pathfinder) revalidate(now time.Time) {
	valid := func(waypoints []core.Waypoint) bool {
		for _, wp := range waypoints {
			n := p.grid.NodeAt(wp.Position)
			if !n.Walkable || p.grid.IsInDynamicObstacleArea(n.Point()) {
				return false
			}
		}
		return true
	}
	recompute := func(key cacheKey) []core.Waypoint {
		from := p.grid.NodeAtIndex(key.FromGX, key.FromGY)
		to := p.grid.NodeAtIndex(key.ToGX, key.ToGY)
		if from == nil || to == nil {
			return nil
		}
		return p.compute(from.World, to.World)
	}
	p.cache.Revalidate(valid, recompute, now)
}

// SetDiagonalMovement toggles diagonal movement.
func (p *Pathfinder) SetDiagonalMovement(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts.DiagonalMovement = enabled
	p.engine.SetDiagonal(enabled)
}

// SetObstacleTracking toggles dynamic obstacle tracking.
func (p *Pathfinder) SetObstacleTracking(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts.ObstacleTracking = enabled
}

// SetCornerAvoidance toggles corner and obstacle-proximity cost shaping.
func (p *Pathfinder) SetCornerAvoidance(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts.CornerAvoidance = enabled
	p.engine.SetCornerAvoidance(enabled)
}

// SetSimplification toggles the simplification pass.
func (p *Pathfinder) SetSimplification(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts.Simplification = enabled
}

// SetSmoothing toggles the smoothing pass.
func (p *Pathfinder) SetSmoothing(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts.Smoothing = enabled
}

// SetPeriodicRebuild toggles the periodic full-grid rebuild.
func (p *Pathfinder) SetPeriodicRebuild(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts.PeriodicRebuild = enabled
}

// SetPeriodicRevalidation toggles active-path revalidation.
func (p *Pathfinder) SetPeriodicRevalidation(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts.PeriodicRevalidation = enabled
}

// SetHeuristic selects the heuristic strategy by kind.
func (p *Pathfinder) SetHeuristic(k HeuristicKind) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts.Heuristic = k
	p.engine.SetHeuristic(k)
}
