package main

import (
	"flag"
	"log"
	"time"

	"navgrid/core"
	"navgrid/pathfinding"
	"navgrid/server"
	"navgrid/world"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	width := flag.Float64("width", 40, "world width")
	height := flag.Float64("height", 40, "world height")
	cellSize := flag.Float64("cell", 1, "grid cell size")
	tick := flag.Duration("tick", 100*time.Millisecond, "simulation tick interval")
	flag.Parse()

	w := world.New(world.Rect{
		Min: core.Vec2{X: 0, Y: 0},
		Max: core.Vec2{X: *width, Y: *height},
	})
	seedDemoWorld(w, *width, *height)

	finder := pathfinding.NewPathfinder(core.WorldConfig{
		Origin:   core.Vec2{X: 0, Y: 0},
		Width:    *width,
		Height:   *height,
		CellSize: *cellSize,
	}, w, pathfinding.DefaultOptions())

	srv := server.New(finder)

	go func() {
		var tickCount int64
		ticker := time.NewTicker(*tick)
		defer ticker.Stop()
		for now := range ticker.C {
			tickCount++
			w.Step(tick.Seconds())
			finder.Tick(now)
			srv.Hub().Publish(server.Snapshot{
				Tick:             tickCount,
				Time:             now.UnixMilli(),
				TrackedObstacles: finder.Grid().TrackedObstacles(),
				ActivePaths:      finder.Cache().ActiveCount(),
			})
		}
	}()

	log.Println("navgrid server listening on", *addr)
	log.Fatal(srv.Run(*addr))
}

// seedDemoWorld drops a few walls, terrain patches and patrolling movers so
// the server has something to route around out of the box.
func seedDemoWorld(w *world.World, width, height float64) {
	w.AddStatic(world.Rect{
		Min: core.Vec2{X: width * 0.3, Y: height * 0.2},
		Max: core.Vec2{X: width * 0.35, Y: height * 0.8},
	})
	w.AddStatic(world.Rect{
		Min: core.Vec2{X: width * 0.6, Y: 0},
		Max: core.Vec2{X: width * 0.65, Y: height * 0.5},
	})
	w.AddPatch(world.TerrainPatch{
		Area: world.Rect{
			Min: core.Vec2{X: width * 0.4, Y: height * 0.55},
			Max: core.Vec2{X: width * 0.58, Y: height * 0.75},
		},
		Terrain: core.TerrainWater,
	})
	w.AddPatch(world.TerrainPatch{
		Area: world.Rect{
			Min: core.Vec2{X: width * 0.7, Y: height * 0.6},
			Max: core.Vec2{X: width * 0.9, Y: height * 0.9},
		},
		Terrain: core.TerrainMud,
	})
	w.AddMover(core.Vec2{X: width * 0.5, Y: height * 0.3}, core.Vec2{X: 1.5, Y: 0}, 1)
	w.AddMover(core.Vec2{X: width * 0.2, Y: height * 0.6}, core.Vec2{X: 0, Y: 1}, 0.8)
}
