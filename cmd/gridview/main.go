// Command gridview is an interactive terminal visualizer for the navgrid
// engine: it renders the grid's walkability and terrain, lets you place
// start and goal cells and moving obstacles, and draws the computed route
// live as the world ticks.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"navgrid/core"
	"navgrid/pathfinding"
	"navgrid/world"
)

type viewer struct {
	screen tcell.Screen
	world  *world.World
	finder *pathfinding.Pathfinder

	cursorX, cursorY int
	start, goal      *core.Vec2
	heuristic        pathfinding.HeuristicKind
	diagonal         bool
	path             []core.Waypoint
	status           string
}

var heuristicCycle = []pathfinding.HeuristicKind{
	pathfinding.HeuristicEuclidean,
	pathfinding.HeuristicManhattan,
	pathfinding.HeuristicChebyshev,
	pathfinding.HeuristicOctile,
	pathfinding.HeuristicCustom,
}

func main() {
	width := flag.Float64("width", 40, "world width")
	height := flag.Float64("height", 20, "world height")
	tick := flag.Duration("tick", 150*time.Millisecond, "simulation tick interval")
	flag.Parse()

	w := world.New(world.Rect{
		Min: core.Vec2{X: 0, Y: 0},
		Max: core.Vec2{X: *width, Y: *height},
	})
	w.AddStatic(world.Rect{
		Min: core.Vec2{X: *width * 0.3, Y: *height * 0.1},
		Max: core.Vec2{X: *width * 0.34, Y: *height * 0.7},
	})
	w.AddPatch(world.TerrainPatch{
		Area: world.Rect{
			Min: core.Vec2{X: *width * 0.5, Y: *height * 0.5},
			Max: core.Vec2{X: *width * 0.75, Y: *height * 0.8},
		},
		Terrain: core.TerrainWater,
	})

	finder := pathfinding.NewPathfinder(core.WorldConfig{
		Origin:   core.Vec2{X: 0, Y: 0},
		Width:    *width,
		Height:   *height,
		CellSize: 1,
	}, w, pathfinding.DefaultOptions())

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	v := &viewer{
		screen:    screen,
		world:     w,
		finder:    finder,
		heuristic: pathfinding.HeuristicEuclidean,
		diagonal:  true,
		status:    "s: start  g: goal  o: spawn mover  d: diagonal  h: heuristic  q: quit",
	}

	quit := make(chan struct{})
	go func() {
		ticker := time.NewTicker(*tick)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-quit:
				return
			}
		}
	}()

	for {
		v.draw()
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventInterrupt:
			w.Step(tick.Seconds())
			finder.Tick(time.Now())
			v.refreshPath()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				close(quit)
				return
			}
		}
	}
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	g := v.finder.Grid()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		if v.cursorY > 0 {
			v.cursorY--
		}
	case tcell.KeyDown:
		if v.cursorY < g.Height()-1 {
			v.cursorY++
		}
	case tcell.KeyLeft:
		if v.cursorX > 0 {
			v.cursorX--
		}
	case tcell.KeyRight:
		if v.cursorX < g.Width()-1 {
			v.cursorX++
		}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 's':
			p := v.cursorWorld()
			v.start = &p
			v.refreshPath()
		case 'g':
			p := v.cursorWorld()
			v.goal = &p
			v.refreshPath()
		case 'o':
			v.world.AddMover(v.cursorWorld(), core.Vec2{X: 1, Y: 0.5}, 1)
		case 'd':
			v.diagonal = !v.diagonal
			v.finder.SetDiagonalMovement(v.diagonal)
			v.refreshPath()
		case 'h':
			for i, k := range heuristicCycle {
				if k == v.heuristic {
					v.heuristic = heuristicCycle[(i+1)%len(heuristicCycle)]
					break
				}
			}
			v.finder.SetHeuristic(v.heuristic)
			v.refreshPath()
		}
	}
	return true
}

func (v *viewer) cursorWorld() core.Vec2 {
	return core.Vec2{X: float64(v.cursorX) + 0.5, Y: float64(v.cursorY) + 0.5}
}

func (v *viewer) refreshPath() {
	if v.start == nil || v.goal == nil {
		return
	}
	v.path = v.finder.RequestPath(*v.start, *v.goal)
}

func (v *viewer) draw() {
	v.screen.Clear()
	g := v.finder.Grid()

	for gy := 0; gy < g.Height(); gy++ {
		for gx := 0; gx < g.Width(); gx++ {
			n := g.NodeAtIndex(gx, gy)
			ch, style := cellGlyph(n.Walkable, n.Corner, n.Terrain)
			v.screen.SetContent(gx, gy, ch, nil, style)
		}
	}

	pathStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	for _, wp := range v.path {
		n := g.NodeAt(wp.Position)
		v.screen.SetContent(n.GX, n.GY, '*', nil, pathStyle)
	}

	markerStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	if v.start != nil {
		n := g.NodeAt(*v.start)
		v.screen.SetContent(n.GX, n.GY, 'S', nil, markerStyle)
	}
	if v.goal != nil {
		n := g.NodeAt(*v.goal)
		v.screen.SetContent(n.GX, n.GY, 'G', nil, markerStyle)
	}

	cursorStyle := tcell.StyleDefault.Reverse(true)
	ch, _, _, _ := v.screen.GetContent(v.cursorX, v.cursorY)
	v.screen.SetContent(v.cursorX, v.cursorY, ch, nil, cursorStyle)

	line := fmt.Sprintf("%s | heuristic: %s | waypoints: %d", v.status, v.heuristic, len(v.path))
	drawText(v.screen, 0, g.Height()+1, line)

	v.screen.Show()
}

func cellGlyph(walkable, corner bool, terrain core.Terrain) (rune, tcell.Style) {
	if !walkable {
		return '#', tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	if corner {
		return '+', tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	}
	switch terrain {
	case core.TerrainWater:
		return '~', tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case core.TerrainSand:
		return ':', tcell.StyleDefault.Foreground(tcell.ColorOlive)
	case core.TerrainMud:
		return '%', tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	default:
		return '.', tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
}

func drawText(s tcell.Screen, x, y int, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
