// Package server exposes a running Pathfinder over HTTP: JSON path
// requests, grid inspection, and a websocket feed of tick snapshots.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"navgrid/core"
	"navgrid/pathfinding"
)

// PathRequest is the body of a path query.
type PathRequest struct {
	From core.Vec2 `json:"from"`
	To   core.Vec2 `json:"to"`
}

// PathResponse carries the computed route. An unreachable goal yields an
// empty waypoint list, not an error status.
type PathResponse struct {
	Waypoints     []core.Waypoint `json:"waypoints"`
	ExecutionTime float64         `json:"executionTimeMs"`
}

// GridResponse summarizes the grid for inspection tooling.
type GridResponse struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	CellSize         float64 `json:"cellSize"`
	TrackedObstacles []int   `json:"trackedObstacles"`
	ActivePaths      int     `json:"activePaths"`
	CacheStats       string  `json:"cacheStats"`
}

// Server wires a Pathfinder to a gin router and a websocket hub.
type Server struct {
	finder *pathfinding.Pathfinder
	hub    *Hub
	router *gin.Engine
}

// New creates a server around the given pathfinder.
func New(finder *pathfinding.Pathfinder) *Server {
	s := &Server{
		finder: finder,
		hub:    NewHub(),
	}

	router := gin.Default()
	router.POST("/api/path", s.handlePath)
	router.GET("/api/grid", s.handleGrid)
	router.GET("/ws", s.handleWS)
	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	s.router = router
	return s
}

// Hub returns the websocket hub so the tick loop can publish snapshots.
func (s *Server) Hub() *Hub { return s.hub }

// Run starts the hub and serves HTTP on addr. Blocks until the listener
// fails.
func (s *Server) Run(addr string) error {
	go s.hub.Run()
	return s.router.Run(addr)
}

func (s *Server) handlePath(c *gin.Context) {
	var req PathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	start := time.Now()
	waypoints := s.finder.RequestPath(req.From, req.To)
	elapsed := time.Since(start).Seconds() * 1000

	if waypoints == nil {
		waypoints = []core.Waypoint{}
	}
	c.JSON(http.StatusOK, PathResponse{
		Waypoints:     waypoints,
		ExecutionTime: elapsed,
	})
}

func (s *Server) handleGrid(c *gin.Context) {
	g := s.finder.Grid()
	c.JSON(http.StatusOK, GridResponse{
		Width:            g.Width(),
		Height:           g.Height(),
		CellSize:         g.CellSize(),
		TrackedObstacles: g.TrackedObstacles(),
		ActivePaths:      s.finder.Cache().ActiveCount(),
		CacheStats:       s.finder.Cache().String(),
	})
}

func (s *Server) handleWS(c *gin.Context) {
	s.hub.ServeWS(c.Writer, c.Request)
}
