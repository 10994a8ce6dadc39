package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"navgrid/core"
	"navgrid/pathfinding"
	"navgrid/world"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := world.New(world.Rect{Min: core.Vec2{}, Max: core.Vec2{X: 10, Y: 10}})
	w.AddStatic(world.Rect{Min: core.Vec2{X: 4, Y: 0}, Max: core.Vec2{X: 5, Y: 8}})

	finder := pathfinding.NewPathfinder(core.WorldConfig{
		Width:    10,
		Height:   10,
		CellSize: 1,
	}, w, pathfinding.DefaultOptions())

	return New(finder)
}

func TestHandlePath(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(PathRequest{
		From: core.Vec2{X: 1, Y: 1},
		To:   core.Vec2{X: 9, Y: 1},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/path", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp PathResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Waypoints) == 0 {
		t.Error("expected a route around the wall")
	}
}

func TestHandlePathBadBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/path", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleGrid(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/grid", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp GridResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Width != 10 || resp.Height != 10 {
		t.Errorf("grid = %dx%d, want 10x10", resp.Width, resp.Height)
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}
