package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"svw.info/morajai/internal/domain"
	"svw.info/morajai/internal/generator"
	"svw.info/morajai/internal/hint"
	"svw.info/morajai/internal/infrastructure/storage"
	"svw.info/morajai/internal/solver"
	"svw.info/morajai/internal/usecase"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := solver.NewCompactSolver()
	uc := usecase.NewService(
		s,
		generator.NewRejectionGenerator(s),
		hint.NewNextPress(s),
		storage.NewFS(t.TempDir()),
	)
	r := mux.NewRouter()
	New(uc).Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, req, resp any) int {
	t.Helper()
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	r, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return r.StatusCode
}

func TestSolveEndpointWithLine(t *testing.T) {
	srv := newTestServer(t)

	var resp solveResp
	code := postJSON(t, srv.URL+"/api/solve", solveReq{Line: "wwwwwwww-w--w"}, &resp)
	if code != http.StatusOK {
		t.Fatalf("status %d: %s", code, resp.Error)
	}
	if !resp.Found {
		t.Fatal("expected a solution")
	}
	if resp.Keys != "3 2" {
		t.Fatalf("keys: got %q, want %q", resp.Keys, "3 2")
	}
}

func TestSolveEndpointRejectsBadLine(t *testing.T) {
	srv := newTestServer(t)

	var resp solveResp
	code := postJSON(t, srv.URL+"/api/solve", solveReq{Line: "xyz"}, &resp)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if resp.Error == "" {
		t.Fatal("expected an error message")
	}
}

func TestGenerateEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var resp generateResp
	code := postJSON(t, srv.URL+"/api/generate", generateReq{Seed: 42}, &resp)
	if code != http.StatusOK {
		t.Fatalf("status %d: %s", code, resp.Error)
	}
	if resp.Puzzle == nil {
		t.Fatal("expected a puzzle")
	}
	if len(resp.Line) != 13 {
		t.Fatalf("line length: got %d (%q)", len(resp.Line), resp.Line)
	}
	for _, g := range resp.Puzzle.Goals {
		if g == domain.Gray {
			t.Fatal("generated goal is gray")
		}
	}
}

func TestPressEndpointLocksAndResets(t *testing.T) {
	srv := newTestServer(t)

	grid := domain.GridFromRows(
		[3]domain.Color{domain.Red, domain.Gray, domain.Gray},
		[3]domain.Color{domain.Gray, domain.Gray, domain.Gray},
		[3]domain.Color{domain.Gray, domain.Gray, domain.Gray},
	)
	p := domain.NewPuzzle([4]domain.Color{domain.Red, domain.Red, domain.Red, domain.Red}, grid)

	var resp pressResp
	code := postJSON(t, srv.URL+"/api/press", pressReq{Puzzle: p, Corner: "NW"}, &resp)
	if code != http.StatusOK {
		t.Fatalf("status %d: %s", code, resp.Error)
	}
	if resp.Puzzle.GetCorner(domain.NW) != domain.Red {
		t.Fatalf("NW should be locked, got %s", resp.Puzzle.GetCorner(domain.NW))
	}

	// Wrong corner press resets the whole puzzle.
	var resp2 pressResp
	code = postJSON(t, srv.URL+"/api/press", pressReq{Puzzle: resp.Puzzle, Corner: "SE"}, &resp2)
	if code != http.StatusOK {
		t.Fatalf("status %d: %s", code, resp2.Error)
	}
	if resp2.Puzzle.GetCorner(domain.NW) != domain.Gray {
		t.Fatal("reset should have cleared the NW lock")
	}
}

func TestPressEndpointRejectsOutOfRangeTile(t *testing.T) {
	srv := newTestServer(t)

	p := domain.NewPuzzle(
		[4]domain.Color{domain.Red, domain.Red, domain.Red, domain.Red},
		domain.Grid{},
	)
	var resp pressResp
	code := postJSON(t, srv.URL+"/api/press", pressReq{Puzzle: p, Tile: &domain.Coord{Row: 3, Col: 0}}, &resp)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}
