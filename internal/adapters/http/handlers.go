package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"svw.info/morajai/internal/codec"
	"svw.info/morajai/internal/domain"
	"svw.info/morajai/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/api/generate", h.handleGenerate).Methods(http.MethodPost)
	r.HandleFunc("/api/solve", h.handleSolve).Methods(http.MethodPost)
	r.HandleFunc("/api/press", h.handlePress).Methods(http.MethodPost)
	r.HandleFunc("/api/hint", h.handleHint).Methods(http.MethodPost)
	r.HandleFunc("/api/save", h.handleSave).Methods(http.MethodPost)
	r.HandleFunc("/api/load", h.handleLoad).Methods(http.MethodPost)
	r.HandleFunc("/api/list", h.handleList).Methods(http.MethodGet)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ---- Generate ----

type generateReq struct {
	Seed int64 `json:"seed,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle,omitempty"`
	Line       string         `json:"line,omitempty"`
	Seed       int64          `json:"seed,omitempty"`
	Attempts   int            `json:"attempts,omitempty"`
	Nodes      int            `json:"nodes,omitempty"`
	DurationMs int64          `json:"durationMs,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		writeJSON(w, http.StatusBadRequest, generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := h.UC.Generate(r.Context(), seed)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, generateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, generateResp{
		Puzzle:     p,
		Line:       codec.Encode(p.Goals, p.Original),
		Seed:       seed,
		Attempts:   st.Attempts,
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Solve ----

type solveReq struct {
	// Line is the 13-character puzzle encoding; when set it takes
	// precedence over Goals/Grid.
	Line  string           `json:"line,omitempty"`
	Goals *[4]domain.Color `json:"goals,omitempty"`
	Grid  *domain.Grid     `json:"grid,omitempty"`
}

type solveResp struct {
	Found      bool           `json:"found"`
	Path       []domain.Coord `json:"path,omitempty"`
	Keys       string         `json:"keys,omitempty"`
	Nodes      int            `json:"nodes,omitempty"`
	DurationMs int64          `json:"durationMs,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func pathKeys(path []domain.Coord) string {
	keys := make([]string, len(path))
	for i, c := range path {
		keys[i] = strconv.Itoa(1 + 3*c.Row + c.Col)
	}
	return strings.Join(keys, " ")
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	var goals [4]domain.Color
	var grid domain.Grid
	switch {
	case req.Line != "":
		var err error
		goals, grid, err = codec.Decode(req.Line)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, solveResp{Error: err.Error()})
			return
		}
	case req.Goals != nil && req.Grid != nil:
		goals, grid = *req.Goals, *req.Grid
	default:
		writeJSON(w, http.StatusBadRequest, solveResp{Error: "need line or goals+grid"})
		return
	}
	path, found, st, err := h.UC.Solve(r.Context(), goals, grid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, solveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, solveResp{
		Found:      found,
		Path:       path,
		Keys:       pathKeys(path),
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Press ----

type pressReq struct {
	Puzzle *domain.Puzzle `json:"puzzle"`
	Tile   *domain.Coord  `json:"tile,omitempty"`
	Corner string         `json:"corner,omitempty"`
}

type pressResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Solved bool           `json:"solved"`
	Error  string         `json:"error,omitempty"`
}

func parseCorner(s string) (domain.Corner, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NW":
		return domain.NW, true
	case "NE":
		return domain.NE, true
	case "SW":
		return domain.SW, true
	case "SE":
		return domain.SE, true
	}
	return 0, false
}

func (h *Handler) handlePress(w http.ResponseWriter, r *http.Request) {
	var req pressReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Puzzle == nil {
		writeJSON(w, http.StatusBadRequest, pressResp{Error: "invalid JSON or missing puzzle"})
		return
	}
	p := req.Puzzle
	switch {
	case req.Tile != nil:
		// Translate external input into valid coordinates here; the domain
		// treats out-of-range presses as a caller bug.
		if req.Tile.Row < 0 || req.Tile.Row > 2 || req.Tile.Col < 0 || req.Tile.Col > 2 {
			writeJSON(w, http.StatusBadRequest, pressResp{Error: "tile out of range"})
			return
		}
		p.PressTile(req.Tile.Row, req.Tile.Col)
	case req.Corner != "":
		c, ok := parseCorner(req.Corner)
		if !ok {
			writeJSON(w, http.StatusBadRequest, pressResp{Error: "unknown corner"})
			return
		}
		p.PressCorner(c)
	default:
		writeJSON(w, http.StatusBadRequest, pressResp{Error: "need tile or corner"})
		return
	}
	writeJSON(w, http.StatusOK, pressResp{Puzzle: p, Solved: p.IsSolved()})
}

// ---- Hint ----

type hintReq struct {
	Puzzle *domain.Puzzle `json:"puzzle"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Puzzle == nil {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: "invalid JSON or missing puzzle"})
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), req.Puzzle)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, hintResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Found: ok, Hint: hh})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		writeJSON(w, http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeJSON(w, http.StatusBadRequest, loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, loadResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ps, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, listResp{Puzzles: ps})
}
