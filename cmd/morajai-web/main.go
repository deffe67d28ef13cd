package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"

	httpadapter "svw.info/morajai/internal/adapters/http"
	"svw.info/morajai/internal/generator"
	"svw.info/morajai/internal/hint"
	"svw.info/morajai/internal/infrastructure/storage"
	"svw.info/morajai/internal/ports"
	"svw.info/morajai/internal/solver"
	"svw.info/morajai/internal/usecase"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration in a human-readable format.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	persist := flag.String("persist-path", "./data", "save directory")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	solverKind := flag.String("solver", "compact", "solver to use: compact|bfs")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	_ = os.MkdirAll(*persist, 0o755)

	// Choose solver: the parent-map variant by default, path-carrying BFS
	// as fallback via flag.
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "bfs":
		s = solver.NewBFSSolver()
	default:
		s = solver.NewCompactSolver()
	}

	// Wire providers → use cases → HTTP adapter
	g := generator.NewRejectionGenerator(s)
	hin := hint.NewNextPress(s)
	st := storage.NewFS(*persist)
	uc := usecase.NewService(s, g, hin, st)
	h := httpadapter.New(uc)

	r := mux.NewRouter()
	h.Register(r)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, r),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "persist", *persist, "solver", *solverKind)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
