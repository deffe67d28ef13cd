package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"

	"svw.info/morajai/internal/codec"
	"svw.info/morajai/internal/domain"
	"svw.info/morajai/internal/generator"
	"svw.info/morajai/internal/hint"
	"svw.info/morajai/internal/ports"
	"svw.info/morajai/internal/render"
	"svw.info/morajai/internal/solver"
	"svw.info/morajai/internal/usecase"
)

func main() {
	seed := flag.Int64("seed", 0, "generator seed (0 = time-based)")
	line := flag.String("line", "", "play a specific 13-character puzzle line instead of a random one")
	batch := flag.String("batch", "", "solve puzzle lines from a file ('-' = stdin) and exit")
	solverKind := flag.String("solver", "compact", "solver to use: compact|bfs")
	levelStr := flag.String("log-level", "warn", "debug|info|warn|error")
	showSolution := flag.Bool("show-solution", false, "print the solution before play starts")
	flag.Parse()

	lvl := slog.LevelWarn
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "bfs":
		s = solver.NewBFSSolver()
	default:
		s = solver.NewCompactSolver()
	}
	uc := usecase.NewService(s, generator.NewRejectionGenerator(s), hint.NewNextPress(s), nil)

	if *batch != "" {
		os.Exit(runBatch(uc, *batch, logger))
	}
	os.Exit(runInteractive(uc, *seed, *line, *showSolution, logger))
}

// runBatch decodes and solves one puzzle line per input line. Bad lines are
// reported and skipped; they never abort the rest of the run.
func runBatch(uc *usecase.Service, path string, logger *slog.Logger) int {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			logger.Error("open batch file", "err", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	ctx := context.Background()
	failures := 0
	sc := bufio.NewScanner(in)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		goals, grid, err := codec.Decode(text)
		if err != nil {
			fmt.Printf("%s: line %d: %v\n", text, n, err)
			failures++
			continue
		}
		sol, found, st, err := uc.Solve(ctx, goals, grid)
		if err != nil {
			logger.Error("solve", "line", n, "err", err)
			failures++
			continue
		}
		if !found {
			fmt.Printf("%s: no solution\n", text)
			continue
		}
		fmt.Printf("%s: %s\n", text, render.Solution(sol))
		logger.Debug("solved", "line", n, "presses", len(sol), "nodes", st.Nodes, "dur", st.Duration)
	}
	if err := sc.Err(); err != nil {
		logger.Error("read batch input", "err", err)
		return 1
	}
	if failures > 0 {
		return 1
	}
	return 0
}

func runInteractive(uc *usecase.Service, seed int64, line string, showSolution bool, logger *slog.Logger) int {
	ctx := context.Background()

	var puzzle *domain.Puzzle
	if line != "" {
		goals, grid, err := codec.Decode(line)
		if err != nil {
			logger.Error("decode puzzle line", "err", err)
			return 1
		}
		puzzle = domain.NewPuzzle(goals, grid)
	} else {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		p, st, err := uc.Generate(ctx, seed)
		if err != nil {
			logger.Error("generate puzzle", "err", err)
			return 1
		}
		logger.Info("generated", "seed", seed, "attempts", st.Attempts, "nodes", st.Nodes, "dur", st.Duration)
		puzzle = p
	}

	fmt.Print(render.Board(puzzle))
	if showSolution {
		printSolution(ctx, uc, puzzle)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "Input: ",
		HistoryFile: filepath.Join(os.TempDir(), "morajai_history.txt"),
	})
	if err != nil {
		logger.Error("readline init", "err", err)
		return 1
	}
	defer rl.Close()

	for !puzzle.IsSolved() {
		input, err := rl.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return 0
		default:
			logger.Error("readline", "err", err)
			continue
		}

		switch cmd := strings.TrimSpace(input); cmd {
		case "":
			continue
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			key := int(cmd[0] - '1')
			puzzle.PressTile(key/3, key%3)
		case "q":
			puzzle.PressCorner(domain.NW)
		case "w":
			puzzle.PressCorner(domain.NE)
		case "a":
			puzzle.PressCorner(domain.SW)
		case "s":
			puzzle.PressCorner(domain.SE)
		case "r", "reset":
			puzzle.Reset()
		case "h", "hint":
			hh, ok, err := uc.Hint(ctx, puzzle)
			if err != nil {
				logger.Error("hint", "err", err)
			} else if !ok {
				fmt.Println("No hint: no solution from the current state. Try reset.")
			} else {
				fmt.Println("Hint:", hh.Message)
			}
			continue
		case "solve":
			printSolution(ctx, uc, puzzle)
			continue
		case "quit", "exit":
			return 0
		default:
			fmt.Println("Keys: 1-9 press tile, q/w/a/s press corner, h hint, solve, r reset, quit")
			continue
		}

		fmt.Print(render.Board(puzzle))
	}

	fmt.Println("Solved!")
	return 0
}

func printSolution(ctx context.Context, uc *usecase.Service, p *domain.Puzzle) {
	path, found, st, err := uc.Solve(ctx, p.Goals, p.State)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}
	if !found {
		fmt.Println("No solution from the current state. Try reset.")
		return
	}
	fmt.Printf("Solution: %s (%s states explored in %v)\n",
		render.Solution(path), humanize.Comma(int64(st.Nodes)), st.Duration.Round(time.Millisecond))
}
