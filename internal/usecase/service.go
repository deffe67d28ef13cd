package usecase

import (
	"context"
	"errors"

	"svw.info/morajai/internal/domain"
	"svw.info/morajai/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, goals [4]domain.Color, grid domain.Grid) ([]domain.Coord, bool, ports.Stats, error) {
	if u.Solver == nil {
		return nil, false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, goals, grid)
}

func (u *Service) Generate(ctx context.Context, seed int64) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed)
}

func (u *Service) Hint(ctx context.Context, p *domain.Puzzle) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, p)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
