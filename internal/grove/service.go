package grove

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/GrapeChallenge_Web/internal/api"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
	"github.com/osse101/GrapeChallenge_Web/internal/growth"
	"github.com/osse101/GrapeChallenge_Web/internal/logger"
)

// Backend is the part of the API client the grove uses
type Backend interface {
	CurrentFruit(ctx context.Context, missionType string) api.Result[*domain.FruitWithMissions]
	MyFruits(ctx context.Context) api.Result[[]domain.Fruit]
	Cells(ctx context.Context) api.Result[[]string]
	CellFruits(ctx context.Context, cell string) api.Result[[]domain.Fruit]
}

// Service builds grove pages
type Service interface {
	// Load fetches the gallery for mode. cell is the selected cell in ModeOther.
	Load(ctx context.Context, user domain.User, mode Mode, cell string) *State
}

type service struct {
	backend   Backend
	cells     *CellCache
	adminCell string
}

// NewService creates a new grove service. adminCell is hidden from the cell picker.
func NewService(backend Backend, cells *CellCache, adminCell string) Service {
	return &service{
		backend:   backend,
		cells:     cells,
		adminCell: adminCell,
	}
}

func (s *service) Load(ctx context.Context, user domain.User, mode Mode, cell string) *State {
	st := &State{User: user, Mode: mode, SelectedCell: cell}

	var (
		current *domain.Fruit
		fruits  []domain.Fruit
		cells   []string
	)

	// Fetches are independent and never fail, the group only joins them
	g, gctx := errgroup.WithContext(ctx)
	if mode == ModeMine {
		g.Go(func() error {
			if res := s.backend.CurrentFruit(gctx, ""); res.OK && res.Value != nil {
				current = res.Value.Fruit
			}
			return nil
		})
	}
	g.Go(func() error {
		fruits = s.fruits(gctx, user, mode, cell)
		return nil
	})
	g.Go(func() error {
		cells = s.cellList(gctx)
		return nil
	})
	_ = g.Wait()

	if current != nil {
		st.Current = current
		st.CurrentStage = growth.StageInfo(current.Status)
		st.CurrentProgress = growth.Progress(current.Status)
		st.CurrentImage = growth.StatusImage(current)
	}

	st.Fruits = completedNewestFirst(fruits)
	st.NoCells = len(cells) == 0
	st.OtherCells = otherCells(cells, user.Cell, s.adminCell)

	st.Total = len(st.Fruits)
	if st.ShowsCurrent() {
		st.Total++
	}
	return st
}

// fruits fetches the harvested-fruit scope of mode
func (s *service) fruits(ctx context.Context, user domain.User, mode Mode, cell string) []domain.Fruit {
	switch mode {
	case ModeCell:
		if user.Cell == "" {
			logger.FromContext(ctx).Warn("User cell not found", "user_id", user.ID)
			return nil
		}
		return s.backend.CellFruits(ctx, user.Cell).Value
	case ModeOther:
		if cell == "" {
			return nil
		}
		return s.backend.CellFruits(ctx, cell).Value
	default:
		return s.backend.MyFruits(ctx).Value
	}
}

// cellList returns every cell, from the cache when fresh
func (s *service) cellList(ctx context.Context) []string {
	if s.cells != nil {
		if cells, ok := s.cells.Get(); ok {
			return cells
		}
	}
	res := s.backend.Cells(ctx)
	if res.OK && s.cells != nil {
		s.cells.Set(res.Value)
	}
	return res.Value
}

// completedNewestFirst keeps harvested fruit and reverses the backend's oldest-first order
func completedNewestFirst(fruits []domain.Fruit) []domain.Fruit {
	out := make([]domain.Fruit, 0, len(fruits))
	for i := range fruits {
		if fruits[i].IsCompleted() {
			out = append(out, fruits[i])
		}
	}
	slices.Reverse(out)
	return out
}

// otherCells drops the user's own cell and the administrative cell
func otherCells(cells []string, own, admin string) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		if c == own || c == admin {
			continue
		}
		out = append(out, c)
	}
	return out
}
