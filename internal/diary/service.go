package diary

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/GrapeChallenge_Web/internal/api"
	"github.com/osse101/GrapeChallenge_Web/internal/concurrency"
	"github.com/osse101/GrapeChallenge_Web/internal/content"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
	"github.com/osse101/GrapeChallenge_Web/internal/growth"
	"github.com/osse101/GrapeChallenge_Web/internal/logger"
	"github.com/osse101/GrapeChallenge_Web/internal/metrics"
)

// FilterAll shows every Christmas mission
const FilterAll = "all"

const actionReaction = "add_reaction"

// Backend is the part of the API client the diary pages use
type Backend interface {
	MissionsByName(ctx context.Context, name, date string) api.Result[domain.MissionList]
	AddInteraction(ctx context.Context, missionID, emoji string) api.Result[*domain.Mission]
}

// Entry is one diary card
type Entry struct {
	Mission   domain.Mission
	Reactions []domain.ReactionCount
	// Badge holds the badge classes on the Christmas diary
	Badge string
}

// State is one diary page
type State struct {
	Names   []string
	Filter  string
	Entries []Entry
	Count   int
}

// Empty reports whether nobody has written today
func (s *State) Empty() bool {
	return s.Count == 0
}

// Service builds diary pages and records reactions
type Service interface {
	// Load merges today's submissions of every named mission, newest first
	Load(ctx context.Context, names []string) *State
	// LoadGratitude is the gratitude diary
	LoadGratitude(ctx context.Context) *State
	// LoadChristmas is the event diary narrowed by filter (FilterAll or a mission name)
	LoadChristmas(ctx context.Context, filter string) *State
	// AddReaction adds a palette emoji to a submission
	AddReaction(ctx context.Context, user domain.User, missionID, emoji string) error
}

type service struct {
	backend Backend
	store   *content.Store
	guard   *concurrency.Guard
	loc     *time.Location
}

// NewService creates a new diary service. loc interprets naive timestamps.
func NewService(backend Backend, store *content.Store, guard *concurrency.Guard, loc *time.Location) Service {
	if guard == nil {
		guard = concurrency.NewGuard()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		backend: backend,
		store:   store,
		guard:   guard,
		loc:     loc,
	}
}

func (s *service) Load(ctx context.Context, names []string) *State {
	cat := s.store.Current()

	// One slot per name keeps the merge order independent of completion order
	perName := make([][]domain.Mission, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			perName[i] = s.backend.MissionsByName(gctx, name, api.DateToday).Value.Missions
			return nil
		})
	}
	_ = g.Wait()

	var merged []domain.Mission
	for _, ms := range perName {
		merged = append(merged, ms...)
	}
	s.sortNewestFirst(merged)

	entries := make([]Entry, 0, len(merged))
	for _, m := range merged {
		entries = append(entries, Entry{
			Mission:   m,
			Reactions: TopReactions(m.Interaction, cat.Reactions, cat.TopReactions),
		})
	}

	return &State{
		Names:   names,
		Entries: entries,
		Count:   len(entries),
	}
}

// sortNewestFirst orders by content_created_at descending. Missing or
// unparsable timestamps sort last; equal keys keep their merge order.
func (s *service) sortNewestFirst(missions []domain.Mission) {
	slices.SortStableFunc(missions, func(a, b domain.Mission) int {
		ta, okA := growth.ParseTimestamp(a.ContentCreatedAt, s.loc)
		tb, okB := growth.ParseTimestamp(b.ContentCreatedAt, s.loc)
		switch {
		case okA && okB:
			return tb.Compare(ta)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return 0
		}
	})
}

func (s *service) LoadGratitude(ctx context.Context) *State {
	cat := s.store.Current()
	return s.Load(ctx, []string{cat.Missions.GratitudeDiary})
}

func (s *service) LoadChristmas(ctx context.Context, filter string) *State {
	cat := s.store.Current()
	names := cat.ChristmasMissionNames()
	if slices.Contains(names, filter) {
		names = []string{filter}
	} else {
		filter = FilterAll
	}

	st := s.Load(ctx, names)
	st.Filter = filter
	for i := range st.Entries {
		st.Entries[i].Badge = cat.BadgeFor(st.Entries[i].Mission.Name)
	}
	return st
}

func (s *service) AddReaction(ctx context.Context, user domain.User, missionID, emoji string) error {
	cat := s.store.Current()
	if missionID == "" {
		return domain.ErrMissionIDRequired
	}
	if !cat.IsReaction(emoji) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidEmoji, emoji)
	}

	key := concurrency.Key(user.ID, actionReaction, missionID, emoji)
	_, shared, err := s.guard.Do(ctx, key, func(ctx context.Context) (any, error) {
		res := s.backend.AddInteraction(ctx, missionID, emoji)
		if !res.OK {
			return nil, fmt.Errorf("%w: %s", domain.ErrInteractionFailed, res.Message)
		}
		metrics.RecordReaction(emoji)
		logger.FromContext(ctx).Info("Reaction added", "mission_id", missionID, "emoji", emoji)
		return nil, nil
	})
	if shared {
		metrics.RecordDuplicateSuppressed(actionReaction)
	}
	return err
}
