package home

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/osse101/GrapeChallenge_Web/internal/api"
	"github.com/osse101/GrapeChallenge_Web/internal/concurrency"
	"github.com/osse101/GrapeChallenge_Web/internal/content"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
	"github.com/osse101/GrapeChallenge_Web/internal/growth"
	"github.com/osse101/GrapeChallenge_Web/internal/logger"
	"github.com/osse101/GrapeChallenge_Web/internal/metrics"
)

// Backend is the part of the API client the home pages use
type Backend interface {
	CurrentFruit(ctx context.Context, missionType string) api.Result[*domain.FruitWithMissions]
	CompletedFruitCount(ctx context.Context) api.Result[int]
	FruitTemplateID(ctx context.Context, name string) api.Result[string]
	CreateFruit(ctx context.Context, templateID string) api.Result[*domain.Fruit]
	CompleteMission(ctx context.Context, fruitID, name, content string) api.Result[*domain.Mission]
	HarvestFruit(ctx context.Context, fruitID string) api.Result[*domain.Fruit]
	CompleteTestMission(ctx context.Context, fruitID string) api.Result[*domain.Mission]
	EventMissions(ctx context.Context) api.Result[[]domain.Mission]
	CompleteEventMission(ctx context.Context, name, content string) api.Result[*domain.Mission]
	TodayVerse(ctx context.Context) api.Result[*domain.BibleVerse]
}

// Service defines the home page flows
type Service interface {
	// Load builds the home page for user. Backend failures show as "no fruit".
	Load(ctx context.Context, user domain.User) *State
	// PlantSeed starts a new fruit, special when the completed count hits a trigger
	PlantSeed(ctx context.Context, user domain.User) (*domain.Fruit, error)
	// CompleteMission completes a daily mission of the growing fruit
	CompleteMission(ctx context.Context, user domain.User, in MissionInput) error
	// Harvest harvests a fruit at its last stage and returns the pre-harvest page
	Harvest(ctx context.Context, user domain.User) (*State, error)
	// TestMission advances the fruit without daily limits. Dev only.
	TestMission(ctx context.Context, user domain.User) error
	// TodayVerse returns the passage for the bible-reading modal
	TodayVerse(ctx context.Context) Verse

	// LoadEvent builds the Christmas home page
	LoadEvent(ctx context.Context, user domain.User) *EventState
	// CompleteEventMission submits free text for an event mission
	CompleteEventMission(ctx context.Context, user domain.User, name, text string) error
}

type service struct {
	backend Backend
	store   *content.Store
	guard   *concurrency.Guard
	dev     bool
}

// NewService creates a new home service. dev enables the test mission.
func NewService(backend Backend, store *content.Store, guard *concurrency.Guard, dev bool) Service {
	if guard == nil {
		guard = concurrency.NewGuard()
	}
	return &service{
		backend: backend,
		store:   store,
		guard:   guard,
		dev:     dev,
	}
}

// Action names used for guard keys and metrics
const (
	actionPlant        = "plant_seed"
	actionComplete     = "complete_mission"
	actionHarvest      = "harvest"
	actionTest         = "test_mission"
	actionEventMission = "complete_event_mission"
)

// guarded runs fn at most once at a time per user and action
func (s *service) guarded(ctx context.Context, user domain.User, action string, fn func(context.Context) (any, error), parts ...string) (any, error) {
	v, shared, err := s.guard.Do(ctx, concurrency.Key(user.ID, action, parts...), fn)
	if shared {
		metrics.RecordDuplicateSuppressed(action)
		logger.FromContext(ctx).Info("Duplicate action collapsed", "action", action, "user_id", user.ID)
	}
	return v, err
}

func (s *service) Load(ctx context.Context, user domain.User) *State {
	cat := s.store.Current()
	st := &State{User: user}

	res := s.backend.CurrentFruit(ctx, "")
	if !res.OK || res.Value == nil {
		st.Stage = domain.StageInfo{Level: 0, Name: content.NoFruitStageText}
		st.Missions = []domain.Mission{}
		count := s.backend.CompletedFruitCount(ctx)
		st.CompletedCount = count.Value
		st.SpecialSeed = cat.IsEventCount(count.Value)
		return st
	}

	fruit := res.Value.Fruit
	st.Fruit = fruit
	st.Missions = res.Value.Missions
	st.Stage = growth.StageInfo(fruit.Status)
	st.Progress = growth.Progress(fruit.Status)
	st.Image = growth.StatusImage(fruit)
	st.AllCompleted = allCompleted(st.Missions)
	st.ShowTestMission = s.dev && !fruit.IsHarvestable()
	return st
}

func (s *service) PlantSeed(ctx context.Context, user domain.User) (*domain.Fruit, error) {
	v, err := s.guarded(ctx, user, actionPlant, func(ctx context.Context) (any, error) {
		return s.plant(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Fruit), nil
}

func (s *service) plant(ctx context.Context) (*domain.Fruit, error) {
	log := logger.FromContext(ctx)
	cat := s.store.Current()

	count := s.backend.CompletedFruitCount(ctx).Value

	var templateID string
	name, special := cat.EventTemplateFor(count)
	if special {
		res := s.backend.FruitTemplateID(ctx, name)
		if !res.OK {
			log.Warn("Special fruit template missing", "template", name, "completed", count)
			return nil, &domain.TemplateNotFoundError{Template: name}
		}
		templateID = res.Value
	}

	res := s.backend.CreateFruit(ctx, templateID)
	if !res.OK {
		return nil, fmt.Errorf("%w: %s", domain.ErrCreateFruitFailed, res.Message)
	}

	metrics.RecordSeedPlanted(special)
	log.Info("Seed planted", "fruit_id", res.Value.Identifier(), "special", special)
	return res.Value, nil
}

func (s *service) CompleteMission(ctx context.Context, user domain.User, in MissionInput) error {
	cat := s.store.Current()

	var text string
	switch in.Name {
	case cat.Missions.GratitudeDiary:
		t, err := ValidateContent(in.Content)
		if err != nil {
			return err
		}
		text = t
	case cat.Missions.BibleReading:
		if !in.ConfirmRead {
			return domain.ErrReadNotConfirmed
		}
	}

	_, err := s.guarded(ctx, user, actionComplete, func(ctx context.Context) (any, error) {
		cur, err := s.currentFruit(ctx)
		if err != nil {
			return nil, err
		}
		if i := slices.IndexFunc(cur.Missions, func(m domain.Mission) bool { return m.Name == in.Name }); i >= 0 && !cur.Missions[i].Completable() {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissionDone, in.Name)
		}
		fruit := cur.Fruit
		res := s.backend.CompleteMission(ctx, fruit.Identifier(), in.Name, text)
		if !res.OK {
			return nil, fmt.Errorf("%w: %s", domain.ErrCompleteMissionFailed, res.Message)
		}
		metrics.RecordMissionCompleted(in.Name)
		logger.FromContext(ctx).Info("Mission completed", "mission", in.Name, "fruit_id", fruit.Identifier())
		return nil, nil
	}, in.Name)
	return err
}

func (s *service) Harvest(ctx context.Context, user domain.User) (*State, error) {
	st := s.Load(ctx, user)
	if !st.HasFruit() {
		return st, domain.ErrNoFruit
	}
	if !st.Harvestable() {
		return st, domain.ErrNotHarvestable
	}

	_, err := s.guarded(ctx, user, actionHarvest, func(ctx context.Context) (any, error) {
		res := s.backend.HarvestFruit(ctx, st.Fruit.Identifier())
		if !res.OK {
			return nil, fmt.Errorf("%w: %s", domain.ErrHarvestFailed, res.Message)
		}
		metrics.RecordHarvest()
		logger.FromContext(ctx).Info("Fruit harvested", "fruit_id", st.Fruit.Identifier())
		return nil, nil
	})
	if err != nil {
		return st, err
	}
	st.Harvested = true
	return st, nil
}

func (s *service) TestMission(ctx context.Context, user domain.User) error {
	if !s.dev {
		return domain.ErrTestMissionBlocked
	}
	_, err := s.guarded(ctx, user, actionTest, func(ctx context.Context) (any, error) {
		cur, err := s.currentFruit(ctx)
		if err != nil {
			return nil, err
		}
		res := s.backend.CompleteTestMission(ctx, cur.Fruit.Identifier())
		if !res.OK {
			return nil, fmt.Errorf("%w: %s", domain.ErrTestMissionFailed, res.Message)
		}
		return nil, nil
	})
	return err
}

func (s *service) TodayVerse(ctx context.Context) Verse {
	res := s.backend.TodayVerse(ctx)
	if !res.OK || res.Value == nil {
		msg := res.Message
		if msg == "" {
			msg = s.store.Current().Messages.BibleFallback
		}
		return Verse{Message: msg}
	}
	return Verse{
		Reference: res.Value.Reference,
		Content:   res.Value.Content,
		Available: true,
	}
}

func (s *service) LoadEvent(ctx context.Context, user domain.User) *EventState {
	missions := s.backend.EventMissions(ctx).Value
	return &EventState{
		User:         user,
		Missions:     missions,
		AllCompleted: allCompleted(missions),
	}
}

func (s *service) CompleteEventMission(ctx context.Context, user domain.User, name, raw string) error {
	text, err := ValidateContent(raw)
	if err != nil {
		return err
	}

	_, err = s.guarded(ctx, user, actionEventMission, func(ctx context.Context) (any, error) {
		st := s.LoadEvent(ctx, user)
		m, ok := st.FindMission(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissionNotFound, name)
		}
		if !m.Completable() {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissionDone, name)
		}
		res := s.backend.CompleteEventMission(ctx, name, text)
		if !res.OK {
			return nil, fmt.Errorf("%w: %s", domain.ErrCompleteMissionFailed, res.Message)
		}
		metrics.RecordMissionCompleted(name)
		return nil, nil
	}, name)
	return err
}

// currentFruit fetches the growing fruit with its missions. An expired
// session fails with ErrNotAuthenticated, a missing fruit with ErrNoFruit.
func (s *service) currentFruit(ctx context.Context) (*domain.FruitWithMissions, error) {
	res := s.backend.CurrentFruit(ctx, "")
	if res.Status == http.StatusUnauthorized {
		return nil, domain.ErrNotAuthenticated
	}
	if !res.OK || res.Value == nil || res.Value.Fruit == nil {
		return nil, domain.ErrNoFruit
	}
	return res.Value, nil
}
