package home

import (
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

// State is everything the home page renders, built fresh for each request
type State struct {
	User     domain.User
	Fruit    *domain.Fruit
	Missions []domain.Mission

	Stage    domain.StageInfo
	Progress float64
	Image    string

	// Set only when there is no fruit
	CompletedCount int
	SpecialSeed    bool

	AllCompleted    bool
	ShowTestMission bool

	// Harvested marks the transient page shown right after a harvest
	Harvested bool
}

// HasFruit reports whether a fruit is growing
func (s *State) HasFruit() bool {
	return s.Fruit != nil
}

// Harvestable reports whether only the harvest card should be shown
func (s *State) Harvestable() bool {
	return s.Fruit.IsHarvestable()
}

// FindMission returns the mission with the given name
func (s *State) FindMission(name string) (domain.Mission, bool) {
	for _, m := range s.Missions {
		if m.Name == name {
			return m, true
		}
	}
	return domain.Mission{}, false
}

// EventState is the Christmas home page
type EventState struct {
	User         domain.User
	Missions     []domain.Mission
	AllCompleted bool
}

// Empty reports whether there are no event missions today
func (s *EventState) Empty() bool {
	return len(s.Missions) == 0
}

// FindMission returns the event mission with the given name
func (s *EventState) FindMission(name string) (domain.Mission, bool) {
	for _, m := range s.Missions {
		if m.Name == name {
			return m, true
		}
	}
	return domain.Mission{}, false
}

// Verse is what the bible-reading modal shows
type Verse struct {
	Reference string
	Content   string
	// Message replaces the passage when none is available
	Message   string
	Available bool
}

// MissionInput is a daily mission completion request
type MissionInput struct {
	Name        string
	Content     string
	ConfirmRead bool
}

// allCompleted reports whether every mission is done for today.
// An empty list is never complete.
func allCompleted(missions []domain.Mission) bool {
	if len(missions) == 0 {
		return false
	}
	for _, m := range missions {
		if m.Completable() {
			return false
		}
	}
	return true
}
