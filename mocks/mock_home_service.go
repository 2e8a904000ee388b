package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GrapeChallenge_Web/internal/domain"
	"github.com/osse101/GrapeChallenge_Web/internal/home"
)

// MockHomeService is a mock type for the home.Service type
type MockHomeService struct {
	mock.Mock
}

// Load provides a mock function with given fields: ctx, user
func (m *MockHomeService) Load(ctx context.Context, user domain.User) *home.State {
	args := m.Called(ctx, user)
	return args.Get(0).(*home.State)
}

// PlantSeed provides a mock function with given fields: ctx, user
func (m *MockHomeService) PlantSeed(ctx context.Context, user domain.User) (*domain.Fruit, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fruit), args.Error(1)
}

// CompleteMission provides a mock function with given fields: ctx, user, in
func (m *MockHomeService) CompleteMission(ctx context.Context, user domain.User, in home.MissionInput) error {
	args := m.Called(ctx, user, in)
	return args.Error(0)
}

// Harvest provides a mock function with given fields: ctx, user
func (m *MockHomeService) Harvest(ctx context.Context, user domain.User) (*home.State, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*home.State), args.Error(1)
}

// TestMission provides a mock function with given fields: ctx, user
func (m *MockHomeService) TestMission(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// TodayVerse provides a mock function with given fields: ctx
func (m *MockHomeService) TodayVerse(ctx context.Context) home.Verse {
	args := m.Called(ctx)
	return args.Get(0).(home.Verse)
}

// LoadEvent provides a mock function with given fields: ctx, user
func (m *MockHomeService) LoadEvent(ctx context.Context, user domain.User) *home.EventState {
	args := m.Called(ctx, user)
	return args.Get(0).(*home.EventState)
}

// CompleteEventMission provides a mock function with given fields: ctx, user, name, text
func (m *MockHomeService) CompleteEventMission(ctx context.Context, user domain.User, name, text string) error {
	args := m.Called(ctx, user, name, text)
	return args.Error(0)
}
