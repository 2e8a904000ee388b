package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GrapeChallenge_Web/internal/api"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

// MockHomeBackend is a mock type for the home.Backend type
type MockHomeBackend struct {
	mock.Mock
}

// CurrentFruit provides a mock function with given fields: ctx, missionType
func (m *MockHomeBackend) CurrentFruit(ctx context.Context, missionType string) api.Result[*domain.FruitWithMissions] {
	args := m.Called(ctx, missionType)
	return args.Get(0).(api.Result[*domain.FruitWithMissions])
}

// CompletedFruitCount provides a mock function with given fields: ctx
func (m *MockHomeBackend) CompletedFruitCount(ctx context.Context) api.Result[int] {
	args := m.Called(ctx)
	return args.Get(0).(api.Result[int])
}

// FruitTemplateID provides a mock function with given fields: ctx, name
func (m *MockHomeBackend) FruitTemplateID(ctx context.Context, name string) api.Result[string] {
	args := m.Called(ctx, name)
	return args.Get(0).(api.Result[string])
}

// CreateFruit provides a mock function with given fields: ctx, templateID
func (m *MockHomeBackend) CreateFruit(ctx context.Context, templateID string) api.Result[*domain.Fruit] {
	args := m.Called(ctx, templateID)
	return args.Get(0).(api.Result[*domain.Fruit])
}

// CompleteMission provides a mock function with given fields: ctx, fruitID, name, content
func (m *MockHomeBackend) CompleteMission(ctx context.Context, fruitID, name, content string) api.Result[*domain.Mission] {
	args := m.Called(ctx, fruitID, name, content)
	return args.Get(0).(api.Result[*domain.Mission])
}

// HarvestFruit provides a mock function with given fields: ctx, fruitID
func (m *MockHomeBackend) HarvestFruit(ctx context.Context, fruitID string) api.Result[*domain.Fruit] {
	args := m.Called(ctx, fruitID)
	return args.Get(0).(api.Result[*domain.Fruit])
}

// CompleteTestMission provides a mock function with given fields: ctx, fruitID
func (m *MockHomeBackend) CompleteTestMission(ctx context.Context, fruitID string) api.Result[*domain.Mission] {
	args := m.Called(ctx, fruitID)
	return args.Get(0).(api.Result[*domain.Mission])
}

// EventMissions provides a mock function with given fields: ctx
func (m *MockHomeBackend) EventMissions(ctx context.Context) api.Result[[]domain.Mission] {
	args := m.Called(ctx)
	return args.Get(0).(api.Result[[]domain.Mission])
}

// CompleteEventMission provides a mock function with given fields: ctx, name, content
func (m *MockHomeBackend) CompleteEventMission(ctx context.Context, name, content string) api.Result[*domain.Mission] {
	args := m.Called(ctx, name, content)
	return args.Get(0).(api.Result[*domain.Mission])
}

// TodayVerse provides a mock function with given fields: ctx
func (m *MockHomeBackend) TodayVerse(ctx context.Context) api.Result[*domain.BibleVerse] {
	args := m.Called(ctx)
	return args.Get(0).(api.Result[*domain.BibleVerse])
}
