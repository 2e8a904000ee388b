package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GrapeChallenge_Web/internal/api"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

// MockGroveBackend is a mock type for the grove.Backend type
type MockGroveBackend struct {
	mock.Mock
}

// CurrentFruit provides a mock function with given fields: ctx, missionType
func (m *MockGroveBackend) CurrentFruit(ctx context.Context, missionType string) api.Result[*domain.FruitWithMissions] {
	args := m.Called(ctx, missionType)
	return args.Get(0).(api.Result[*domain.FruitWithMissions])
}

// MyFruits provides a mock function with given fields: ctx
func (m *MockGroveBackend) MyFruits(ctx context.Context) api.Result[[]domain.Fruit] {
	args := m.Called(ctx)
	return args.Get(0).(api.Result[[]domain.Fruit])
}

// Cells provides a mock function with given fields: ctx
func (m *MockGroveBackend) Cells(ctx context.Context) api.Result[[]string] {
	args := m.Called(ctx)
	return args.Get(0).(api.Result[[]string])
}

// CellFruits provides a mock function with given fields: ctx, cell
func (m *MockGroveBackend) CellFruits(ctx context.Context, cell string) api.Result[[]domain.Fruit] {
	args := m.Called(ctx, cell)
	return args.Get(0).(api.Result[[]domain.Fruit])
}
