package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GrapeChallenge_Web/internal/api"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

// MockDiaryBackend is a mock type for the diary.Backend type
type MockDiaryBackend struct {
	mock.Mock
}

// MissionsByName provides a mock function with given fields: ctx, name, date
func (m *MockDiaryBackend) MissionsByName(ctx context.Context, name, date string) api.Result[domain.MissionList] {
	args := m.Called(ctx, name, date)
	return args.Get(0).(api.Result[domain.MissionList])
}

// AddInteraction provides a mock function with given fields: ctx, missionID, emoji
func (m *MockDiaryBackend) AddInteraction(ctx context.Context, missionID, emoji string) api.Result[*domain.Mission] {
	args := m.Called(ctx, missionID, emoji)
	return args.Get(0).(api.Result[*domain.Mission])
}
