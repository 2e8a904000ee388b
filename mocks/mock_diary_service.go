package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GrapeChallenge_Web/internal/diary"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

// MockDiaryService is a mock type for the diary.Service type
type MockDiaryService struct {
	mock.Mock
}

// Load provides a mock function with given fields: ctx, names
func (m *MockDiaryService) Load(ctx context.Context, names []string) *diary.State {
	args := m.Called(ctx, names)
	return args.Get(0).(*diary.State)
}

// LoadGratitude provides a mock function with given fields: ctx
func (m *MockDiaryService) LoadGratitude(ctx context.Context) *diary.State {
	args := m.Called(ctx)
	return args.Get(0).(*diary.State)
}

// LoadChristmas provides a mock function with given fields: ctx, filter
func (m *MockDiaryService) LoadChristmas(ctx context.Context, filter string) *diary.State {
	args := m.Called(ctx, filter)
	return args.Get(0).(*diary.State)
}

// AddReaction provides a mock function with given fields: ctx, user, missionID, emoji
func (m *MockDiaryService) AddReaction(ctx context.Context, user domain.User, missionID, emoji string) error {
	args := m.Called(ctx, user, missionID, emoji)
	return args.Error(0)
}
