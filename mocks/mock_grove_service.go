package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GrapeChallenge_Web/internal/domain"
	"github.com/osse101/GrapeChallenge_Web/internal/grove"
)

// MockGroveService is a mock type for the grove.Service type
type MockGroveService struct {
	mock.Mock
}

// Load provides a mock function with given fields: ctx, user, mode, cell
func (m *MockGroveService) Load(ctx context.Context, user domain.User, mode grove.Mode, cell string) *grove.State {
	args := m.Called(ctx, user, mode, cell)
	return args.Get(0).(*grove.State)
}
