package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GrapeChallenge_Web/internal/api"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

// MockAuthBackend is a mock type for the handler.AuthBackend type
type MockAuthBackend struct {
	mock.Mock
}

// Login provides a mock function with given fields: ctx, cell, name
func (m *MockAuthBackend) Login(ctx context.Context, cell, name string) api.Result[domain.LoginResult] {
	args := m.Called(ctx, cell, name)
	return args.Get(0).(api.Result[domain.LoginResult])
}

// Logout provides a mock function with given fields: ctx
func (m *MockAuthBackend) Logout(ctx context.Context) api.Result[bool] {
	args := m.Called(ctx)
	return args.Get(0).(api.Result[bool])
}

// IsLoggedIn provides a mock function with given fields: ctx
func (m *MockAuthBackend) IsLoggedIn(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}
