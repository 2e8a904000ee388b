package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockChecker struct {
	mock.Mock
}

func (m *mockChecker) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Backend Up", func(t *testing.T) {
		checker := &mockChecker{}
		checker.On("Ping", mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(checker).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		checker.AssertExpectations(t)
	})

	t.Run("Backend Down", func(t *testing.T) {
		checker := &mockChecker{}
		checker.On("Ping", mock.Anything).Return(assert.AnError)

		w := httptest.NewRecorder()
		HandleReadyz(checker).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), msgBackendDown)
		checker.AssertExpectations(t)
	})
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeJSON, w.Header().Get(headerContentType))
	assert.Contains(t, w.Body.String(), `"go_version"`)
}

func TestCurrentVersion(t *testing.T) {
	t.Run("ldflags win", func(t *testing.T) {
		prev := Version
		Version = "1.2.3"
		t.Cleanup(func() { Version = prev })
		t.Setenv("VERSION", "from-env")

		assert.Equal(t, "1.2.3", CurrentVersion().Version)
	})

	t.Run("env when unstamped", func(t *testing.T) {
		t.Setenv("VERSION", "from-env")
		assert.Equal(t, "from-env", CurrentVersion().Version)
	})

	t.Run("never empty", func(t *testing.T) {
		t.Setenv("VERSION", "")
		assert.NotEmpty(t, CurrentVersion().Version)
	})
}
