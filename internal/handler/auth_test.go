package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrapeChallenge_Web/internal/api"
	"github.com/osse101/GrapeChallenge_Web/internal/content"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
	"github.com/osse101/GrapeChallenge_Web/internal/view"
	"github.com/osse101/GrapeChallenge_Web/mocks"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *mocks.MockAuthBackend) {
	backend := &mocks.MockAuthBackend{}
	t.Cleanup(func() { backend.AssertExpectations(t) })
	return NewAuthHandler(newTestPages(t), backend, Cookies{}), backend
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	var found *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == name {
			found = ck
		}
	}
	return found
}

func TestHandleLoginPage(t *testing.T) {
	h, _ := newAuthHandler(t)

	t.Run("signed out", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleLoginPage(w, httptest.NewRequest(http.MethodGet, "/login", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		doc := parseBody(t, w)
		assert.Equal(t, 1, doc.Find("form#login-form").Length())
		assert.Equal(t, 0, doc.Find("#mobile-menu").Length())
	})

	signedIn := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.AddCookie(&http.Cookie{Name: domain.CookieUserID, Value: "u-1"})
		return req
	}

	t.Run("signed in goes home", func(t *testing.T) {
		h, backend := newAuthHandler(t)
		backend.On("IsLoggedIn", mock.Anything).Return(true).Once()

		w := httptest.NewRecorder()
		h.HandleLoginPage(w, signedIn())
		assertRedirect(t, w, view.PathHome)
	})

	t.Run("stale session is cleared", func(t *testing.T) {
		h, backend := newAuthHandler(t)
		backend.On("IsLoggedIn", mock.Anything).Return(false).Once()

		w := httptest.NewRecorder()
		h.HandleLoginPage(w, signedIn())

		assert.Equal(t, http.StatusOK, w.Code)
		ck := findCookie(w, domain.CookieUserID)
		require.NotNil(t, ck)
		assert.Equal(t, -1, ck.MaxAge)
		assert.Equal(t, 1, parseBody(t, w).Find("form#login-form").Length())
	})
}

func TestHandleLogin(t *testing.T) {
	msgs := content.Default().Messages

	tests := []struct {
		name       string
		values     url.Values
		setupMock  func(*mocks.MockAuthBackend)
		wantStatus int
		wantAlert  string
		check      func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:       "missing name is refused before the backend",
			values:     url.Values{"cell": {"사랑셀"}, "name": {"  "}},
			setupMock:  func(*mocks.MockAuthBackend) {},
			wantStatus: http.StatusBadRequest,
			wantAlert:  msgs.LoginFieldsRequired,
		},
		{
			name:   "backend message is shown",
			values: url.Values{"cell": {"사랑셀"}, "name": {"홍길동"}},
			setupMock: func(m *mocks.MockAuthBackend) {
				m.On("Login", mock.Anything, "사랑셀", "홍길동").Return(api.Result[domain.LoginResult]{
					Value:   domain.LoginResult{Message: "등록되지 않은 사용자입니다."},
					Status:  http.StatusUnauthorized,
					Message: "등록되지 않은 사용자입니다.",
				})
			},
			wantStatus: http.StatusUnauthorized,
			wantAlert:  "등록되지 않은 사용자입니다.",
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				val, _ := parseBody(t, w).Find("#cell").Attr("value")
				assert.Equal(t, "사랑셀", val)
			},
		},
		{
			name:   "generic message without backend text",
			values: url.Values{"cell": {"사랑셀"}, "name": {"홍길동"}},
			setupMock: func(m *mocks.MockAuthBackend) {
				m.On("Login", mock.Anything, "사랑셀", "홍길동").Return(api.Result[domain.LoginResult]{})
			},
			wantStatus: http.StatusUnauthorized,
			wantAlert:  msgs.LoginError,
		},
		{
			name:   "backend cookies are forwarded",
			values: url.Values{"cell": {" 사랑셀 "}, "name": {"홍길동"}},
			setupMock: func(m *mocks.MockAuthBackend) {
				m.On("Login", mock.Anything, "사랑셀", "홍길동").Return(api.Result[domain.LoginResult]{
					Value:   domain.LoginResult{Success: true, UserID: "u-1"},
					OK:      true,
					Cookies: []*http.Cookie{{Name: domain.CookieUserID, Value: "u-1", Path: "/"}},
				})
			},
			wantStatus: http.StatusSeeOther,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, view.PathHome, w.Header().Get("Location"))
				assert.Len(t, w.Result().Cookies(), 1)
			},
		},
		{
			name:   "own cookies when the backend sets none",
			values: url.Values{"cell": {"사랑셀"}, "name": {"홍길동"}},
			setupMock: func(m *mocks.MockAuthBackend) {
				m.On("Login", mock.Anything, "사랑셀", "홍길동").Return(api.Result[domain.LoginResult]{
					Value: domain.LoginResult{Success: true, UserID: "u-1"},
					OK:    true,
				})
			},
			wantStatus: http.StatusSeeOther,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				ck := findCookie(w, domain.CookieUserName)
				require.NotNil(t, ck)
				assert.Equal(t, url.QueryEscape("홍길동"), ck.Value)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, backend := newAuthHandler(t)
			tt.setupMock(backend)

			w := httptest.NewRecorder()
			h.HandleLogin(w, postForm("/login", tt.values))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantAlert != "" {
				assert.Equal(t, tt.wantAlert, parseBody(t, w).Find("#page-alert").Text())
			}
			if tt.check != nil {
				tt.check(t, w)
			}
		})
	}
}

func TestHandleLogoutPage(t *testing.T) {
	h, _ := newAuthHandler(t)
	w := httptest.NewRecorder()
	h.HandleLogoutPage(w, getPage("/logout"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, content.Default().Messages.LogoutConfirm, parseBody(t, w).Find("#logout-message").Text())
}

func TestHandleLogout(t *testing.T) {
	for _, ok := range []bool{true, false} {
		h, backend := newAuthHandler(t)
		backend.On("Logout", mock.Anything).Return(api.Result[bool]{Value: ok, OK: ok})

		w := httptest.NewRecorder()
		h.HandleLogout(w, postPage("/logout", nil))

		assertRedirect(t, w, view.PathLogin)
		ck := findCookie(w, domain.CookieUserID)
		require.NotNil(t, ck)
		assert.Equal(t, -1, ck.MaxAge)
	}
}
