package handler

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/osse101/GrapeChallenge_Web/internal/api"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
	"github.com/osse101/GrapeChallenge_Web/internal/logger"
	"github.com/osse101/GrapeChallenge_Web/internal/view"
)

type contextKey int

const userKey contextKey = iota

// WithUser returns a context carrying the signed-in user
func WithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the user set by RequireUser
func UserFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userKey).(domain.User)
	return user, ok
}

func currentUser(r *http.Request) domain.User {
	user, _ := UserFromContext(r.Context())
	return user
}

// ForwardSession hands the browser's cookies to the backend client
func ForwardSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := api.WithSession(r.Context(), r.Cookies())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser redirects to the login page unless the session cookies name a user
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromCookies(r)
		if !ok {
			logger.FromContext(r.Context()).Debug("No session, redirecting to login", "path", r.URL.Path)
			redirect(w, r, view.PathLogin)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func userFromCookies(r *http.Request) (domain.User, bool) {
	id := cookieValue(r, domain.CookieUserID)
	if id == "" {
		return domain.User{}, false
	}
	return domain.User{
		ID:   id,
		Cell: cookieValue(r, domain.CookieUserCell),
		Name: cookieValue(r, domain.CookieUserName),
	}, true
}

// cookieValue reads a cookie, undoing the URL escaping used for Korean names
func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		return c.Value
	}
	return v
}

var sessionCookieNames = []string{domain.CookieUserID, domain.CookieUserCell, domain.CookieUserName}

// Cookies sets and clears the session cookies
type Cookies struct {
	Secure bool
}

func (c Cookies) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    url.QueryEscape(value),
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Set writes the session cookies for user
func (c Cookies) Set(w http.ResponseWriter, user domain.User) {
	http.SetCookie(w, c.cookie(domain.CookieUserID, user.ID))
	http.SetCookie(w, c.cookie(domain.CookieUserCell, user.Cell))
	http.SetCookie(w, c.cookie(domain.CookieUserName, user.Name))
}

// Clear expires the session cookies
func (c Cookies) Clear(w http.ResponseWriter) {
	for _, name := range sessionCookieNames {
		ck := c.cookie(name, "")
		ck.MaxAge = -1
		ck.Expires = time.Unix(0, 0)
		http.SetCookie(w, ck)
	}
}

// forward copies the backend's Set-Cookie values to the browser
func forward(w http.ResponseWriter, cookies []*http.Cookie) {
	for _, ck := range cookies {
		http.SetCookie(w, ck)
	}
}

func hasSessionCookie(cookies []*http.Cookie) bool {
	for _, ck := range cookies {
		if ck.Name == domain.CookieUserID && ck.Value != "" {
			return true
		}
	}
	return false
}
