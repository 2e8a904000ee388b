package api

import (
	"context"
	"net/http"
)

type ctxKey string

const sessionKey ctxKey = "session_cookies"

// WithSession returns a context carrying the browser cookies to forward
func WithSession(ctx context.Context, cookies []*http.Cookie) context.Context {
	return context.WithValue(ctx, sessionKey, cookies)
}

// SessionCookies returns the cookies stored by WithSession
func SessionCookies(ctx context.Context) []*http.Cookie {
	cookies, _ := ctx.Value(sessionKey).([]*http.Cookie)
	return cookies
}
