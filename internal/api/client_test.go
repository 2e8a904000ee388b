package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrapeChallenge_Web/internal/domain"
)

// fakeBackend serves canned JSON replies keyed by "METHOD /path"
type fakeBackend struct {
	replies map[string]reply

	mu     sync.Mutex
	seen   []*http.Request
	bodies map[string]map[string]any
}

type reply struct {
	status int
	body   string
	cookie *http.Cookie
}

func newFakeBackend(t *testing.T, replies map[string]reply) (*fakeBackend, *Client) {
	t.Helper()
	fb := &fakeBackend{replies: replies, bodies: map[string]map[string]any{}}
	srv := httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(srv.Close)
	return fb, NewClient(srv.URL+"/", time.Second)
}

func (fb *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	fb.mu.Lock()
	fb.seen = append(fb.seen, r)
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		var m map[string]any
		if json.Unmarshal(raw, &m) == nil {
			fb.bodies[key] = m
		}
	}
	fb.mu.Unlock()
	rep, ok := fb.replies[key]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if rep.cookie != nil {
		http.SetCookie(w, rep.cookie)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rep.status)
	_, _ = io.WriteString(w, rep.body)
}

func (fb *fakeBackend) requests() []*http.Request {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]*http.Request(nil), fb.seen...)
}

func (fb *fakeBackend) body(key string) map[string]any {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.bodies[key]
}

// deadClient points at a closed server so every call fails in transport
func deadClient(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return NewClient(url, 200*time.Millisecond)
}

func TestSend_ForwardsSessionCookies(t *testing.T) {
	fb, c := newFakeBackend(t, map[string]reply{
		"GET /fruits/completed/count": {status: 200, body: `{"count": 3}`},
	})
	ctx := WithSession(context.Background(), []*http.Cookie{
		{Name: domain.CookieUserID, Value: "u-1"},
		{Name: domain.CookieUserCell, Value: "cell-a"},
	})

	res := c.CompletedFruitCount(ctx)

	require.True(t, res.OK)
	assert.Equal(t, 3, res.Value)
	seen := fb.requests()
	require.Len(t, seen, 1)
	ck, err := seen[0].Cookie(domain.CookieUserID)
	require.NoError(t, err)
	assert.Equal(t, "u-1", ck.Value)
	assert.Equal(t, ContentTypeJSON, seen[0].Header.Get(HeaderAccept))
}

func TestDo_TimesOut(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)

	c := NewClient(srv.URL, 50*time.Millisecond)

	start := time.Now()
	res := c.CompletedFruitCount(context.Background())
	assert.False(t, res.OK)
	assert.Equal(t, 0, res.Value)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestDo_ErrorMessageFromBody(t *testing.T) {
	_, c := newFakeBackend(t, map[string]reply{
		"POST /login": {status: 401, body: `{"message": "등록되지 않은 사용자입니다."}`},
		"POST /fruit": {status: 422, body: `{"detail": "bad template"}`},
	})

	login := c.Login(context.Background(), "cell", "name")
	assert.False(t, login.OK)
	assert.Equal(t, 401, login.Status)
	assert.Equal(t, "등록되지 않은 사용자입니다.", login.Message)
	assert.False(t, login.Value.Success)
	assert.Equal(t, "등록되지 않은 사용자입니다.", login.Value.Message)

	fruit := c.CreateFruit(context.Background(), "")
	assert.False(t, fruit.OK)
	assert.Equal(t, "bad template", fruit.Message)
	assert.Nil(t, fruit.Value)
}

func TestDo_MalformedBody(t *testing.T) {
	_, c := newFakeBackend(t, map[string]reply{
		"GET /cells": {status: 200, body: `<html>oops</html>`},
	})
	res := c.Cells(context.Background())
	assert.False(t, res.OK)
	assert.Equal(t, []string{}, res.Value)
}

func TestSend_DoesNotFollowRedirects(t *testing.T) {
	var followed bool
	mux := http.NewServeMux()
	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: domain.CookieUserID, Value: "", MaxAge: -1})
		http.Redirect(w, r, "/login-page", http.StatusFound)
	})
	mux.HandleFunc("/login-page", func(w http.ResponseWriter, r *http.Request) {
		followed = true
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	res := NewClient(srv.URL, time.Second).Logout(context.Background())

	assert.False(t, followed)
	assert.False(t, res.OK)
	assert.Equal(t, http.StatusFound, res.Status)
	require.Len(t, res.Cookies, 1)
	assert.Equal(t, domain.CookieUserID, res.Cookies[0].Name)
}
