package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/osse101/GrapeChallenge_Web/internal/api"
	"github.com/osse101/GrapeChallenge_Web/internal/domain"
	"github.com/osse101/GrapeChallenge_Web/internal/logger"
	"github.com/osse101/GrapeChallenge_Web/internal/view"
)

// AuthBackend is the part of the API client the login pages use
type AuthBackend interface {
	Login(ctx context.Context, cell, name string) api.Result[domain.LoginResult]
	Logout(ctx context.Context) api.Result[bool]
	IsLoggedIn(ctx context.Context) bool
}

// AuthHandler serves the login and logout pages
type AuthHandler struct {
	*Pages
	backend AuthBackend
	cookies Cookies
}

// NewAuthHandler creates the auth handler. cookies sets the fallback session cookies.
func NewAuthHandler(pages *Pages, backend AuthBackend, cookies Cookies) *AuthHandler {
	return &AuthHandler{
		Pages:   pages,
		backend: backend,
		cookies: cookies,
	}
}

type loginForm struct {
	Cell string `form:"cell" validate:"required"`
	Name string `form:"name" validate:"required"`
}

// HandleLoginPage shows the login form, or the home page when already signed in.
// Cookies the backend no longer accepts are cleared.
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := userFromCookies(r); ok {
		if h.backend.IsLoggedIn(r.Context()) {
			redirect(w, r, view.PathHome)
			return
		}
		logger.FromContext(r.Context()).Info("Stale session cleared")
		h.cookies.Clear(w)
	}
	h.render(w, r, http.StatusOK, view.PageLogin, h.publicPage(r, titleLogin, view.LoginView{}))
}

// HandleLogin signs the user in through the backend and redirects home
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	msgs := h.catalog().Messages

	var form loginForm
	if err := decodeForm(r, &form); err != nil {
		log.Warn("Invalid login form", "fields", FormatValidationError(err))
		h.renderLogin(w, r, http.StatusBadRequest, form, msgs.LoginFieldsRequired)
		return
	}

	res := h.backend.Login(r.Context(), form.Cell, form.Name)
	if !res.OK || !res.Value.Success {
		err := fmt.Errorf("%w: backend status %d", domain.ErrLoginFailed, res.Status)
		status, msg := mapServiceErrorToUserMessage(err, msgs)
		if res.Value.Message != "" {
			msg = res.Value.Message
		}
		log.Warn("Login failed", "cell", form.Cell, "error", err)
		h.renderLogin(w, r, status, form, msg)
		return
	}

	forward(w, res.Cookies)
	if !hasSessionCookie(res.Cookies) {
		h.cookies.Set(w, domain.User{ID: res.Value.UserID, Cell: form.Cell, Name: form.Name})
	}
	log.Info("User logged in", "user_id", res.Value.UserID, "cell", form.Cell)
	redirect(w, r, view.PathHome)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, status int, form loginForm, alert string) {
	page := h.publicPage(r, titleLogin, view.LoginView{Cell: form.Cell, Name: form.Name}).WithAlert(alert)
	h.render(w, r, status, view.PageLogin, page)
}

// HandleLogoutPage asks for confirmation before signing out
func (h *AuthHandler) HandleLogoutPage(w http.ResponseWriter, r *http.Request) {
	body := view.LogoutView{Message: h.catalog().Messages.LogoutConfirm}
	h.render(w, r, http.StatusOK, view.PageLogout, h.page(r, titleLogout, currentUser(r), body))
}

// HandleLogout ends the session. The cookies are cleared even when the backend call fails.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	res := h.backend.Logout(r.Context())
	if !res.OK {
		log.Warn("Backend logout failed", "status", res.Status, "message", res.Message)
	}

	forward(w, res.Cookies)
	h.cookies.Clear(w)
	log.Info("User logged out")
	redirect(w, r, view.PathLogin)
}
