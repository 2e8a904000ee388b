package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/GrapeChallenge_Web/internal/handler"
	"github.com/osse101/GrapeChallenge_Web/internal/logger"
	"github.com/osse101/GrapeChallenge_Web/internal/metrics"
	"github.com/osse101/GrapeChallenge_Web/internal/view"
)

// Options configures the router and listener
type Options struct {
	Addr           string
	CSRFKey        []byte // empty disables CSRF protection
	SecureCookies  bool
	TrustedProxies []string
}

// Handlers are the page and ops handlers the router mounts
type Handlers struct {
	Pages  *handler.Pages
	Auth   *handler.AuthHandler
	Home   *handler.HomeHandler
	Grove  *handler.GroveHandler
	Diary  *handler.DiaryHandler
	Health handler.HealthChecker
}

// Server is the HTTP server for the pages and ops endpoints
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, h Handlers) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              opts.Addr,
			Handler:           NewRouter(opts, h),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter builds the route table
func NewRouter(opts Options, h Handlers) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	limiter := NewRateLimiter(rateWindow, rateLimit, opts.TrustedProxies)

	r.Use(securityHeaders)
	r.Use(limiter.Middleware)
	r.Use(limitBody(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.NotFound(h.Pages.NotFound)

	// Ops routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(h.Health))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Handle(view.PathStatic+"/*", http.StripPrefix(view.PathStatic, staticHandler()))

	// Pages
	r.Group(func(r chi.Router) {
		if len(opts.CSRFKey) > 0 {
			r.Use(csrfMiddleware(opts, h.Pages))
		}
		r.Use(handler.ForwardSession)

		r.Get(view.PathRoot, handler.HandleRoot)
		r.Get(view.PathLogin, h.Auth.HandleLoginPage)
		r.Post(view.PathLogin, h.Auth.HandleLogin)
		r.Post(view.PathLogout, h.Auth.HandleLogout)

		r.Group(func(r chi.Router) {
			r.Use(handler.RequireUser)

			r.Get(view.PathLogout, h.Auth.HandleLogoutPage)

			r.Get(view.PathHome, h.Home.HandleHome)
			r.Post(view.PathPlant, h.Home.HandlePlant)
			r.Post(view.PathCompleteMission, h.Home.HandleCompleteMission)
			r.Post(view.PathHarvest, h.Home.HandleHarvest)
			r.Post(view.PathTestMission, h.Home.HandleTestMission)
			r.Get(view.PathChristmas, h.Home.HandleChristmas)
			r.Post(view.PathCompleteEventMission, h.Home.HandleCompleteEventMission)

			r.Get(view.PathGrove, h.Grove.HandleGrove)

			r.Get(view.PathDiary, h.Diary.HandleDiary)
			r.Post(view.PathInteraction, h.Diary.HandleInteraction)
			r.Get(view.PathDiaryChristmas, h.Diary.HandleChristmasDiary)
		})
	})

	return r
}

func staticHandler() http.Handler {
	files := http.FileServer(http.FS(view.Static()))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderCacheControl, HeaderValueStaticCache)
		files.ServeHTTP(w, r)
	})
}

// csrfMiddleware guards every form post. Without secure cookies the site is
// served over plain HTTP, which gorilla/csrf must be told about.
func csrfMiddleware(opts Options, pages *handler.Pages) func(http.Handler) http.Handler {
	protect := csrf.Protect(opts.CSRFKey,
		csrf.Secure(opts.SecureCookies),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.FromContext(r.Context()).Warn(LogMsgCSRFRejected, "path", r.URL.Path, "reason", csrf.FailureReason(r))
			pages.Forbidden(w, r)
		})),
	)
	return func(next http.Handler) http.Handler {
		protected := protect(next)
		if opts.SecureCookies {
			return protected
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			protected.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, prefix := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Session cookies identify the user, keep them out of the logs
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if isSensitiveHeader(k) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

func isSensitiveHeader(name string) bool {
	for _, h := range SensitiveHeaders {
		if strings.EqualFold(name, h) {
			return true
		}
	}
	return false
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
