package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/osse101/GrapeChallenge_Web/internal/api"
	"github.com/osse101/GrapeChallenge_Web/internal/concurrency"
	"github.com/osse101/GrapeChallenge_Web/internal/config"
	"github.com/osse101/GrapeChallenge_Web/internal/content"
	"github.com/osse101/GrapeChallenge_Web/internal/diary"
	"github.com/osse101/GrapeChallenge_Web/internal/grove"
	"github.com/osse101/GrapeChallenge_Web/internal/handler"
	"github.com/osse101/GrapeChallenge_Web/internal/home"
	"github.com/osse101/GrapeChallenge_Web/internal/server"
	"github.com/osse101/GrapeChallenge_Web/internal/view"
)

const pingTimeout = 5 * time.Second

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "grapeweb",
	Short: "Grape challenge web frontend",
	Long: `grapeweb serves the grape challenge pages: the daily mission board,
the grove of harvested fruits and the shared gratitude diary.

All state lives in the challenge backend; this process only renders pages
and forwards the signed-in user's session cookies.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		initLogger(cfg)
		warnings, err := config.ValidateEnvWithWarnings()
		if err != nil {
			return err
		}
		for _, w := range warnings {
			slog.Warn("Insecure configuration", "warning", w)
		}
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the backend is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), pingTimeout)
		defer cancel()
		client := api.NewClient(cfg.BackendURL, cfg.BackendTimeout)
		if err := client.Ping(ctx); err != nil {
			return fmt.Errorf("backend %s unreachable: %w", cfg.BackendURL, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "backend %s ok\n", cfg.BackendURL)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		v := handler.CurrentVersion()
		fmt.Fprintf(cmd.OutOrStdout(), "grapeweb %s (commit %s, built %s, %s)\n", v.Version, v.GitCommit, v.BuildTime, v.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, pingCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// serve wires the services and blocks until ctx is cancelled or the listener fails
func serve(ctx context.Context, cfg *config.Config) error {
	store, err := loadContent(cfg.ContentFile)
	if err != nil {
		return err
	}
	if cfg.ContentFile != "" {
		watcher, err := content.NewWatcher(store, cfg.ContentFile)
		if err != nil {
			return err
		}
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer watcher.Stop()
	}

	client := api.NewClient(cfg.BackendURL, cfg.BackendTimeout)
	guard := concurrency.NewGuard()

	renderer, err := view.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	pages := handler.NewPages(renderer, store)

	handlers := server.Handlers{
		Pages:  pages,
		Auth:   handler.NewAuthHandler(pages, client, handler.Cookies{Secure: cfg.SecureCookies}),
		Home:   handler.NewHomeHandler(pages, home.NewService(client, store, guard, cfg.IsDev())),
		Grove:  handler.NewGroveHandler(pages, grove.NewService(client, grove.NewCellCache(cfg.CellCacheSize, cfg.CellCacheTTL), cfg.AdminCell), cfg.Location()),
		Diary:  handler.NewDiaryHandler(pages, diary.NewService(client, store, guard, cfg.Location())),
		Health: client,
	}

	srv := server.NewServer(server.Options{
		Addr:           cfg.Addr(),
		CSRFKey:        []byte(cfg.CSRFKey),
		SecureCookies:  cfg.SecureCookies,
		TrustedProxies: cfg.TrustedProxies,
	}, handlers)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down server", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	slog.Info("Server exited")
	return nil
}

// loadContent starts from the built-in catalog, replaced by path when set
func loadContent(path string) (*content.Store, error) {
	if path == "" {
		return content.NewStore(content.Default()), nil
	}
	cat, err := content.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load content file: %w", err)
	}
	return content.NewStore(cat), nil
}
