package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/haleway/internal/auth"
	"github.com/mmynk/haleway/internal/engine"
	"github.com/mmynk/haleway/internal/metrics"
	"github.com/mmynk/haleway/internal/middleware"
	"github.com/mmynk/haleway/internal/seed"
	"github.com/mmynk/haleway/internal/service"
	"github.com/mmynk/haleway/internal/storage"
	"github.com/mmynk/haleway/pkg/api/apiconnect"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(app *App) *cobra.Command {
	var seedOnStart bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Connect API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.cfg.RequireSecret(); err != nil {
				return err
			}

			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			slog.Info("Storage initialized", "database", app.cfg.Database.Path)

			if seedOnStart {
				doc, err := seed.Load(app.cfg.Seed.File)
				if err != nil {
					return err
				}
				if _, err := seed.Seed(cmd.Context(), store, doc); err != nil {
					return err
				}
			}

			jwtManager := auth.NewJWTManager(app.cfg.Auth.JWTSecret, app.cfg.Auth.TokenTTL)
			handler := NewHandler(store, engine.New(store), jwtManager, metrics.New())

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return listenAndServe(ctx, fmt.Sprintf(":%d", app.cfg.Server.Port), handler)
		},
	}

	cmd.Flags().Int("port", 0, "listen port (server.port)")
	_ = app.v.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	cmd.Flags().BoolVar(&seedOnStart, "seed", false, "create missing system templates before serving")

	return cmd
}

// pinger is the part of the store the health check needs.
type pinger interface {
	Ping() error
}

// NewHandler assembles the HTTP surface: both Connect services behind the
// metrics, auth and logging interceptors, plus /metrics and /healthz.
func NewHandler(store storage.Store, e *engine.Engine, jwtManager *auth.JWTManager, m *metrics.Metrics) http.Handler {
	interceptors := connect.WithInterceptors(
		middleware.MetricsInterceptor(m),
		middleware.RequireAuth(jwtManager),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewTemplateServiceHandler(service.NewTemplateService(e), interceptors))
	mux.Handle(apiconnect.NewChecklistServiceHandler(service.NewChecklistService(e, m), interceptors))
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if p, ok := store.(pinger); ok {
			if err := p.Ping(); err != nil {
				slog.Error("Health check failed", "error", err)
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	return loggingMiddleware(corsMiddleware(mux))
}

// listenAndServe serves HTTP/2 without TLS (required for Connect's gRPC
// protocol) until ctx is cancelled, then drains in-flight requests.
func listenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
