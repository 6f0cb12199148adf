package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nlwcopa/bolao/internal/platform/timeouts"
	"github.com/nlwcopa/bolao/internal/services/web/api"
	"github.com/nlwcopa/bolao/internal/services/web/app"
	"github.com/nlwcopa/bolao/internal/services/web/modules"
	"github.com/nlwcopa/bolao/internal/services/web/modules/landing"
	"github.com/nlwcopa/bolao/internal/services/web/platform/httpx"
	"github.com/nlwcopa/bolao/internal/services/web/platform/observability"
	"github.com/nlwcopa/bolao/internal/services/web/static"
	"go.uber.org/zap"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr   string
	APIBaseURL string
	APITimeout time.Duration
	Logger     *zap.Logger
	// HTTPClient is used for backend calls. Nil uses a fresh client.
	HTTPClient *http.Client
	// Gateway replaces the backend client when set.
	Gateway landing.Gateway
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHandler builds the root handler with the middleware stack.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	gateway := cfg.Gateway
	if gateway == nil {
		client, err := api.New(api.Config{
			BaseURL:    cfg.APIBaseURL,
			Timeout:    cfg.APITimeout,
			HTTPClient: cfg.HTTPClient,
		})
		if err != nil {
			return nil, fmt.Errorf("build api client: %w", err)
		}
		gateway = client
	}

	root, err := app.Compose(app.ComposeInput{
		Modules: modules.DefaultModules(modules.Dependencies{
			Gateway: gateway,
			Assets:  static.Default(logger),
			Logger:  logger,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}
	return httpx.Chain(root,
		httpx.RequestID(),
		observability.RequestLogger(logger),
		httpx.RecoverPanic(logger),
	), nil
}

// NewServer builds a configured web server.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ErrorLog:          zap.NewStdLog(cfg.Logger),
		},
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info("web listening", zap.String("addr", s.httpAddr))
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases idle backend connections.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpClient != nil {
		s.httpClient.CloseIdleConnections()
	}
	_ = s.logger.Sync()
}
