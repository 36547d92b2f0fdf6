package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/studio-backend/internal/config"
	"github.com/heartmarshall/studio-backend/internal/notify"
	"github.com/heartmarshall/studio-backend/internal/transport/middleware"
	"github.com/heartmarshall/studio-backend/internal/transport/rest"
	"github.com/heartmarshall/studio-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (ctxutil.Identity, error)
}

type eventPublisher interface {
	Publish(e notify.Event)
}

// routes describes everything mounted on the root mux.
type routes struct {
	handlers  rest.Handlers
	health    *rest.HealthHandler
	tokens    tokenValidator
	events    eventPublisher
	snapshots notify.Snapshotters
	limiter   *middleware.RateLimiter
	gatherer  prometheus.Gatherer
	mediaRoot string
}

// newRootHandler mounts the API under /api/, media under /media/ and the
// operational endpoints at the root.
func newRootHandler(cfg *config.Config, logger *slog.Logger, r routes) http.Handler {
	api := http.NewServeMux()

	var wrap rest.Wrappers
	wrap.Settings = middleware.RequireIdentity
	if r.limiter != nil && cfg.Server.UploadRateLimit > 0 {
		wrap.Upload = r.limiter.Limit(cfg.Server.UploadRateLimit)
	}
	rest.Register(api, r.handlers, wrap)

	chain := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.ClientIP,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(r.tokens),
	}
	if !cfg.Auth.AllowAnonymous {
		chain = append(chain, middleware.RequireIdentity)
	}
	chain = append(chain, middleware.Notify(r.events, r.snapshots, logger))

	mux := http.NewServeMux()
	mux.Handle("/api/", middleware.Chain(chain...)(api))

	if r.mediaRoot != "" {
		mux.Handle("GET /media/", http.StripPrefix("/media/", http.FileServer(http.Dir(r.mediaRoot))))
	}

	if r.health != nil {
		mux.HandleFunc("GET /live", r.health.Live)
		mux.HandleFunc("GET /ready", r.health.Ready)
		mux.HandleFunc("GET /health", r.health.Health)
	}

	if cfg.Metrics.Enabled && r.gatherer != nil {
		mux.Handle("GET "+cfg.Metrics.Path, promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{}))
	}

	return mux
}

func newHTTPServer(cfg config.ServerConfig, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}
