package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	analyticsUC "banquetpro/internal/analytics/usecase"
	eventUC "banquetpro/internal/event/usecase"
	"banquetpro/internal/store"
	"banquetpro/pkg/gcalendar"
	"banquetpro/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin  *gin.Engine
	l    log.Logger
	port int
	mode string

	store    *store.Client
	calendar *gcalendar.Client
	calCfg   eventUC.CalendarConfig

	cacheTTL        time.Duration
	mutationsPerMin int
	analyticsCfg    analyticsUC.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger log.Logger
	Port   int
	Mode   string

	// Store is the client for the external banquet data store.
	Store *store.Client

	// Calendar is optional; nil disables schedule sync.
	Calendar   *gcalendar.Client
	CalendarID string
	Timezone   string

	CacheTTL        time.Duration
	MutationsPerMin int
	Analytics       analyticsUC.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:        logger,
		gin:      gin.New(),
		port:     cfg.Port,
		mode:     cfg.Mode,
		store:    cfg.Store,
		calendar: cfg.Calendar,
		calCfg: eventUC.CalendarConfig{
			CalendarID: cfg.CalendarID,
			Timezone:   cfg.Timezone,
		},
		cacheTTL:        cfg.CacheTTL,
		mutationsPerMin: cfg.MutationsPerMin,
		analyticsCfg:    cfg.Analytics,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.store == nil {
		return errors.New("store client is required")
	}
	return nil
}

// Run serves until ctx is cancelled, then drains in-flight requests for
// up to shutdownTimeout.
func (srv *HTTPServer) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.port),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	srv.l.Info(ctx, "Shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
