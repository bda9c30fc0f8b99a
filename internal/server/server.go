// Package server runs the render sidecar: an HTTP endpoint a wiki engine hook posts `<hostinfo>` tags to.
package server

import (
	"context"
	stdlog "log"
	"net"
	"net/http"

	"github.com/hostinfo/hostwiki/internal/errors"
	"github.com/hostinfo/hostwiki/internal/hostinfo"
	"github.com/hostinfo/hostwiki/internal/inventory"
	"github.com/hostinfo/hostwiki/pkg/log"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"
)

// Server is the render sidecar.
type Server struct {
	*Router
	config *Config
}

// NewServer returns a new Server reading from fetcher.
func NewServer(fetcher inventory.Fetcher, opts ...Option) *Server {
	cfg := NewConfig(opts...)

	renderController := &RenderController{
		Renderer: hostinfo.NewRenderer(fetcher, hostinfo.WithLogger(cfg.logger)),
		Fetcher:  fetcher,
	}

	rootRouter := NewRouter()
	rootRouter.StdLogger = stdlog.New(&log.Writer{Logger: cfg.logger, Level: log.ErrorLevel}, "", 0)
	rootRouter.Use(Logger(cfg.logger))
	rootRouter.Use(Recover(cfg.logger))
	rootRouter.Use(middleware.BodyLimit(cfg.bodyLimit))
	rootRouter.Register(renderController)

	return &Server{
		Router: rootRouter,
		config: cfg,
	}
}

// Listen starts listening to the configured address. Port 0 picks a free port.
func (server *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", server.config.Addr())
	if err != nil {
		return nil, errors.New(err)
	}

	server.Server.Addr = ln.Addr().String()

	server.config.logger.Infof("Render server is listening on %s", ln.Addr())

	return ln, nil
}

// Run serves on ln until ctx is done, then shuts down gracefully.
func (server *Server) Run(ctx context.Context, ln net.Listener) error {
	logger := server.config.logger

	errGroup, ctx := errgroup.WithContext(ctx)
	errGroup.Go(func() error {
		<-ctx.Done()
		logger.Infof("Shutting down render server...")

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), server.config.shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return errors.New(err)
		}

		return nil
	})

	if err := server.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Errorf("error starting render server: %w", err)
	}
	defer logger.Infof("Render server stopped")

	return errGroup.Wait()
}
