package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"horse.fit/landing/internal/globaltime"
	"horse.fit/landing/internal/locale"
	"horse.fit/landing/internal/templates"
)

type Options struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	BodyLimit       string
}

type Server struct {
	pages       *templates.Store
	logger      zerolog.Logger
	opts        Options
	index       *IndexHandler
	interceptor *ErrorInterceptor
	echo        *echo.Echo
}

func NewServer(pages *templates.Store, catalog *locale.Catalog, color string, logger zerolog.Logger, opts Options) *Server {
	host := strings.TrimSpace(opts.Host)
	if host == "" {
		host = "0.0.0.0"
	}
	port := opts.Port
	if port <= 0 {
		port = 5000
	}
	readTimeout := opts.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 10 * time.Second
	}
	writeTimeout := opts.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}
	shutdownTimeout := opts.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	bodyLimit := strings.TrimSpace(opts.BodyLimit)
	if bodyLimit == "" {
		bodyLimit = "4K"
	}

	s := &Server{
		pages:  pages,
		logger: logger,
		opts: Options{
			Host:            host,
			Port:            port,
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			ShutdownTimeout: shutdownTimeout,
			BodyLimit:       bodyLimit,
		},
		index:       NewIndexHandler(pages, catalog, color, logger),
		interceptor: NewErrorInterceptor(pages, logger),
	}
	s.echo = s.routes()
	return s
}

// Handler exposes the routed echo instance.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.httpErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				s.logger.Error().
					Err(v.Error).
					Str("method", v.Method).
					Str("uri", v.URI).
					Int("status", v.Status).
					Dur("latency", v.Latency).
					Str("remote_ip", v.RemoteIP).
					Str("request_id", v.RequestID).
					Msg("http request failed")
				return nil
			}

			s.logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Str("request_id", v.RequestID).
				Msg("http request")
			return nil
		},
	}))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
	}))
	e.Use(dnsPrefetchOff)
	e.Use(middleware.BodyLimit(s.opts.BodyLimit))
	e.Use(middleware.Gzip())

	staticSub, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		panic(fmt.Sprintf("httpapi: embedded static files: %v", err))
	}
	static := e.Group("/static")
	static.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:       ".",
		Browse:     true,
		Filesystem: http.FS(staticSub),
	}))

	e.GET("/", s.handleIndex)

	api := e.Group("/api/v1")
	api.GET("/health", s.handleHealth)

	return e
}

func dnsPrefetchOff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("X-DNS-Prefetch-Control", "off")
		return next(c)
	}
}

func (s *Server) Start(ctx context.Context) error {
	if s == nil || s.pages == nil || s.echo == nil {
		return fmt.Errorf("server is not initialized")
	}
	e := s.echo

	addr := fmt.Sprintf("%s:%d", s.opts.Host, s.opts.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      e,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
			s.logger.Error().Err(shutdownErr).Msg("server shutdown failed")
		}
	}()

	s.logger.Info().Str("addr", addr).Msg("landing web server started")

	if err := e.StartServer(httpServer); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("start server: %w", err)
	}
	s.logger.Info().Msg("landing web server stopped")
	return nil
}

// httpErrorHandler turns every error escaping a handler (unknown routes,
// recovered panics, oversized bodies) into a plain-text Response and hands
// it to the ErrorInterceptor like any handler-built response.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		message = http.StatusText(status)
		if v, ok := he.Message.(string); ok && strings.TrimSpace(v) != "" {
			message = v
		}
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Str("uri", c.Request().RequestURI).Int("status", status).Msg("request failed")
	}

	if writeErr := s.write(c, plainTextResponse(status, message)); writeErr != nil {
		s.logger.Error().Err(writeErr).Msg("write error response failed")
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	return success(c, map[string]any{
		"service": "landing",
		"time":    globaltime.UTC(),
	})
}
