package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"mangahub/config"
	"mangahub/internal/delivery"
	"mangahub/internal/delivery/http/middleware"
	"mangahub/internal/delivery/http/router"
	"mangahub/internal/delivery/http/validator"
	"mangahub/internal/domain/lifecycle"
	"mangahub/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const uploadsPath = "/uploads"

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams

	ErrorMiddleware     *middleware.ErrorMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the echo instance with the middleware chain and routes.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := NewEcho(params)

	srv := &httpServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho assembles the handler tree. It is separate from NewServer so tests can drive it with httptest.
func NewEcho(params ServerParams) *echo.Echo {
	cfg := params.Cfg

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// 1. Recover first so panics anywhere below become 500s.
	e.Use(echomiddleware.Recover())

	// 2. Request ID before any logging.
	e.Use(params.RequestIDMiddleware.Process)

	// 3. Access log and the detailed debug log.
	e.Use(slogecho.NewWithConfig(params.Logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    false,
		Filters:          []slogecho.Filter{slogecho.IgnorePath("/health")},
	}))
	e.Use(params.LoggerMiddleware.Handle)

	// 4. Security headers, CORS and compression.
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "0",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            hstsMaxAge(cfg),
		ContentSecurityPolicy: contentSecurityPolicy(cfg),
		ReferrerPolicy:        "no-referrer",
	}))
	e.Use(echomiddleware.CORSWithConfig(corsConfig(cfg)))
	e.Use(echomiddleware.Gzip())

	// 5. Body limit; multipart uploads are capped by the upload middleware from maxSize and the file count.
	e.Use(echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
		Limit: cfg.HTTP.MaxRequestBodySize,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
		},
	}))

	// 6. Global request budget.
	e.Use(params.RouterParams.RateLimitMiddleware.Global())

	e.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	e.Validator = validator.New()

	if cfg.Storage != nil && cfg.Storage.Provider == config.StorageFile {
		e.Static(uploadsPath, cfg.Storage.File.Dir)
	}

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

func corsConfig(cfg *config.Config) echomiddleware.CORSConfig {
	origins := strings.Split(cfg.HTTP.CorsOrigin, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return echomiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-Request-Id",
		},
		ExposeHeaders: []string{"X-Request-Id", "Retry-After"},
		// Browsers reject credentials with a wildcard origin.
		AllowCredentials: cfg.HTTP.CorsOrigin != "*",
	}
}

func hstsMaxAge(cfg *config.Config) int {
	if cfg.IsProduction() {
		return 15552000
	}

	return 0
}

func contentSecurityPolicy(cfg *config.Config) string {
	if cfg.IsProduction() {
		return "default-src 'self'"
	}

	return ""
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server",
		slog.String("host_port", hostPort),
		slog.String("env", s.cfg.Env.Env),
	)

	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
