package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mangahub/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	logFileName   = "app.log"
	redactedValue = "[REDACTED]"
)

// sensitiveKeys are attribute names whose values never reach the log output.
var sensitiveKeys = map[string]struct{}{
	"password":           {},
	"currentpassword":    {},
	"newpassword":        {},
	"confirmnewpassword": {},
	"token":              {},
	"accesstoken":        {},
	"refreshtoken":       {},
	"authorization":      {},
	"cookie":             {},
	"apikey":             {},
	"apisecret":          {},
	"secret":             {},
}

// Params defines the parameters required for the logger
type Params struct {
	fx.In
	fx.Lifecycle `optional:"true"`

	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	// Parse log level from config
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stdout
	if dir := strings.TrimSpace(params.Config.Env.Log.Dir); dir != "" {
		file, err := openLogFile(dir)
		if err != nil {
			return nil, err
		}
		out = io.MultiWriter(os.Stdout, file)

		if params.Lifecycle != nil {
			params.Append(fx.Hook{
				OnStop: func(context.Context) error {
					return file.Close()
				},
			})
		}
	}

	logger := slog.New(NewHandler(out, level, params.Config.Env.Log.Pretty))
	if name := params.Config.Env.ServiceName; name != "" {
		logger = logger.With(slog.String("service", name))
	}

	return logger, nil
}

// NewHandler builds a text or JSON handler that redacts sensitive attributes.
func NewHandler(w io.Writer, level slog.Leveler, pretty bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: redactAttr}
	if pretty {
		return slog.NewTextHandler(w, opts)
	}

	return slog.NewJSONHandler(w, opts)
}

// redactAttr masks sensitive attributes at any group depth.
func redactAttr(_ []string, attr slog.Attr) slog.Attr {
	if IsSensitiveKey(attr.Key) {
		return slog.String(attr.Key, redactedValue)
	}

	return attr
}

// IsSensitiveKey reports whether values under key must be masked.
func IsSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(key))
	_, ok := sensitiveKeys[normalized]

	return ok
}

func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create log dir %s", dir)
	}

	file, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}

	return file, nil
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
