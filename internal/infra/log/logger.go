package logs

import (
	"log/slog"
	"os"
	"strings"

	"smartchef/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// New builds the application slog.Logger. Output goes to stdout as JSON,
// or as human-readable text when log.pretty is enabled.
func New(params Params) (*slog.Logger, error) {
	level, ok := logLevels[strings.ToLower(params.Config.Env.Log.Level)]
	if !ok {
		return nil, errors.Errorf("unknown log level: %s", params.Config.Env.Log.Level)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if params.Config.Env.Log.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler), nil
}
