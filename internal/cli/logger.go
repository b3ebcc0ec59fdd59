package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger creates the command logger. --verbose and --quiet take
// precedence over the configured level.
func newLogger(out io.Writer, opts *rootOptions, level string) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	unknown := lvl == hclog.NoLevel
	if unknown {
		lvl = hclog.Warn
	}

	switch {
	case opts.verbose:
		lvl = hclog.Debug
	case opts.quiet:
		lvl = hclog.Error
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "apcheck",
		Output: out,
		Level:  lvl,
	})

	if unknown && level != "" {
		logger.Warn("unknown log level, using warn", "level", level)
	}

	return logger
}
