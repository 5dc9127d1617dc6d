package runner

import (
	"log/slog"

	"github.com/aretw0/turing/internal/logging"
)

// DefaultCheckInterval is how many steps run between two context checks.
const DefaultCheckInterval = 1024

type options struct {
	limit         int
	checkInterval int
	logger        *slog.Logger
}

// Option defines a functional option for Execute.
type Option func(*options)

// WithLimit bounds the run to n steps. Zero or a negative n means unbounded.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// WithCheckInterval sets how many steps run between two context checks.
func WithCheckInterval(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.checkInterval = n
		}
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		checkInterval: DefaultCheckInterval,
		logger:        logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
