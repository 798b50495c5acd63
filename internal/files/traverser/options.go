package traverser

import (
	"github.com/vvka-141/enumfiles/internal/logging"
	"github.com/vvka-141/enumfiles/pkg/enumfiles"
)

// Option configures a Traverser.
type Option func(*Traverser)

// WithLogger routes diagnostics to logger. A nil logger discards them.
func WithLogger(logger enumfiles.Logger) Option {
	return func(t *Traverser) {
		if logger == nil {
			logger = logging.NewNullLogger()
		}
		t.logger = logger
	}
}

// WithConcurrency lists up to n directories at once when collecting files
// recursively. Values below 2 keep listing sequential; values above
// enumfiles.MaxConcurrency are capped. Output order does not depend on n.
func WithConcurrency(n int) Option {
	return func(t *Traverser) {
		switch {
		case n < enumfiles.DefaultConcurrency:
			n = enumfiles.DefaultConcurrency
		case n > enumfiles.MaxConcurrency:
			n = enumfiles.MaxConcurrency
		}
		t.concurrency = n
	}
}
