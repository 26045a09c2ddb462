package source

import "github.com/charmbracelet/log"

// DefaultLineLimit is the longest line, in bytes and counting its terminator, a source file may contain.
const DefaultLineLimit = 190

// Option configures a Loader
type Option func(*Loader)

// WithLineLimit overrides DefaultLineLimit. Values below one are ignored.
func WithLineLimit(limit int) Option {
	return func(l *Loader) {
		if limit > 0 {
			l.limit = limit
		}
	}
}

// WithLogger sets the logger used for debug events
func WithLogger(logger *log.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.log = logger
		}
	}
}
