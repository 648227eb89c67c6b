// SPDX-License-Identifier: MIT

package histfunc

import "go.uber.org/zap"

// Defaults (single source of truth for zero-value behaviour).
const (
	// DefaultForceNumInt leaves analytic integration enabled.
	DefaultForceNumInt = false

	// DefaultScratchCapacity is the initial batch scratch size; the buffer
	// grows on the first batch that needs more.
	DefaultScratchCapacity = 0
)

const (
	panicNilLogger       = "histfunc: WithLogger: nil logger"
	panicScratchCapacity = "histfunc: WithScratchCapacity: capacity must be >= 0"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved configuration of a Func.
type Options struct {
	logger          *zap.Logger
	forceNumInt     bool
	scratchCapacity int
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithForceNumInt disables analytic integrals: every request returns
// integral.NoAnalytic so the caller integrates numerically.
func WithForceNumInt(force bool) Option {
	return func(o *Options) { o.forceNumInt = force }
}

// WithScratchCapacity pre-sizes the batch scratch buffer for batches of up
// to n points, so the first EvaluateBatch does not allocate.
func WithScratchCapacity(n int) Option {
	if n < 0 {
		panic(panicScratchCapacity)
	}

	return func(o *Options) { o.scratchCapacity = n }
}

func gatherOptions(opts []Option) Options {
	o := Options{
		logger:          zap.NewNop(),
		forceNumInt:     DefaultForceNumInt,
		scratchCapacity: DefaultScratchCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
