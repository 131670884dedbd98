// options.go: functional options for New.
//
// Option constructors panic on meaningless input; the pipeline itself never
// panics. Later options override earlier ones.

package multisnake

import "github.com/NoSuchProcess/SOAX/store"

// Option customizes a Multisnake.
type Option func(*options)

type options struct {
	workers   int          // evolution workers; 1 keeps the run deterministic
	store     *store.Store // per-frame checkpoint target, optional
	imageName string
}

const defaultWorkers = 1

func newOptions(opts []Option) options {
	o := options{workers: defaultWorkers}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithWorkers evolves snakes on n goroutines. Each worker owns its solver
// bank. Results then depend on scheduling order.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("multisnake: WithWorkers(n < 1)")
	}
	return func(o *options) { o.workers = n }
}

// WithStore checkpoints every processed frame into s.
func WithStore(s *store.Store) Option {
	if s == nil {
		panic("multisnake: WithStore(nil)")
	}
	return func(o *options) { o.store = s }
}

// WithImageName records the image file name written into snake files.
func WithImageName(name string) Option {
	return func(o *options) { o.imageName = name }
}
