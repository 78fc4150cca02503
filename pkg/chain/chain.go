package chain

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/aretw0/markov/pkg/domain"
)

// Chain is a Markov chain over payloads of type T.
// It is not safe for concurrent use: build it first, then walk it.
type Chain[T any] struct {
	caps   Capabilities[T]
	reg    registry[T]
	rng    *rand.Rand
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	closed bool
}

type config struct {
	rng    *rand.Rand
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// Option defines a functional option for configuring a Chain.
type Option func(*config)

// WithSeed seeds the random source of the chain.
// Two chains built the same way with the same seed produce the same walks.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand injects the random source, e.g. one shared by several chains.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rng = r
	}
}

// WithLogger sets a structured logger for the chain.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}

// New creates an empty chain bound to caps.
// Without WithSeed or WithRand the random source is seeded from the runtime.
func New[T any](caps Capabilities[T], opts ...Option) (*Chain[T], error) {
	if err := CheckCapabilities(caps); err != nil {
		return nil, err
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Chain[T]{
		caps:   caps,
		reg:    registry[T]{caps: caps},
		rng:    cfg.rng,
		logger: cfg.logger,
		hooks:  cfg.hooks,
	}, nil
}

// CheckCapabilities reports whether caps can back a chain.
func CheckCapabilities[T any](caps Capabilities[T]) error {
	if caps == nil {
		return fmt.Errorf("capabilities are required")
	}
	if v, ok := caps.(interface{ validate() error }); ok {
		return v.validate()
	}
	return nil
}

// Capabilities returns the capability set the chain was created with.
func (c *Chain[T]) Capabilities() Capabilities[T] {
	return c.caps
}

// Print renders v with the Print capability.
func (c *Chain[T]) Print(w io.Writer, v T) error {
	return c.caps.Print(w, v)
}

// Closed reports whether the chain has been torn down.
func (c *Chain[T]) Closed() bool {
	return c.closed
}

// Close tears the chain down, releasing every state and edge.
// It is safe to call more than once.
func (c *Chain[T]) Close() {
	if c.closed {
		return
	}
	c.logger.Debug("chain closed", "states", len(c.reg.states))
	c.reg.states = nil
	c.closed = true
}

// teardown destroys the chain after a fatal build error.
func (c *Chain[T]) teardown(cause error) {
	n := len(c.reg.states)
	c.logger.Error("chain torn down", "states", n, "error", cause)
	c.reg.states = nil
	c.closed = true
	if c.hooks.OnTeardown != nil {
		c.hooks.OnTeardown(&domain.BuildEvent{
			EventBase: newEventBase(domain.EventChainTornDown),
			Count:     n,
		})
	}
}

func newEventBase(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t}
}
