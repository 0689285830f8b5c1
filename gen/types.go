// Package gen configuration: options, resolved config, sentinel errors.
package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/graphcycles/core"
)

// Sentinel errors for fixture constructors.
var (
	// ErrTooFewVertices indicates a constructor parameter n below its minimum.
	ErrTooFewVertices = errors.New("gen: too few vertices")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("gen: probability out of range")
)

const (
	defaultIDPrefix = "N" // vertex IDs default to N0, N1, ...
	defaultSeed     = 1   // fixed seed so unseeded builds stay reproducible
)

// Constructor applies one deterministic topology to g using the
// resolved configuration. Constructors validate their parameters early,
// return sentinel errors, and never panic.
type Constructor func(g *core.Graph, cfg config) error

// Option configures fixture generation.
type Option func(*config)

// config is the resolved generator configuration.
type config struct {
	prefix string     // vertex ID prefix
	rng    *rand.Rand // stochastic source for Random
}

// WithSeed freezes the stochastic path of Random to the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithIDPrefix sets the vertex ID prefix (default "N").
// An empty prefix has no effect.
func WithIDPrefix(prefix string) Option {
	return func(c *config) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// newConfig resolves options over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		prefix: defaultIDPrefix,
		rng:    rand.New(rand.NewSource(defaultSeed)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id formats the vertex ID for index i.
func (c config) id(i int) string {
	return fmt.Sprintf("%s%d", c.prefix, i)
}
