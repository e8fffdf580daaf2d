package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/minesweep/internal/generator"
	"github.com/samdwyer/minesweep/internal/telemetry"
)

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for mine placement.
func WithRand(rng generator.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithSeed seeds mine placement for reproducible games.
// A seed of 0 means a random seed will be generated.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSafeZone sets how much of the first click's surroundings stays clear.
func WithSafeZone(policy generator.Policy) Option {
	return func(e *Engine) {
		e.policy = policy
	}
}

// WithLogger sets the logger for operation records.
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithTracer sets the tracer used for operation spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(e *Engine) {
		e.tracer = tracer
	}
}

func defaults(e *Engine) {
	e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	e.policy = generator.SafeNeighborhood

	discard := logrus.New()
	discard.SetOutput(io.Discard)
	e.log = discard

	e.tracer = telemetry.Tracer("engine")
}
