package xstat

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Option configures a DecisionTree or a RandomForest.
type Option func(*options)

type options struct {
	rand   *rand.Rand
	logger *zap.Logger
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rand == nil {
		o.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}

/*
WithRand makes the model draw every random decision (majority vote ties,
bootstrap samples and feature samples) from the given source. Models
sharing a source must not be used concurrently.
*/
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

/*
WithSeed makes the model draw its random decisions from a source seeded
with the given value, so that training it twice with the same parameters
yields the same result. Without it models are seeded with the current time.
*/
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithLogger sets the logger the model reports training progress to.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
