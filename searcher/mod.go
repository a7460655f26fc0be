package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
	"time"
)

// Infinity bounds every evaluation, terminal sentinels included.
const Infinity = 1_000_000_000

const (
	MinimaxDepth   = 3
	AlphaBetaDepth = 4
	AdvancedDepth  = 5
	DefaultBudget  = 1500 * time.Millisecond
)

type Searcher interface {
	Name() string
	// FindMove returns the move chosen for the player to move and performance metrics (if collected)
	FindMove(state game.GameState) (game.Move, metrics.SearchMetric)
}

type Option func(o *options)

type options struct {
	depth      int
	budget     time.Duration
	cache      *Cache
	evaluate   game.Evaluate
	newMetrics func() metrics.Collector
	now        func() time.Time
}

func WithDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.depth = depth
		}
	}
}

// WithBudget bounds the wall-clock time of iterative deepening.
func WithBudget(budget time.Duration) Option {
	return func(o *options) {
		if budget > 0 {
			o.budget = budget
		}
	}
}

// WithCache shares a transposition cache between searches.
func WithCache(cache *Cache) Option {
	return func(o *options) {
		if cache != nil {
			o.cache = cache
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(o *options) {
		if evaluate != nil {
			o.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(o *options) {
		o.newMetrics = metrics.NewCollector
	}
}

func withClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func newOptions(depth int, opts []Option) options {
	o := options{ // Default values
		depth:      depth,
		budget:     DefaultBudget,
		evaluate:   game.EvaluateWeightedFrontier,
		newMetrics: metrics.NewDummyCollector,
		now:        time.Now,
	}
	for _, option := range opts {
		option(&o)
	}
	if o.cache == nil {
		o.cache = NewCache()
	}
	return o
}

func (o options) newSearch(me game.Color, order bool) *search {
	return &search{
		me:       me,
		evaluate: o.evaluate,
		cache:    o.cache,
		order:    order,
		metrics:  o.newMetrics(),
	}
}
