package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes the work done to choose one move.
type SearchMetric struct {
	Strategy    string
	Duration    time.Duration
	Depth       int // Deepest depth searched
	Nodes       int
	CacheHits   int
	CacheMisses int
	Value       int // Value of the chosen move at Depth
}

type MoveMetric struct {
	Step   int
	Player string // Color name
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "Tie" when disc counts are equal
	BlackDiscs     int
	WhiteDiscs     int
	Plies          int
	Forfeit        bool // Game ended on an illegal move
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

type Collector interface {
	Start(strategy string)
	AddNode()
	AddCacheHit()
	AddCacheMiss()
	CompleteDepth(depth, value int)
	Complete() SearchMetric
}

type collector struct {
	strategy    string
	startTime   time.Time
	nodes       atomic.Int64
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
	depth       atomic.Int64
	value       atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string) {
	m.strategy = strategy
	m.startTime = time.Now()
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCacheHit() {
	m.cacheHits.Add(1)
}

func (m *collector) AddCacheMiss() {
	m.cacheMisses.Add(1)
}

func (m *collector) CompleteDepth(depth, value int) {
	m.depth.Store(int64(depth))
	m.value.Store(int64(value))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:    m.strategy,
		Duration:    time.Since(m.startTime),
		Depth:       int(m.depth.Load()),
		Nodes:       int(m.nodes.Load()),
		CacheHits:   int(m.cacheHits.Load()),
		CacheMisses: int(m.cacheMisses.Load()),
		Value:       int(m.value.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string)          {}
func (m *dummyCollector) AddNode()                       {}
func (m *dummyCollector) AddCacheHit()                   {}
func (m *dummyCollector) AddCacheMiss()                  {}
func (m *dummyCollector) CompleteDepth(depth, value int) {}
func (m *dummyCollector) Complete() SearchMetric         { return SearchMetric{} }
