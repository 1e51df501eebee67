package metrics

import (
	"sync/atomic"
	"time"
)

// WarmupMetric summarizes one warm-up pass over the candidate space.
type WarmupMetric struct {
	Goroutines  int
	Duration    time.Duration
	Candidates  int // candidate identifiers driven through the selector
	Invalid     int // candidates rejected as not-found or without moves
	Evaluations int // minimax computations actually performed
	CacheHits   int // evaluations answered from the cache
	Entries     int // cache entries after the pass
}

type Collector interface {
	Start(goroutines int)
	AddCandidate()
	AddInvalid()
	AddEvaluation()
	AddHit()
	Complete() WarmupMetric
}

type collector struct {
	goroutines  int
	startTime   time.Time
	candidates  atomic.Int64
	invalid     atomic.Int64
	evaluations atomic.Int64
	hits        atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(goroutines int) {
	c.startTime = time.Now()
	c.goroutines = goroutines
}

func (c *collector) AddCandidate() {
	c.candidates.Add(1)
}

func (c *collector) AddInvalid() {
	c.invalid.Add(1)
}

func (c *collector) AddEvaluation() {
	c.evaluations.Add(1)
}

func (c *collector) AddHit() {
	c.hits.Add(1)
}

func (c *collector) Complete() WarmupMetric {
	return WarmupMetric{
		Goroutines:  c.goroutines,
		Duration:    time.Since(c.startTime),
		Candidates:  int(c.candidates.Load()),
		Invalid:     int(c.invalid.Load()),
		Evaluations: int(c.evaluations.Load()),
		CacheHits:   int(c.hits.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(goroutines int)   {}
func (c *dummyCollector) AddCandidate()          {}
func (c *dummyCollector) AddInvalid()            {}
func (c *dummyCollector) AddEvaluation()         {}
func (c *dummyCollector) AddHit()                {}
func (c *dummyCollector) Complete() WarmupMetric { return WarmupMetric{} }
