// Package metrics collects per-decision search statistics, mirroring
// the counters a game loop or experiment harness needs to compare
// engine configurations.
package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetrics summarizes a single choose_action call.
type SearchMetrics struct {
	Duration     time.Duration
	Episodes     int64
	FullPlayouts int64
}

// Collector accumulates counters during a search and reports them on
// Complete. Implementations must be safe to share across a single
// search's goroutines, though this engine runs none concurrently.
type Collector interface {
	Start()
	AddEpisode()
	AddFullPlayout()
	Complete() SearchMetrics
}

type collector struct {
	startTime    time.Time
	episodes     atomic.Int64
	fullPlayouts atomic.Int64
}

// NewCollector returns a Collector that records real counters.
func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.episodes.Store(0)
	c.fullPlayouts.Store(0)
}

func (c *collector) AddEpisode() {
	c.episodes.Add(1)
}

func (c *collector) AddFullPlayout() {
	c.fullPlayouts.Add(1)
}

func (c *collector) Complete() SearchMetrics {
	return SearchMetrics{
		Duration:     time.Since(c.startTime),
		Episodes:     c.episodes.Load(),
		FullPlayouts: c.fullPlayouts.Load(),
	}
}

type noopCollector struct{}

// NewNoopCollector returns a Collector that discards everything, for
// callers that don't want the bookkeeping overhead.
func NewNoopCollector() Collector {
	return &noopCollector{}
}

func (noopCollector) Start()                  {}
func (noopCollector) AddEpisode()             {}
func (noopCollector) AddFullPlayout()         {}
func (noopCollector) Complete() SearchMetrics { return SearchMetrics{} }
