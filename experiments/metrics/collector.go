package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Exploration    float64
	Cutoff         int
	Seed           uint64
	Duration       time.Duration
	Episodes       int
	FullPlayouts   int // rollouts that reached a terminal state
	CutoffPlayouts int // rollouts resolved by the cutoff evaluation
	Nodes          int
	MaxDepth       int
}

type MoveMetric struct {
	Step   int
	Player int
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         int // -1 on a draw or an unfinished game
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(exploration float64, cutoff int, seed uint64)
	AddEpisode()
	AddFullPlayout()
	AddCutoffPlayout()
	SetTree(nodes, maxDepth int)
	Complete() SearchMetric
}

type collector struct {
	exploration    float64
	cutoff         int
	seed           uint64
	startTime      time.Time
	episodes       atomic.Int32
	fullPlayouts   atomic.Int32
	cutoffPlayouts atomic.Int32
	nodes          atomic.Int32
	maxDepth       atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(exploration float64, cutoff int, seed uint64) {
	m.startTime = time.Now()
	m.exploration = exploration
	m.cutoff = cutoff
	m.seed = seed
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddCutoffPlayout() {
	m.cutoffPlayouts.Add(1)
}

func (m *collector) SetTree(nodes, maxDepth int) {
	m.nodes.Store(int32(nodes))
	m.maxDepth.Store(int32(maxDepth))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Exploration:    m.exploration,
		Cutoff:         m.cutoff,
		Seed:           m.seed,
		Duration:       time.Since(m.startTime),
		Episodes:       int(m.episodes.Load()),
		FullPlayouts:   int(m.fullPlayouts.Load()),
		CutoffPlayouts: int(m.cutoffPlayouts.Load()),
		Nodes:          int(m.nodes.Load()),
		MaxDepth:       int(m.maxDepth.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(exploration float64, cutoff int, seed uint64) {}
func (m *dummyCollector) AddEpisode()                                      {}
func (m *dummyCollector) AddFullPlayout()                                  {}
func (m *dummyCollector) AddCutoffPlayout()                                {}
func (m *dummyCollector) SetTree(nodes, maxDepth int)                      {}
func (m *dummyCollector) Complete() SearchMetric                           { return SearchMetric{} }
