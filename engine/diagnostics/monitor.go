package diagnostics

import (
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-demo/common"
)

// DefaultHistoryLength is the number of samples a graph keeps.
const DefaultHistoryLength = 32

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// StatsMonitor displays live values sampled from the running application.
type StatsMonitor interface {
	// AddGraph registers a value to be shown as a graph scaled to [min, max].
	//
	// Parameters:
	//   - name: the label of the graph
	//   - min: the value drawn at the bottom of the graph
	//   - max: the value drawn at the top of the graph
	//   - sample: reads the current value, called once per monitor tick
	AddGraph(name string, min, max float64, sample func() float64)
}

// Ticker is implemented by monitors that sample their graphs once per frame.
type Ticker interface {
	Tick() bool
}

type graph struct {
	name     string
	min, max float64
	sample   func() float64
	history  []float64
}

// GraphMonitor is a StatsMonitor that keeps a rolling history per graph and logs each graph as a
// sparkline at a fixed interval. Tick must be called from the frame loop.
type GraphMonitor struct {
	mu            *sync.Mutex
	graphs        []*graph
	historyLength int
	interval      time.Duration
	lastLog       time.Time
	logger        *slog.Logger
	now           func() time.Time
}

var (
	_ StatsMonitor = &GraphMonitor{}
	_ Ticker       = &GraphMonitor{}
)

// NewGraphMonitor creates a GraphMonitor.
//
// Parameters:
//   - options: optional configuration
//
// Returns:
//   - *GraphMonitor: the monitor
func NewGraphMonitor(options ...GraphMonitorOption) *GraphMonitor {
	m := &GraphMonitor{
		mu:            &sync.Mutex{},
		historyLength: DefaultHistoryLength,
		interval:      time.Second,
		now:           time.Now,
	}
	for _, opt := range options {
		opt(m)
	}
	m.lastLog = m.now()
	return m
}

func (m *GraphMonitor) AddGraph(name string, min, max float64, sample func() float64) {
	if sample == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.graphs = append(m.graphs, &graph{
		name:    name,
		min:     min,
		max:     max,
		sample:  sample,
		history: make([]float64, 0, m.historyLength),
	})
}

// Tick samples every graph and logs their sparklines once the interval has elapsed.
//
// Returns:
//   - bool: true if the graphs were logged this tick
func (m *GraphMonitor) Tick() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, g := range m.graphs {
		if len(g.history) == m.historyLength {
			copy(g.history, g.history[1:])
			g.history = g.history[:len(g.history)-1]
		}
		g.history = append(g.history, g.sample())
	}

	now := m.now()
	if now.Sub(m.lastLog) < m.interval || len(m.graphs) == 0 {
		return false
	}
	m.lastLog = now

	logger := m.logger
	if logger == nil {
		logger = common.Logger()
	}
	for _, g := range m.graphs {
		logger.Info("stats",
			"graph", g.name,
			"value", g.history[len(g.history)-1],
			"history", Sparkline(g.history, g.min, g.max),
		)
	}
	return true
}

// History returns a copy of the samples kept for the named graph.
//
// Parameters:
//   - name: the graph label
//
// Returns:
//   - []float64: oldest first, nil if no such graph
func (m *GraphMonitor) History(name string) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.graphs {
		if g.name == name {
			return append([]float64(nil), g.history...)
		}
	}
	return nil
}

// Sparkline renders values as block characters scaled to [min, max]. Values outside the range
// are clamped; NaN renders as a space.
//
// Parameters:
//   - values: the samples, oldest first
//   - min: the value mapped to the lowest block
//   - max: the value mapped to the highest block
//
// Returns:
//   - string: one rune per value
func Sparkline(values []float64, min, max float64) string {
	var sb strings.Builder
	span := max - min
	top := len(sparkRunes) - 1
	for _, v := range values {
		if math.IsNaN(v) {
			sb.WriteRune(' ')
			continue
		}
		level := 0
		if span > 0 {
			level = int(math.Round((v - min) / span * float64(top)))
		}
		if level < 0 {
			level = 0
		}
		if level > top {
			level = top
		}
		sb.WriteRune(sparkRunes[level])
	}
	return sb.String()
}
