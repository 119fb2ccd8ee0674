package diagnostics

import (
	"log/slog"
	"time"
)

// GraphMonitorOption configures a GraphMonitor.
type GraphMonitorOption func(*GraphMonitor)

// WithHistoryLength sets how many samples each graph keeps.
func WithHistoryLength(n int) GraphMonitorOption {
	return func(m *GraphMonitor) {
		if n > 0 {
			m.historyLength = n
		}
	}
}

// WithLogInterval sets how often Tick logs the graphs.
func WithLogInterval(d time.Duration) GraphMonitorOption {
	return func(m *GraphMonitor) {
		m.interval = d
	}
}

// WithMonitorLogger sets the logger graphs are written to.
func WithMonitorLogger(l *slog.Logger) GraphMonitorOption {
	return func(m *GraphMonitor) {
		m.logger = l
	}
}

// WithMonitorClock replaces the time source used by Tick.
func WithMonitorClock(now func() time.Time) GraphMonitorOption {
	return func(m *GraphMonitor) {
		if now != nil {
			m.now = now
		}
	}
}
