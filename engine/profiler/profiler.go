package profiler

import (
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-demo/common"
)

// FrameSampleCount is the number of recent frame durations averaged by FrameMs.
const FrameSampleCount = 20

// Profiler tracks frame timings and memory statistics for performance monitoring.
// Frame durations are kept in a fixed ring of FrameSampleCount entries; periodic stats are
// written to the logger at a configurable interval.
type Profiler struct {
	mu *sync.Mutex

	samples [FrameSampleCount]float64
	index   int
	count   int

	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	logger *slog.Logger
	now    func() time.Time
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second and the logger
// to the shared engine logger.
//
// Parameters:
//   - options: optional configuration
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		mu:             &sync.Mutex{},
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	if p.logger == nil {
		p.logger = common.Logger()
	}
	p.lastTime = p.now()
	return p
}

// Record stores the wall time of one frame in the ring, overwriting the oldest entry once full.
//
// Parameters:
//   - d: the frame duration
func (p *Profiler) Record(d time.Duration) {
	p.RecordMs(float64(d) / float64(time.Millisecond))
}

// RecordMs stores a frame duration given in milliseconds.
//
// Parameters:
//   - ms: the frame duration in milliseconds
func (p *Profiler) RecordMs(ms float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.samples[p.index] = ms
	p.index = (p.index + 1) % FrameSampleCount
	if p.count < FrameSampleCount {
		p.count++
	}
}

// FrameMs returns the mean of the last FrameSampleCount recorded durations in milliseconds.
// Until the ring has been filled once it reports 0.
//
// Returns:
//   - float64: the rolling average frame time, or 0 while warming up
func (p *Profiler) FrameMs() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.count < FrameSampleCount {
		return 0
	}
	var sum float64
	for _, v := range p.samples {
		sum += v
	}
	return sum / FrameSampleCount
}

// Samples returns how many durations have been recorded, capped at FrameSampleCount.
func (p *Profiler) Samples() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

// Tick should be called once per frame to track frame rate.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, average frame time, heap usage, allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.mu.Lock()
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		p.mu.Unlock()
		return false
	}
	frames := p.frameCount
	p.frameCount = 0
	p.lastTime = currentTime
	p.mu.Unlock()

	fps := float64(frames) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	// TotalAlloc only grows; the delta is the churn since the last report.
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	p.logger.Info("profiler",
		"fps", fps,
		"frameMs", p.FrameMs(),
		"heapMB", allocMB,
		"allocRateMBs", allocRateMB,
		"gc", gcCount,
		"gcLastPauseUs", lastPauseUs,
		"gcMaxPauseUs", maxPauseUs,
		"sysMB", sysMB,
	)

	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
