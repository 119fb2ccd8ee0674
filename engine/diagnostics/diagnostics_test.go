package diagnostics

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"
)

func TestBannerText(t *testing.T) {
	tests := []struct {
		name    string
		context string
		title   string
	}{
		{"with context", "initializing WebGPU", "An error occurred while initializing WebGPU:"},
		{"without context", "", "An error occurred:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, detail := BannerText(errors.New("no adapter"), tt.context)
			if title != tt.title {
				t.Errorf("title = %q, want %q", title, tt.title)
			}
			if detail != "no adapter" {
				t.Errorf("detail = %q, want %q", detail, "no adapter")
			}
		})
	}
}

func TestLogBanner(t *testing.T) {
	var buf bytes.Buffer
	b := NewLogBanner(slog.New(slog.NewTextHandler(&buf, nil)))

	if _, _, ok := b.Current(); ok {
		t.Fatal("new banner should not be visible")
	}
	b.Show("first", "one")
	b.Show("second", "two")
	title, detail, ok := b.Current()
	if !ok || title != "second" || detail != "two" {
		t.Errorf("Current() = %q, %q, %v; want second, two, true", title, detail, ok)
	}
	if !strings.Contains(buf.String(), "level=ERROR") {
		t.Errorf("banner not logged at error level: %q", buf.String())
	}

	b.Clear()
	if _, _, ok := b.Current(); ok {
		t.Error("banner still visible after Clear")
	}
	b.Clear()
}

func TestSparkline(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		min    float64
		max    float64
		want   string
	}{
		{"range", []float64{0, 1, 2}, 0, 2, "▁▅█"},
		{"clamped", []float64{-1, 5}, 0, 2, "▁█"},
		{"nan", []float64{math.NaN()}, 0, 2, " "},
		{"flat range", []float64{3, 4}, 1, 1, "▁▁"},
		{"empty", nil, 0, 2, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sparkline(tt.values, tt.min, tt.max); got != tt.want {
				t.Errorf("Sparkline() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGraphMonitorHistory(t *testing.T) {
	now := time.Unix(0, 0)
	m := NewGraphMonitor(
		WithHistoryLength(3),
		WithMonitorClock(func() time.Time { return now }),
	)
	v := 0.0
	m.AddGraph("frameMs", 0, 2, func() float64 { v++; return v })
	m.AddGraph("ignored", 0, 1, nil)

	for i := 0; i < 5; i++ {
		m.Tick()
	}
	got := m.History("frameMs")
	want := []float64{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("History() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("History()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if m.History("ignored") != nil {
		t.Error("graph with nil sampler should not be registered")
	}
}

func TestGraphMonitorLogsAtInterval(t *testing.T) {
	var buf bytes.Buffer
	now := time.Unix(0, 0)
	m := NewGraphMonitor(
		WithLogInterval(time.Second),
		WithMonitorLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		WithMonitorClock(func() time.Time { return now }),
	)
	m.AddGraph("frameMs", 0, 2, func() float64 { return 1 })

	if m.Tick() {
		t.Fatal("Tick() logged before the interval elapsed")
	}
	now = now.Add(time.Second)
	if !m.Tick() {
		t.Fatal("Tick() did not log after the interval elapsed")
	}
	if !strings.Contains(buf.String(), "graph=frameMs") {
		t.Errorf("log output %q missing graph name", buf.String())
	}
}
