package engine

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-demo/common"
)

func TestFrameQueueDefersNestedRequests(t *testing.T) {
	var q FrameQueue
	var ran []float64
	var loop FrameCallback
	loop = func(ts float64) {
		q.RequestFrame(loop)
		ran = append(ran, ts)
	}
	q.RequestFrame(loop)
	q.RequestFrame(nil)

	if n := q.RunDue(16); n != 1 {
		t.Fatalf("RunDue() ran %d callbacks, want 1", n)
	}
	if q.Pending() != 1 {
		t.Fatalf("Pending() = %d, want the re-armed callback", q.Pending())
	}
	q.RunDue(32)
	if len(ran) != 2 || ran[0] != 16 || ran[1] != 32 {
		t.Errorf("timestamps = %v, want [16 32]", ran)
	}
}

func TestResizeQueueBatches(t *testing.T) {
	var q ResizeQueue
	var batches [][]ResizeObservation
	stop := q.ObserveResize(func(b []ResizeObservation) { batches = append(batches, b) })

	if q.Flush() != 0 || len(batches) != 0 {
		t.Fatal("empty flush delivered a batch")
	}

	q.Push(ResizeObservation{ContentRect: common.Size{Width: 1, Height: 1}})
	q.Push(ResizeObservation{ContentRect: common.Size{Width: 2, Height: 2}})
	if n := q.Flush(); n != 2 {
		t.Fatalf("Flush() = %d, want 2", n)
	}
	if len(batches) != 1 || len(batches[0]) != 2 || batches[0][1].Size().Width != 2 {
		t.Fatalf("batches = %v", batches)
	}

	stop()
	stop()
	q.Push(ResizeObservation{ContentRect: common.Size{Width: 3, Height: 3}})
	q.Flush()
	if len(batches) != 1 {
		t.Error("stopped observer still received a batch")
	}
}
