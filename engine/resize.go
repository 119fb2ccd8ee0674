package engine

import (
	"github.com/Carmen-Shannon/oxy-demo/common"
)

// handleResizeBatch coalesces a batch of observations to the most recent one with a usable size.
// Batches made only of zero-sized observations change nothing.
func (e *engine) handleResizeBatch(batch []ResizeObservation) {
	for i := len(batch) - 1; i >= 0; i-- {
		if size := batch[i].Size(); !size.Empty() {
			e.resize(size)
			return
		}
	}
}

// resize stores size, recomputes the projection and, once the device exists, reconfigures the
// surface, reallocates render targets and notifies the App. Zero-sized requests are ignored.
func (e *engine) resize(size common.Size) {
	if size.Empty() {
		return
	}

	e.size = size
	e.updateProjection()

	if e.device == nil {
		return
	}

	if e.surfaceCtx != nil {
		if err := e.surfaceCtx.Configure(e.device, e.surfaceConfig(e.colorFormat, size)); err != nil {
			e.logger.Error("surface configure failed", "size", size.String(), "error", err)
		}
	}

	if err := e.allocateRenderTargets(size); err != nil {
		e.logger.Error("render target allocation failed", "size", size.String(), "error", err)
	}

	e.app.OnResize(e.device, size)
}
