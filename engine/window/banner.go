package window

import "github.com/Carmen-Shannon/oxy-demo/engine/diagnostics"

// titleBanner shows errors in the window title and logs the full text.
type titleBanner struct {
	window *engineWindow
}

var _ diagnostics.ErrorBanner = &titleBanner{}

func (b *titleBanner) Show(title, detail string) {
	w := b.window
	w.logger.Error(title, "detail", detail)

	w.mu.Lock()
	w.bannerText = title + " " + detail
	w.mu.Unlock()
	w.refreshTitle()
}

func (b *titleBanner) Clear() {
	w := b.window
	w.mu.Lock()
	changed := w.bannerText != ""
	w.bannerText = ""
	w.mu.Unlock()
	if changed {
		w.refreshTitle()
	}
}
