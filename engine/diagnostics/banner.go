package diagnostics

import (
	"log/slog"
	"sync"

	"github.com/Carmen-Shannon/oxy-demo/common"
)

// ErrorBanner displays the most recent error to the user. Show replaces whatever banner is
// currently visible; Clear removes it.
type ErrorBanner interface {
	// Show displays a banner.
	//
	// Parameters:
	//   - title: the headline, e.g. "An error occurred while initializing WebGPU:"
	//   - detail: the error message
	Show(title, detail string)

	// Clear removes any visible banner. Clearing with nothing shown is a no-op.
	Clear()
}

// BannerText builds the title and detail shown for err. The "while" phrase is omitted when
// context is empty.
//
// Parameters:
//   - err: the error to describe, must be non-nil
//   - context: what was being attempted, e.g. "initializing WebGPU"
//
// Returns:
//   - string: the title line
//   - string: the detail line
func BannerText(err error, context string) (string, string) {
	title := "An error occurred:"
	if context != "" {
		title = "An error occurred while " + context + ":"
	}
	return title, err.Error()
}

// LogBanner is an ErrorBanner that writes banners to a structured logger at error level.
type LogBanner struct {
	mu      *sync.Mutex
	logger  *slog.Logger
	visible bool
	title   string
	detail  string
}

var _ ErrorBanner = &LogBanner{}

// NewLogBanner creates a LogBanner writing to logger, or to the shared logger when nil.
//
// Parameters:
//   - logger: destination logger, may be nil
//
// Returns:
//   - *LogBanner: the banner
func NewLogBanner(logger *slog.Logger) *LogBanner {
	return &LogBanner{
		mu:     &sync.Mutex{},
		logger: logger,
	}
}

func (b *LogBanner) log() *slog.Logger {
	if b.logger != nil {
		return b.logger
	}
	return common.Logger()
}

func (b *LogBanner) Show(title, detail string) {
	b.mu.Lock()
	b.visible = true
	b.title = title
	b.detail = detail
	b.mu.Unlock()

	b.log().Error(title, "error", detail)
}

func (b *LogBanner) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.visible = false
	b.title = ""
	b.detail = ""
}

// Current returns the banner being shown.
//
// Returns:
//   - string: title
//   - string: detail
//   - bool: false when no banner is visible
func (b *LogBanner) Current() (string, string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.title, b.detail, b.visible
}
