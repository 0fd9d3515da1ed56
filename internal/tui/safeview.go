package tui

import (
	"sync/atomic"

	"github.com/mbrandao/shipchat/internal/logger"
)

// fallbackView is shown when rendering panics. The failure is sticky for
// the rest of the session; there is no automatic recovery.
const fallbackView = "\n  Something went wrong rendering the interface.\n  Details were written to the diagnostics log.\n\n  Press Ctrl+C to quit.\n"

// renderFailed records a render panic for the remainder of the session.
// It lives outside the model because bubbletea views are value receivers.
var renderFailed atomic.Bool

// safeRender runs a render function and converts a panic in it into the
// static fallback view, logging the failure for diagnostics.
func safeRender(renderFn func() string) (view string) {
	if renderFailed.Load() {
		return fallbackView
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Get().Error().Interface("panic", r).Msg("render failure")
			renderFailed.Store(true)
			view = fallbackView
		}
	}()

	return renderFn()
}

// resetRenderFailure clears the sticky failure state (used in tests).
func resetRenderFailure() {
	renderFailed.Store(false)
}
