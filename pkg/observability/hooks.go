// Package observability provides hooks for instrumenting figure rendering.
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for render events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// This keeps the plotting library free of logging or metrics dependencies
// while letting the CLI (or an embedding application) observe what is being
// rendered. Register hooks at application startup:
//
//	observability.SetRenderHooks(&myHooks{})
//
// The plotter emits the events:
//
//	observability.Render().OnFigure(style, size, width, height)
//	observability.Render().OnSave(path, format, dpi, duration, err)
package observability

import (
	"sync"
	"time"
)

// RenderHooks receives events from figure creation and saving.
type RenderHooks interface {
	// OnFigure is called when a new drawing surface is created.
	// Width and height are in inches.
	OnFigure(style, size string, width, height float64)

	// OnSave is called after a save attempt, successful or not.
	OnSave(path, format string, dpi int, duration time.Duration, err error)
}

// NopRenderHooks is a no-op implementation of RenderHooks.
type NopRenderHooks struct{}

func (NopRenderHooks) OnFigure(style, size string, width, height float64)               {}
func (NopRenderHooks) OnSave(path, format string, dpi int, d time.Duration, err error) {}

var (
	mu          sync.RWMutex
	renderHooks RenderHooks = NopRenderHooks{}
)

// SetRenderHooks registers the hooks implementation. Passing nil restores
// the no-op default. Intended to be called once at startup, before any
// rendering happens.
func SetRenderHooks(h RenderHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NopRenderHooks{}
	}
	renderHooks = h
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	mu.RLock()
	defer mu.RUnlock()
	return renderHooks
}
