package sysutil

import "time"

// DefaultWatchDebounce is the default debounce interval for save
// directory watch events.
const DefaultWatchDebounce = 500 * time.Millisecond

// Options configures a System instance.
type Options struct {
	// Logger receives trace/warn/error messages from the adapter.
	// If nil, DefaultLogger() is used. Use NopLogger() to disable
	// logging entirely.
	Logger Logger

	// WatchDebounce sets the debounce interval for save-directory watch
	// events. Multiple rapid filesystem events within this window
	// trigger only a single callback. Zero means DefaultWatchDebounce.
	WatchDebounce time.Duration
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Logger:        DefaultLogger(),
		WatchDebounce: DefaultWatchDebounce,
	}
}
