package utils

import "strconv"

const (
	// MaxLimit is the largest accepted limit value
	MaxLimit = 100
	// DefaultWindowSize is the window used when an offset is given
	// without an accepted limit
	DefaultWindowSize = 10
)

// ListWindow describes the slice of an ordered listing to return
type ListWindow struct {
	Limit  int // accepted limit, 0 when none was accepted
	Offset int // accepted offset, -1 when none was accepted
}

// ParseListWindow interprets raw limit/offset query values. A limit is
// honored only when it parses to an integer in (0, MaxLimit]; out-of-range
// or unparseable values are ignored outright, never clamped. An offset is
// honored when it parses to a non-negative integer.
func ParseListWindow(limitRaw, offsetRaw string) ListWindow {
	w := ListWindow{Offset: -1}

	if limitRaw != "" {
		if n, err := strconv.Atoi(limitRaw); err == nil && n > 0 && n <= MaxLimit {
			w.Limit = n
		}
	}
	if offsetRaw != "" {
		if n, err := strconv.Atoi(offsetRaw); err == nil && n >= 0 {
			w.Offset = n
		}
	}
	return w
}

// Size returns the number of rows the window spans, 0 meaning unbounded.
// An offset without a limit falls back to DefaultWindowSize rows.
func (w ListWindow) Size() int {
	if w.Limit > 0 {
		return w.Limit
	}
	if w.Offset >= 0 {
		return DefaultWindowSize
	}
	return 0
}

// Start returns the first row index of the window
func (w ListWindow) Start() int {
	if w.Offset > 0 {
		return w.Offset
	}
	return 0
}
