package ports

import "errors"

// Render failures are reported by wrapping one of these sentinels.
// Callers classify them with errors.Is.
var (
	// ErrMissingAsset means a required input (cover, colors, font, icon,
	// loudness data) was unavailable. Nothing is written.
	ErrMissingAsset = errors.New("missing asset")

	// ErrDegenerateInput means an input was unusable even after fallbacks.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrNoContent means the mode had nothing to show, e.g. no lyrics found.
	ErrNoContent = errors.New("no content")

	// ErrIOFailure means the wallpaper could not be persisted.
	ErrIOFailure = errors.New("io failure")
)
