// Package summarizer provides summary generation for render results.
package summarizer

import "time"

// Summary contains all data collected during a render.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Track information
	Track TrackInfo

	// Render choices
	Render RenderInfo

	// Output details
	Output OutputInfo
}

// TrackInfo describes the song the wallpaper was made for.
type TrackInfo struct {
	Title  string
	Artist string
}

// RenderInfo contains the resolved render parameters.
type RenderInfo struct {
	Mode      string
	Variant   string // empty for non-gradient modes
	Primary   string // hex
	Secondary string // hex
	TextColor string // hex, empty when no text was drawn
}

// OutputInfo contains information about the written wallpaper.
type OutputInfo struct {
	Path      string
	Width     int
	Height    int
	FileSize  int64
	ElapsedMs int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithTrack sets track information.
func (b *Builder) WithTrack(title, artist string) *Builder {
	b.summary.Track = TrackInfo{
		Title:  title,
		Artist: artist,
	}
	return b
}

// WithRender sets the render choices.
func (b *Builder) WithRender(render RenderInfo) *Builder {
	b.summary.Render = render
	return b
}

// WithOutput sets output information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
