// Package pipeline provides the stage plumbing and the value types that flow
// between syncwall's rendering stages.
package pipeline

import (
	"context"
)

// Stage is one step of a render: gradient, waveform, text or layout.
// Stages keep no state between calls.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc lets a plain function stand in for a Stage.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute calls f.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}
