package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNodeNotFound is returned when start or finish lies outside the grid.
	ErrNodeNotFound = errors.New("search: node not found in grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNilRelax is returned when Run is called without a relaxation rule.
	ErrNilRelax = errors.New("search: relax function is nil")

	// ErrNoPath is returned by PathTo when the target was never visited.
	ErrNoPath = errors.New("search: target node was not reached")
)

// Relax computes the key written into an unvisited neighbor of the node
// being expanded. current is the expanded node's key.
type Relax func(g *grid.Grid, current float64, neighbor int) float64

// Termination records why a run stopped.
type Termination int

const (
	// Exhausted means the unvisited set ran empty without reaching finish.
	Exhausted Termination = iota
	// ReachedFinish means the finish node was visited.
	ReachedFinish
	// Unreachable means the closest remaining node sat at infinite distance.
	Unreachable
	// Canceled means the context was done before the run completed.
	Canceled
	// StepLimit means MaxSteps iterations were spent.
	StepLimit
	// Aborted means the OnVisit hook returned an error.
	Aborted
)

var terminationNames = [...]string{"exhausted", "reached-finish", "unreachable", "canceled", "step-limit", "aborted"}

// String returns a short name for the termination reason.
func (t Termination) String() string {
	if t < 0 || int(t) >= len(terminationNames) {
		return fmt.Sprintf("termination(%d)", int(t))
	}
	return terminationNames[t]
}

// Option configures a run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a run.
type Options struct {
	// Ctx allows cancellation between iterations.
	Ctx context.Context

	// OnVisit is called right after a node is finalized. Returning an error
	// aborts the run; the partial Result is returned with the wrapped error.
	OnVisit func(index int, distance float64) error

	// Logger receives Debug records about the run. Nil means discard.
	Logger *slog.Logger

	// MaxSteps, if > 0, caps the number of loop iterations (pops).
	MaxSteps int

	err error
}

// DefaultOptions returns Options with a background context, a no-op
// OnVisit hook, a discarding logger and no step limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(int, float64) error { return nil },
		Logger:   slog.New(slog.DiscardHandler),
		MaxSteps: 0,
	}
}

// WithContext sets a context checked once per iteration.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run for each finalized node.
func WithOnVisit(fn func(index int, distance float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithLogger routes Debug records about the run to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithMaxSteps stops the run after n iterations.
//
//	n > 0:  limit to n pops
//	n == 0: no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}
