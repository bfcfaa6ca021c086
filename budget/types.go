package budget

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Sentinel errors for budget configuration and enforcement.
var (
	// ErrOptionViolation indicates an Option received a meaningless value.
	ErrOptionViolation = errors.New("budget: invalid option supplied")

	// ErrBadLimits indicates a Limits value failed validation.
	ErrBadLimits = errors.New("budget: invalid limits")

	// ErrDepthExceeded indicates construction recursed past Limits.MaxDepth.
	ErrDepthExceeded = errors.New("budget: recursion depth exceeded")
)

// Stats is a snapshot of construction-cost counters.
type Stats struct {
	// Comparisons counts equality-oracle invocations.
	Comparisons int64

	// Calls counts invocations of caller-supplied functions
	// (predicates, transforms, comparators, subtype relations).
	Calls int64

	// Nodes counts recursion frames opened with Enter.
	Nodes int64

	// MaxDepth is the deepest recursion level reached.
	MaxDepth int

	// Runs counts finished top-level algorithm calls (Meter only).
	Runs int64
}

// Meter accumulates Stats across Runs. It is safe for concurrent use, so one
// Meter may be shared by callers running algorithms on several goroutines.
type Meter struct {
	mu sync.Mutex
	st Stats
}

// NewMeter returns an empty Meter.
func NewMeter() *Meter { return &Meter{} }

// Snapshot returns a copy of the accumulated counters.
func (m *Meter) Snapshot() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.st
}

// Reset clears the accumulated counters.
func (m *Meter) Reset() {
	m.mu.Lock()
	m.st = Stats{}
	m.mu.Unlock()
}

// record folds one Run's counters into m.
func (m *Meter) record(st Stats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st.Comparisons += st.Comparisons
	m.st.Calls += st.Calls
	m.st.Nodes += st.Nodes
	if st.MaxDepth > m.st.MaxDepth {
		m.st.MaxDepth = st.MaxDepth
	}
	m.st.Runs++
}

// Option configures a Run.
type Option func(*Options)

// Options holds the resolved configuration of a Run.
type Options struct {
	// Limits are the dispatch thresholds and depth cap.
	Limits Limits

	// Meter, if non-nil, receives the Run's counters on Finish.
	Meter *Meter

	// Logger receives one entry per finished top-level Run.
	Logger *zap.Logger

	// parent, if non-nil, makes Start join an enclosing Run.
	parent *Run

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns default Limits, no Meter and a no-op Logger.
func DefaultOptions() Options {
	return Options{
		Limits: DefaultLimits(),
		Meter:  nil,
		Logger: zap.NewNop(),
	}
}

// WithLimits replaces every threshold. Invalid limits surface as
// ErrOptionViolation from the algorithm call.
func WithLimits(l Limits) Option {
	return func(o *Options) {
		if err := l.Validate(); err != nil {
			o.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
			return
		}
		o.Limits = l
	}
}

// WithMaxDepth caps recursion depth; 0 disables the cap.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.Limits.MaxDepth = d
	}
}

// WithMeter accumulates the Run's counters into m.
func WithMeter(m *Meter) Option {
	return func(o *Options) {
		if m == nil {
			o.err = fmt.Errorf("%w: Meter is nil", ErrOptionViolation)
			return
		}
		o.Meter = m
	}
}

// WithLogger routes the Run's summary entry to l. A nil l keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Within makes the new Run share depth, counters and configuration with
// parent. A nil parent has no effect.
func Within(parent *Run) Option {
	return func(o *Options) {
		o.parent = parent
	}
}
