package budget

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/symseq/symbol"
)

// frame is the state shared by a top-level Run and every Run nested in it.
type frame struct {
	op    string  // top-level operation name
	opts  Options // resolved configuration
	depth int     // current recursion depth
	st    Stats   // counters for this top-level call
}

// Run tracks the construction cost of one algorithm call.
// A Run is not safe for concurrent use; algorithms are synchronous.
type Run struct {
	*frame
	nested bool // joined an enclosing Run; Finish does not log or record
}

// Start opens a Run for operation op. If opts contain Within(parent), the
// returned Run shares parent's state and ignores every other option.
// Returns ErrOptionViolation for invalid options.
func Start(op string, opts ...Option) (*Run, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%s: %w", op, o.err)
	}
	if o.parent != nil {
		return &Run{frame: o.parent.frame, nested: true}, nil
	}

	return &Run{frame: &frame{op: op, opts: o}}, nil
}

// Limits returns the thresholds in effect for this Run.
func (r *Run) Limits() Limits { return r.opts.Limits }

// Depth returns the current recursion depth.
func (r *Run) Depth() int { return r.depth }

// Stats returns the counters collected so far.
func (r *Run) Stats() Stats { return r.st }

// Enter opens one recursion frame. It returns ErrDepthExceeded, leaving the
// depth unchanged, if the frame would pass Limits.MaxDepth. Every successful
// Enter must be paired with Leave.
func (r *Run) Enter() error {
	next := r.depth + 1
	if limit := r.opts.Limits.MaxDepth; limit > 0 && next > limit {
		return fmt.Errorf("%s: %w (limit %d)", r.op, ErrDepthExceeded, limit)
	}
	r.depth = next
	r.st.Nodes++
	if next > r.st.MaxDepth {
		r.st.MaxDepth = next
	}

	return nil
}

// Leave closes the frame opened by the matching Enter.
func (r *Run) Leave() {
	if r.depth > 0 {
		r.depth--
	}
}

// Same consults the equality oracle and counts the comparison.
func (r *Run) Same(a, b symbol.Symbol) bool {
	r.st.Comparisons++

	return symbol.IsSame(a, b)
}

// Call counts one invocation of a caller-supplied function.
func (r *Run) Call() { r.st.Calls++ }

// Finish ends a top-level Run: it records the counters into the Meter, logs
// one summary entry and returns err unchanged. On a nested Run it only
// returns err.
func (r *Run) Finish(in, out int, err error) error {
	if r.nested {
		return err
	}
	if r.opts.Meter != nil {
		r.opts.Meter.record(r.st)
	}
	if err != nil {
		r.opts.Logger.Warn("sequence construction aborted",
			zap.String("op", r.op),
			zap.Int("in", in),
			zap.Int("depth", r.st.MaxDepth),
			zap.Error(err),
		)

		return err
	}
	r.opts.Logger.Debug("sequence constructed",
		zap.String("op", r.op),
		zap.Int("in", in),
		zap.Int("out", out),
		zap.Int("depth", r.st.MaxDepth),
		zap.Int64("comparisons", r.st.Comparisons),
		zap.Int64("calls", r.st.Calls),
		zap.Int64("nodes", r.st.Nodes),
	)

	return nil
}
