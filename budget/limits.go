package budget

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Default thresholds.
const (
	DefaultMapChunk      = 150
	DefaultFilterChunk   = 5
	DefaultLeafChunk     = 8
	DefaultReverseUnroll = 8
	DefaultRepeatUnroll  = 8
)

// Limits holds the two-tier dispatch thresholds and the recursion cap.
type Limits struct {
	// MapChunk is the largest sequence Map processes without splitting.
	MapChunk int `yaml:"map_chunk"`

	// FilterChunk is the exclusive upper bound for the enumerated filter tier.
	FilterChunk int `yaml:"filter_chunk"`

	// LeafChunk is the leaf size for EraseAll and NoDuplicates.
	LeafChunk int `yaml:"leaf_chunk"`

	// ReverseUnroll is the largest sequence Reverse handles directly.
	ReverseUnroll int `yaml:"reverse_unroll"`

	// RepeatUnroll is the largest count Repeat handles directly.
	RepeatUnroll int `yaml:"repeat_unroll"`

	// MaxDepth caps recursion depth; 0 means unlimited.
	MaxDepth int `yaml:"max_depth"`
}

// DefaultLimits returns the built-in thresholds with no depth cap.
func DefaultLimits() Limits {
	return Limits{
		MapChunk:      DefaultMapChunk,
		FilterChunk:   DefaultFilterChunk,
		LeafChunk:     DefaultLeafChunk,
		ReverseUnroll: DefaultReverseUnroll,
		RepeatUnroll:  DefaultRepeatUnroll,
		MaxDepth:      0,
	}
}

// Validate reports ErrBadLimits if a chunk threshold is not positive or
// MaxDepth is negative.
func (l Limits) Validate() error {
	checks := []struct {
		name string
		v    int
	}{
		{"map_chunk", l.MapChunk},
		{"filter_chunk", l.FilterChunk},
		{"leaf_chunk", l.LeafChunk},
		{"reverse_unroll", l.ReverseUnroll},
		{"repeat_unroll", l.RepeatUnroll},
	}
	for _, c := range checks {
		if c.v < 1 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrBadLimits, c.name, c.v)
		}
	}
	if l.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth cannot be negative, got %d", ErrBadLimits, l.MaxDepth)
	}

	return nil
}

// ParseLimits decodes YAML into Limits. Keys that are absent keep their
// defaults; unknown keys are rejected.
func ParseLimits(data []byte) (Limits, error) {
	l := DefaultLimits()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil && !errors.Is(err, io.EOF) {
		return Limits{}, fmt.Errorf("%w: %v", ErrBadLimits, err)
	}
	if err := l.Validate(); err != nil {
		return Limits{}, err
	}

	return l, nil
}

// LoadLimits reads and parses a YAML limits file.
func LoadLimits(path string) (Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Limits{}, fmt.Errorf("budget: read limits %q: %w", path, err)
	}

	return ParseLimits(data)
}
