// Package particle provides data structures and parsing functionality for
// the confetti effect configuration.
package particle

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Range is a closed description of a random interval.
// Min may be greater than Max; sampling then walks from Min towards Max,
// which lets a config say "start at -20 and scatter 30 upwards" as "[-20 -50]".
type Range struct {
	Min float64
	Max float64
}

// Fixed reports whether the range collapses to a single value.
func (r Range) Fixed() bool {
	return r.Min == r.Max
}

// Low returns the smaller bound.
func (r Range) Low() float64 {
	if r.Min < r.Max {
		return r.Min
	}
	return r.Max
}

// High returns the larger bound.
func (r Range) High() float64 {
	if r.Min > r.Max {
		return r.Min
	}
	return r.Max
}

// Sample returns Min + u*(Max-Min) for u drawn uniformly from [0, 1).
// The Max end is never produced unless the range is fixed.
func (r Range) Sample(rng *rand.Rand) float64 {
	if r.Fixed() {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// String formats the range in config syntax.
func (r Range) String() string {
	if r.Fixed() {
		return strconv.FormatFloat(r.Min, 'g', -1, 64)
	}
	return fmt.Sprintf("[%s %s]",
		strconv.FormatFloat(r.Min, 'g', -1, 64),
		strconv.FormatFloat(r.Max, 'g', -1, 64))
}

// ParseRange parses a value string from the effect configuration.
// Supports:
//   - Fixed value: "1500" → Range{1500, 1500}
//   - Range: "[0.7 0.9]" → Range{0.7, 0.9}
//   - Single bracketed value: "[3]" → Range{3, 3}
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, fmt.Errorf("empty range value")
	}

	if strings.HasPrefix(s, "[") || strings.HasSuffix(s, "]") {
		if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
			return Range{}, fmt.Errorf("unbalanced brackets in %q", s)
		}
		parts := strings.Fields(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]"))
		switch len(parts) {
		case 1:
			v, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range value %q: %w", s, err)
			}
			return Range{Min: v, Max: v}, nil
		case 2:
			lo, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range min in %q: %w", s, err)
			}
			hi, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range max in %q: %w", s, err)
			}
			return Range{Min: lo, Max: hi}, nil
		default:
			return Range{}, fmt.Errorf("range %q must have one or two values", s)
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Range{}, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return Range{Min: v, Max: v}, nil
}

// MustParseRange is ParseRange for compile-time constants; it panics on error.
func MustParseRange(s string) Range {
	r, err := ParseRange(s)
	if err != nil {
		panic(fmt.Sprintf("particle: %v", err))
	}
	return r
}
