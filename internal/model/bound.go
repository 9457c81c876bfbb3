package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBound parses a "min-max" token. Both values must be positive and max must not
// exceed MaxWordLen. An inverted range is accepted and simply matches nothing.
func ParseBound(token string) (Bound, error) {
	minPart, maxPart, ok := strings.Cut(token, "-")
	if !ok {
		return Bound{}, fmt.Errorf("invalid length range %q: expected min-max", token)
	}
	lo, err := strconv.Atoi(minPart)
	if err != nil {
		return Bound{}, fmt.Errorf("invalid length range %q: bad minimum", token)
	}
	hi, err := strconv.Atoi(maxPart)
	if err != nil {
		return Bound{}, fmt.Errorf("invalid length range %q: bad maximum", token)
	}
	if lo <= 0 || hi <= 0 {
		return Bound{}, fmt.Errorf("invalid length range %q: lengths must be > 0", token)
	}
	if hi > MaxWordLen {
		return Bound{}, fmt.Errorf("invalid length range %q: maximum must be <= %d", token, MaxWordLen)
	}
	return Bound{Min: lo, Max: hi}, nil
}

// String formats the bound as "min-max".
func (b Bound) String() string {
	return fmt.Sprintf("%d-%d", b.Min, b.Max)
}
