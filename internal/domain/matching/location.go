package matching

import (
	"strconv"
	"strings"
)

// ScoreLocation rates timezone compatibility. Precedence: a location-flexible
// team short-circuits to 0.9, an unconstrained team to 0.8, a literal
// preferred-timezone hit to 1.0; otherwise the minimum whole-hour offset
// distance to any preferred zone maps to a distance bucket.
func ScoreLocation(timezone string, preferred []string, flexible bool) float64 {
	if flexible {
		return 0.9
	}
	if len(preferred) == 0 {
		return 0.8
	}

	tz := strings.TrimSpace(timezone)
	for _, p := range preferred {
		if strings.EqualFold(strings.TrimSpace(p), tz) {
			return 1.0
		}
	}

	offset := parseUTCOffset(tz)
	minDiff := -1
	for _, p := range preferred {
		d := absInt(offset - parseUTCOffset(p))
		if minDiff < 0 || d < minDiff {
			minDiff = d
		}
	}

	switch {
	case minDiff <= 2:
		return 0.8
	case minDiff <= 4:
		return 0.6
	case minDiff <= 8:
		return 0.4
	default:
		return 0.2
	}
}

// parseUTCOffset reads labels like "UTC+8", "UTC-05" or "GMT+7" into a
// whole-hour offset clamped to [-12, 12]. Unrecognized labels are UTC+0.
func parseUTCOffset(label string) int {
	s := strings.ToUpper(strings.TrimSpace(label))
	s = strings.TrimPrefix(s, "UTC")
	s = strings.TrimPrefix(s, "GMT")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	sign := 1
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		sign = -1
		s = s[1:]
	default:
		return 0
	}

	// "+5:30"-style labels count as their whole-hour part.
	if i := strings.IndexAny(s, ":."); i >= 0 {
		s = s[:i]
	}

	h, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	h *= sign
	if h < -12 {
		return -12
	}
	if h > 12 {
		return 12
	}
	return h
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
