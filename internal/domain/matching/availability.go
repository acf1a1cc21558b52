package matching

import (
	"strconv"
	"strings"
)

const (
	defaultWorkStart = "09:00"
	defaultWorkEnd   = "18:00"

	// Four hours of shared working time is treated as a full workday overlap.
	fullOverlapMinutes = 240
)

// ScoreAvailability rates working-hours overlap between candidate and team.
// A side with no working hours at all is neutral (0.7) rather than a hard
// requirement; malformed time strings degrade to 0.5.
func ScoreAvailability(candidate, team *WorkingHours) float64 {
	if candidate == nil || team == nil {
		return 0.7
	}

	cStart, err := minutesOfDay(candidate.Start, defaultWorkStart)
	if err != nil {
		return 0.5
	}
	cEnd, err := minutesOfDay(candidate.End, defaultWorkEnd)
	if err != nil {
		return 0.5
	}
	tStart, err := minutesOfDay(team.Start, defaultWorkStart)
	if err != nil {
		return 0.5
	}
	tEnd, err := minutesOfDay(team.End, defaultWorkEnd)
	if err != nil {
		return 0.5
	}

	overlap := minInt(cEnd, tEnd) - maxInt(cStart, tStart)
	if overlap < 0 {
		overlap = 0
	}
	union := maxInt(cEnd, tEnd) - minInt(cStart, tStart)

	ratio := 0.0
	if union > 0 {
		ratio = float64(overlap) / float64(union)
	}

	if overlap >= fullOverlapMinutes {
		s := 0.8 + 0.2*ratio
		if s > 1 {
			return 1
		}
		return s
	}
	return float64(overlap) / fullOverlapMinutes * 0.8
}

func minutesOfDay(hhmm, fallback string) (int, error) {
	s := strings.TrimSpace(hhmm)
	if s == "" {
		s = fallback
	}
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, errBadClock(s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, errBadClock(s)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, errBadClock(s)
	}
	return hours*60 + minutes, nil
}

type errBadClock string

func (e errBadClock) Error() string { return "malformed clock time: " + string(e) }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
