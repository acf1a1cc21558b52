package matching

import "strings"

var experienceRank = map[string]int{
	LevelBeginner:     1,
	LevelIntermediate: 2,
	LevelAdvanced:     3,
	LevelExpert:       4,
}

// ScoreExperience rates the candidate's level against the team's accepted
// [min, max] range. Within range scores 1.0, one level below min is a
// tolerated near miss at 0.7, overqualification degrades with distance, and
// everything else bottoms out at 0.3.
func ScoreExperience(level, minLevel, maxLevel string) float64 {
	lvl := resolveLevel(level, 1)
	lo := resolveLevel(minLevel, 1)
	hi := resolveLevel(maxLevel, 4)

	switch {
	case lvl >= lo && lvl <= hi:
		return 1.0
	case lvl == lo-1:
		return 0.7
	case lvl > hi:
		over := float64(lvl - hi)
		s := 0.5 - 0.2*over
		if s < 0.1 {
			return 0.1
		}
		return s
	default:
		return 0.3
	}
}

func resolveLevel(label string, fallback int) int {
	if r, ok := experienceRank[strings.ToLower(strings.TrimSpace(label))]; ok {
		return r
	}
	return fallback
}
