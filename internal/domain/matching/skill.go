package matching

import "strings"

type SkillResult struct {
	Score               float64
	MatchingSkills      []string
	MissingSkills       []string
	ComplementarySkills []string
}

// ScoreSkills compares a candidate's skills against a team's required and
// preferred sets. Matching is case- and spacing-insensitive. An empty
// required (or preferred) set yields full credit for that component so
// unconstrained teams are not penalized.
func ScoreSkills(candidate, required, preferred []string) SkillResult {
	candidateSet := normalizeSkillSet(candidate)
	requiredSet := normalizeSkillSet(required)
	preferredSet := normalizeSkillSet(preferred)

	matching := make([]string, 0, len(requiredSet.keys)+len(preferredSet.keys))
	missing := make([]string, 0)

	requiredHits := 0
	for _, s := range requiredSet.keys {
		if _, ok := candidateSet.index[s]; ok {
			requiredHits++
			matching = append(matching, s)
		} else {
			missing = append(missing, s)
		}
	}

	preferredHits := 0
	for _, s := range preferredSet.keys {
		if _, ok := candidateSet.index[s]; ok {
			preferredHits++
			matching = append(matching, s)
		}
	}

	requiredMatch := 1.0
	if len(requiredSet.keys) > 0 {
		requiredMatch = float64(requiredHits) / float64(len(requiredSet.keys))
	}
	preferredMatch := 1.0
	if len(preferredSet.keys) > 0 {
		preferredMatch = float64(preferredHits) / float64(len(preferredSet.keys))
	}

	complementary := make([]string, 0)
	for _, s := range candidateSet.keys {
		if _, ok := requiredSet.index[s]; ok {
			continue
		}
		if _, ok := preferredSet.index[s]; ok {
			continue
		}
		complementary = append(complementary, s)
	}

	bonus := 0.02 * float64(len(complementary))
	if bonus > 0.1 {
		bonus = 0.1
	}

	score := 0.7*requiredMatch + 0.2*preferredMatch + bonus
	if score > 1 {
		score = 1
	}

	// Missing more than half of the required skills halves the score.
	if len(requiredSet.keys) > 0 && len(missing)*2 > len(requiredSet.keys) {
		score /= 2
	}

	return SkillResult{
		Score:               score,
		MatchingSkills:      matching,
		MissingSkills:       missing,
		ComplementarySkills: complementary,
	}
}

type skillSet struct {
	keys  []string
	index map[string]struct{}
}

func normalizeSkillSet(skills []string) skillSet {
	set := skillSet{
		keys:  make([]string, 0, len(skills)),
		index: make(map[string]struct{}, len(skills)),
	}
	for _, raw := range skills {
		k := normalizeSkill(raw)
		if k == "" {
			continue
		}
		if _, ok := set.index[k]; ok {
			continue
		}
		set.index[k] = struct{}{}
		set.keys = append(set.keys, k)
	}
	return set
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
