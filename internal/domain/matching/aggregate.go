package matching

import (
	"fmt"
	"strings"
)

// DimensionScores groups the five independent sub-scores prior to weighting.
type DimensionScores struct {
	Skill        float64
	Experience   float64
	Location     float64
	Availability float64
	TeamSize     float64
}

// Availability and team size carry fixed weights; the other three come from
// the team's preferences. The five weights are not renormalized: with default
// preferences they sum to 1.0, but custom weights can push the raw total
// outside [0,1], which only the final clamp corrects. That mirrors how team
// leads have always tuned these knobs and is pinned by tests.
const (
	availabilityWeight = 0.2
	teamSizeWeight     = 0.1
)

// Aggregate folds the dimension scores into an overall score, a confidence
// value, and the qualitative explanation strings.
func Aggregate(dims DimensionScores, skills SkillResult, prefs TeamPreferences) MatchResult {
	overall := dims.Skill*prefs.SkillWeight +
		dims.Experience*prefs.ExperienceWeight +
		dims.Location*prefs.LocationWeight +
		dims.Availability*availabilityWeight +
		dims.TeamSize*teamSizeWeight
	if overall < 0 {
		overall = 0
	}
	if overall > 1 {
		overall = 1
	}

	confidence := overall + 0.1
	if confidence > 1 {
		confidence = 1
	}

	synergy := synergyReasons(dims, skills)

	res := MatchResult{
		SkillScore:        dims.Skill,
		ExperienceScore:   dims.Experience,
		LocationScore:     dims.Location,
		AvailabilityScore: dims.Availability,
		TeamSizeScore:     dims.TeamSize,

		OverallScore: overall,
		Confidence:   confidence,

		MatchingSkills:      skills.MatchingSkills,
		MissingSkills:       skills.MissingSkills,
		ComplementarySkills: skills.ComplementarySkills,

		SynergyReasons: synergy,
		Strengths:      strengths(dims),
		Weaknesses:     weaknesses(dims, skills),

		Explanation: explanation(overall, synergy),
	}
	return res
}

func synergyReasons(dims DimensionScores, skills SkillResult) []string {
	reasons := make([]string, 0, 5)
	if dims.Skill > 0.8 {
		reasons = append(reasons, "skills highly compatible with the team's needs")
	}
	if dims.Experience > 0.8 {
		reasons = append(reasons, "experience level suits the team")
	}
	if dims.Location > 0.8 {
		reasons = append(reasons, "timezone/location compatible")
	}
	if dims.Availability > 0.8 {
		reasons = append(reasons, "high working-hours overlap")
	}
	if n := len(skills.ComplementarySkills); n > 0 {
		reasons = append(reasons, fmt.Sprintf("brings %d complementary skill(s) the team did not ask for", n))
	}
	return reasons
}

func strengths(dims DimensionScores) []string {
	out := make([]string, 0, 2)
	if dims.Skill > 0.7 {
		out = append(out, "strong skill coverage")
	}
	if dims.Experience > 0.7 {
		out = append(out, "experience fits the accepted range")
	}
	return out
}

func weaknesses(dims DimensionScores, skills SkillResult) []string {
	out := make([]string, 0, 4)
	if dims.Skill <= 0.7 && len(skills.MissingSkills) > 0 {
		out = append(out, fmt.Sprintf("missing %d required skill(s)", len(skills.MissingSkills)))
	}
	if dims.Experience <= 0.7 {
		out = append(out, "experience outside the team's accepted range")
	}
	if dims.Location < 0.5 {
		out = append(out, "large timezone gap")
	}
	if dims.TeamSize < 0.5 {
		out = append(out, "team size poorly suited to one more member")
	}
	return out
}

func explanation(overall float64, synergy []string) string {
	pct := int(overall*100 + 0.5)
	if len(synergy) == 0 {
		return fmt.Sprintf("Overall compatibility %d%%.", pct)
	}
	return fmt.Sprintf("Overall compatibility %d%%: %s.", pct, strings.Join(synergy, "; "))
}
