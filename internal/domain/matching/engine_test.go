package matching

import (
	"strings"
	"testing"
)

func strongCandidate() CandidateProfile {
	return CandidateProfile{
		Skills:          []string{"Go", "PostgreSQL", "Docker"},
		ExperienceLevel: LevelAdvanced,
		Timezone:        "UTC+7",
		WorkingHours:    &WorkingHours{Start: "09:00", End: "18:00"},
	}
}

func openTeam() TeamProfile {
	return TeamProfile{MemberCount: 3, MaxMembers: 5}
}

func strictPreferences() TeamPreferences {
	p := DefaultPreferences()
	p.RequiredSkills = []string{"Go", "PostgreSQL"}
	p.PreferredSkills = []string{"Docker"}
	p.MinExperience = LevelIntermediate
	p.MaxExperience = LevelExpert
	p.PreferredTimezones = []string{"UTC+7"}
	p.LocationFlexible = false
	p.WorkingHours = &WorkingHours{Start: "09:00", End: "18:00"}
	return p
}

func TestCalculate_StrongMatch(t *testing.T) {
	res := Calculate(strongCandidate(), openTeam(), strictPreferences())

	if !almostEqual(res.SkillScore, 0.9) {
		t.Fatalf("skill: expected 0.9, got %v", res.SkillScore)
	}
	if !almostEqual(res.ExperienceScore, 1.0) {
		t.Fatalf("experience: expected 1.0, got %v", res.ExperienceScore)
	}
	if !almostEqual(res.LocationScore, 1.0) {
		t.Fatalf("location: expected 1.0, got %v", res.LocationScore)
	}
	if !almostEqual(res.AvailabilityScore, 1.0) {
		t.Fatalf("availability: expected 1.0, got %v", res.AvailabilityScore)
	}
	if !almostEqual(res.TeamSizeScore, 1.0) {
		t.Fatalf("team size: expected 1.0, got %v", res.TeamSizeScore)
	}

	// 0.9*0.4 + 1*0.2 + 1*0.1 + 1*0.2 + 1*0.1 = 0.96
	if !almostEqual(res.OverallScore, 0.96) {
		t.Fatalf("overall: expected 0.96, got %v", res.OverallScore)
	}
	if !almostEqual(res.Confidence, 1.0) {
		t.Fatalf("confidence: expected 1.0, got %v", res.Confidence)
	}
	if !strings.Contains(res.Explanation, "96%") {
		t.Fatalf("explanation should carry the percentage, got %q", res.Explanation)
	}
	if len(res.SynergyReasons) == 0 {
		t.Fatalf("expected synergy reasons for a strong match")
	}
	if len(res.Strengths) == 0 {
		t.Fatalf("expected strengths for a strong match")
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	a := Calculate(strongCandidate(), openTeam(), strictPreferences())
	b := Calculate(strongCandidate(), openTeam(), strictPreferences())
	if a.OverallScore != b.OverallScore || a.Explanation != b.Explanation {
		t.Fatalf("expected identical results for identical inputs")
	}
}

func TestCalculate_DimensionScoresStayInRange(t *testing.T) {
	profiles := []CandidateProfile{
		{},
		strongCandidate(),
		{Skills: []string{"x"}, ExperienceLevel: "unknown", Timezone: "??", WorkingHours: &WorkingHours{Start: "bad", End: "worse"}},
	}
	teams := []TeamProfile{{}, openTeam(), {MemberCount: 9, MaxMembers: 4}}
	prefSets := []TeamPreferences{DefaultPreferences(), strictPreferences(), {}}

	for _, c := range profiles {
		for _, tm := range teams {
			for _, p := range prefSets {
				res := Calculate(c, tm, p)
				for name, s := range map[string]float64{
					"skill":        res.SkillScore,
					"experience":   res.ExperienceScore,
					"location":     res.LocationScore,
					"availability": res.AvailabilityScore,
					"teamSize":     res.TeamSizeScore,
					"overall":      res.OverallScore,
					"confidence":   res.Confidence,
				} {
					if s < 0 || s > 1 {
						t.Fatalf("%s score out of range: %v", name, s)
					}
				}
			}
		}
	}
}

// The five weights are not renormalized; custom preference weights can push
// the raw sum past 1 and only the final clamp catches it. Pinned on purpose.
func TestAggregate_WeightSumQuirkIsPreserved(t *testing.T) {
	p := DefaultPreferences()
	p.SkillWeight = 1.0
	p.ExperienceWeight = 1.0
	p.LocationWeight = 1.0

	res := Aggregate(DimensionScores{Skill: 1, Experience: 1, Location: 1, Availability: 1, TeamSize: 1}, SkillResult{}, p)
	if !almostEqual(res.OverallScore, 1.0) {
		t.Fatalf("expected clamp to 1.0, got %v", res.OverallScore)
	}

	// under-weighted totals deflate silently
	p.SkillWeight, p.ExperienceWeight, p.LocationWeight = 0, 0, 0
	res = Aggregate(DimensionScores{Skill: 1, Experience: 1, Location: 1, Availability: 1, TeamSize: 1}, SkillResult{}, p)
	if !almostEqual(res.OverallScore, 0.3) {
		t.Fatalf("expected 0.3 from fixed weights only, got %v", res.OverallScore)
	}
}

func TestAggregate_NarrativeThresholds(t *testing.T) {
	dims := DimensionScores{Skill: 0.5, Experience: 0.5, Location: 0.3, Availability: 0.5, TeamSize: 0.2}
	skills := SkillResult{Score: 0.5, MissingSkills: []string{"go", "rust"}}
	res := Aggregate(dims, skills, DefaultPreferences())

	if len(res.SynergyReasons) != 0 {
		t.Fatalf("expected no synergy below thresholds, got %v", res.SynergyReasons)
	}
	if len(res.Weaknesses) != 4 {
		t.Fatalf("expected 4 weaknesses (skills, experience, location, team size), got %v", res.Weaknesses)
	}
	if !strings.Contains(res.Weaknesses[0], "2") {
		t.Fatalf("missing-skill weakness should carry the count, got %q", res.Weaknesses[0])
	}
}
