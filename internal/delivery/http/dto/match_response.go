package dto

import "hackmate/internal/domain/matching"

type MatchResultResponse struct {
	SkillScore        float64 `json:"skill_score"`
	ExperienceScore   float64 `json:"experience_score"`
	LocationScore     float64 `json:"location_score"`
	AvailabilityScore float64 `json:"availability_score"`
	TeamSizeScore     float64 `json:"team_size_score"`

	OverallScore float64 `json:"overall_score"`
	Confidence   float64 `json:"confidence"`

	MatchingSkills      []string `json:"matching_skills"`
	MissingSkills       []string `json:"missing_skills"`
	ComplementarySkills []string `json:"complementary_skills"`

	SynergyReasons []string `json:"synergy_reasons"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`

	Explanation string `json:"explanation"`
}

func NewMatchResultResponse(r matching.MatchResult) MatchResultResponse {
	return MatchResultResponse{
		SkillScore:          r.SkillScore,
		ExperienceScore:     r.ExperienceScore,
		LocationScore:       r.LocationScore,
		AvailabilityScore:   r.AvailabilityScore,
		TeamSizeScore:       r.TeamSizeScore,
		OverallScore:        r.OverallScore,
		Confidence:          r.Confidence,
		MatchingSkills:      emptyIfNil(r.MatchingSkills),
		MissingSkills:       emptyIfNil(r.MissingSkills),
		ComplementarySkills: emptyIfNil(r.ComplementarySkills),
		SynergyReasons:      emptyIfNil(r.SynergyReasons),
		Strengths:           emptyIfNil(r.Strengths),
		Weaknesses:          emptyIfNil(r.Weaknesses),
		Explanation:         r.Explanation,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
