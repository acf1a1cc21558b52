package matching

// Calculate runs every dimension scorer for one candidate/team pair and
// aggregates the result. Pure function: safe for any number of concurrent
// callers, never mutates its inputs.
func Calculate(candidate CandidateProfile, team TeamProfile, prefs TeamPreferences) MatchResult {
	skills := ScoreSkills(candidate.Skills, prefs.RequiredSkills, prefs.PreferredSkills)

	dims := DimensionScores{
		Skill:        skills.Score,
		Experience:   ScoreExperience(candidate.ExperienceLevel, prefs.MinExperience, prefs.MaxExperience),
		Location:     ScoreLocation(candidate.Timezone, prefs.PreferredTimezones, prefs.LocationFlexible),
		Availability: ScoreAvailability(candidate.WorkingHours, prefs.WorkingHours),
		TeamSize:     ScoreTeamSize(team.MemberCount, team.MaxMembers, prefs.PreferredTeamSize),
	}

	return Aggregate(dims, skills, prefs)
}
