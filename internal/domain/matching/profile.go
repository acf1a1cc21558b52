package matching

import "github.com/google/uuid"

// Experience levels are ordinal. Unknown labels clamp to the nearest bound
// when resolved (candidate side down, range max side up).
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

type WorkingHours struct {
	Start string
	End   string
}

// CandidateProfile is a read-only snapshot of a participant, assembled by the
// caller from user persistence.
type CandidateProfile struct {
	UserID          uuid.UUID
	Skills          []string
	ExperienceLevel string
	Timezone        string
	WorkingHours    *WorkingHours
}

// TeamProfile is a read-only snapshot of the team being considered.
type TeamProfile struct {
	TeamID      uuid.UUID
	LeaderID    uuid.UUID
	MemberCount int
	MaxMembers  int
}

// TeamPreferences steers the match. Zero-value fields are meaningful only
// through DefaultPreferences; callers that have no stored preferences must
// substitute the default object instead of a partially filled one.
type TeamPreferences struct {
	RequiredSkills  []string
	PreferredSkills []string

	SkillWeight      float64
	ExperienceWeight float64
	LocationWeight   float64

	MinExperience string
	MaxExperience string

	PreferredTimezones []string
	LocationFlexible   bool

	WorkingHours *WorkingHours

	PreferredTeamSize int
}

// DefaultPreferences is the single documented fallback used when a team (and
// its leader) has no stored preferences.
func DefaultPreferences() TeamPreferences {
	return TeamPreferences{
		RequiredSkills:     []string{},
		PreferredSkills:    []string{},
		SkillWeight:        0.4,
		ExperienceWeight:   0.2,
		LocationWeight:     0.1,
		MinExperience:      LevelBeginner,
		MaxExperience:      LevelExpert,
		PreferredTimezones: []string{},
		LocationFlexible:   true,
		PreferredTeamSize:  4,
	}
}

// MatchResult carries every dimension score plus the narrative fields, so the
// API layer can render an explanation without recomputation.
type MatchResult struct {
	SkillScore        float64
	ExperienceScore   float64
	LocationScore     float64
	AvailabilityScore float64
	TeamSizeScore     float64

	OverallScore float64
	Confidence   float64

	MatchingSkills      []string
	MissingSkills       []string
	ComplementarySkills []string

	SynergyReasons []string
	Strengths      []string
	Weaknesses     []string

	Explanation string
}
