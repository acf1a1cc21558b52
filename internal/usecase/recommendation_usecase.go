package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"hackmate/internal/domain/matching"
	"hackmate/internal/domain/team"
	"hackmate/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultRecommendationLimit = 20
	maxRecommendationLimit     = 50

	recommendationCacheTTL = 2 * time.Minute
)

// TeamRecommendation is one ranked entry of a teams-for-user list: the full
// match result plus enough team display data to render it.
type TeamRecommendation struct {
	Team   team.Summary         `json:"team"`
	Result matching.MatchResult `json:"result"`
}

// UserRecommendation is the mirror entry of a users-for-team list.
type UserRecommendation struct {
	User   UserSummary          `json:"user"`
	Result matching.MatchResult `json:"result"`
}

type UserSummary struct {
	ID              uuid.UUID `json:"id"`
	DisplayName     string    `json:"display_name"`
	Skills          []string  `json:"skills"`
	ExperienceLevel string    `json:"experience_level"`
	Timezone        string    `json:"timezone"`
}

type RecommendationUsecase interface {
	RecommendTeamsForUser(ctx context.Context, userID, hackathonID uuid.UUID, limit int) ([]TeamRecommendation, error)
	RecommendUsersForTeam(ctx context.Context, teamID, hackathonID uuid.UUID, limit int) ([]UserRecommendation, error)
}

type Recommendation struct {
	profiles   repository.ProfileRepository
	teams      repository.TeamRepository
	prefs      repository.PreferenceRepository
	hackathons repository.HackathonRepository
	cache      RecommendationCache
	logger     *log.Logger
}

func NewRecommendationUsecase(
	profiles repository.ProfileRepository,
	teams repository.TeamRepository,
	prefs repository.PreferenceRepository,
	hackathons repository.HackathonRepository,
	cache RecommendationCache,
	logger *log.Logger,
) *Recommendation {
	if logger == nil {
		logger = log.Default()
	}
	return &Recommendation{
		profiles:   profiles,
		teams:      teams,
		prefs:      prefs,
		hackathons: hackathons,
		cache:      cache,
		logger:     logger,
	}
}

// scored pairs one candidate's outcome with its error so a batch can be
// filtered explicitly instead of silently swallowing failures in the loop.
type scored[T any] struct {
	item T
	err  error
}

func (r *Recommendation) RecommendTeamsForUser(ctx context.Context, userID, hackathonID uuid.UUID, limit int) ([]TeamRecommendation, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	limit = clampLimit(limit)

	if err := r.requireHackathon(ctx, hackathonID); err != nil {
		return nil, err
	}

	cacheKey := teamsForUserCacheKey(userID, hackathonID, limit)
	var cached []TeamRecommendation
	if hit, err := r.cacheGet(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	profile, err := r.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}
	candidate := candidateFromProfile(profile)

	snaps, err := r.teams.ListOpenTeams(ctx, hackathonID)
	if err != nil {
		return nil, ErrInternal
	}

	results := make([]scored[TeamRecommendation], 0, len(snaps))
	for _, snap := range snaps {
		results = append(results, r.scoreTeamCandidate(ctx, candidate, userID, snap))
	}

	out := make([]TeamRecommendation, 0, len(results))
	for _, s := range results {
		if s.err != nil {
			if !errors.Is(s.err, errCandidateSkipped) {
				r.logger.Printf("recommendation candidate failed | user=%s team=%s error=%v", userID, s.item.Team.ID, s.err)
			}
			continue
		}
		out = append(out, s.item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.OverallScore > out[j].Result.OverallScore
	})
	if len(out) > limit {
		out = out[:limit]
	}

	r.cacheSet(ctx, cacheKey, out)
	return out, nil
}

func (r *Recommendation) RecommendUsersForTeam(ctx context.Context, teamID, hackathonID uuid.UUID, limit int) ([]UserRecommendation, error) {
	if teamID == uuid.Nil {
		return nil, ErrTeamNotFound
	}
	limit = clampLimit(limit)

	if err := r.requireHackathon(ctx, hackathonID); err != nil {
		return nil, err
	}

	cacheKey := usersForTeamCacheKey(teamID, hackathonID, limit)
	var cached []UserRecommendation
	if hit, err := r.cacheGet(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	snap, err := r.teams.GetSnapshot(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, ErrInternal
	}

	prefs, err := resolveTeamPreferences(ctx, r.prefs, snap.Team.ID, snap.Team.LeaderID)
	if err != nil {
		return nil, ErrInternal
	}
	teamProfile := teamProfileFromSnapshot(snap)

	candidateIDs, err := r.hackathons.ListUnteamedParticipantIDs(ctx, hackathonID)
	if err != nil {
		return nil, ErrInternal
	}

	profiles, err := r.profiles.GetProfiles(ctx, candidateIDs)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]UserRecommendation, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		p, ok := profiles[id]
		if !ok {
			// Participant row without a loadable profile: skip, keep the batch.
			r.logger.Printf("recommendation candidate failed | team=%s user=%s error=profile missing", teamID, id)
			continue
		}
		out = append(out, UserRecommendation{
			User: UserSummary{
				ID:              p.UserID,
				DisplayName:     p.DisplayName,
				Skills:          p.Skills,
				ExperienceLevel: p.ExperienceLevel,
				Timezone:        p.Timezone,
			},
			Result: matching.Calculate(candidateFromProfile(p), teamProfile, prefs),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.OverallScore > out[j].Result.OverallScore
	})
	if len(out) > limit {
		out = out[:limit]
	}

	r.cacheSet(ctx, cacheKey, out)
	return out, nil
}

// errCandidateSkipped marks candidates excluded by policy (e.g. the user is
// already on the team) rather than by failure; they are not logged as errors.
var errCandidateSkipped = errors.New("candidate skipped")

func (r *Recommendation) scoreTeamCandidate(ctx context.Context, candidate matching.CandidateProfile, userID uuid.UUID, snap repository.TeamSnapshot) scored[TeamRecommendation] {
	rec := TeamRecommendation{Team: team.Summary{
		ID:          snap.Team.ID,
		Name:        snap.Team.Name,
		Description: snap.Team.Description,
		MemberCount: snap.MemberCount,
		MaxMembers:  snap.Team.MaxMembers,
	}}

	isMember, err := r.teams.IsMember(ctx, snap.Team.ID, userID)
	if err != nil {
		return scored[TeamRecommendation]{item: rec, err: err}
	}
	if isMember {
		return scored[TeamRecommendation]{item: rec, err: errCandidateSkipped}
	}

	prefs, err := resolveTeamPreferences(ctx, r.prefs, snap.Team.ID, snap.Team.LeaderID)
	if err != nil {
		return scored[TeamRecommendation]{item: rec, err: err}
	}

	rec.Result = matching.Calculate(candidate, teamProfileFromSnapshot(snap), prefs)
	return scored[TeamRecommendation]{item: rec}
}

func (r *Recommendation) requireHackathon(ctx context.Context, hackathonID uuid.UUID) error {
	if hackathonID == uuid.Nil {
		return ErrHackathonNotFound
	}
	exists, err := r.hackathons.ExistsByID(ctx, hackathonID)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrHackathonNotFound
	}
	return nil
}

func (r *Recommendation) cacheGet(ctx context.Context, key string, out any) (bool, error) {
	if r.cache == nil {
		return false, nil
	}
	return r.cache.GetJSON(ctx, key, out)
}

func (r *Recommendation) cacheSet(ctx context.Context, key string, value any) {
	if r.cache == nil {
		return
	}
	if err := r.cache.SetJSON(ctx, key, value, recommendationCacheTTL); err != nil {
		r.logger.Printf("recommendation cache set failed | key=%s error=%v", key, err)
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultRecommendationLimit
	}
	if limit > maxRecommendationLimit {
		return maxRecommendationLimit
	}
	return limit
}
