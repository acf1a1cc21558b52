package usecase

import (
	"context"
	"errors"
	"log"

	"hackmate/internal/domain/matching"
	"hackmate/internal/domain/user"
	"hackmate/internal/repository"

	"github.com/google/uuid"
)

type MatchUsecase interface {
	ScoreMatch(ctx context.Context, userID, teamID uuid.UUID) (matching.MatchResult, error)
}

type Match struct {
	profiles repository.ProfileRepository
	teams    repository.TeamRepository
	prefs    repository.PreferenceRepository
	history  repository.MatchHistoryRepository
	logger   *log.Logger
}

func NewMatchUsecase(
	profiles repository.ProfileRepository,
	teams repository.TeamRepository,
	prefs repository.PreferenceRepository,
	history repository.MatchHistoryRepository,
	logger *log.Logger,
) *Match {
	if logger == nil {
		logger = log.Default()
	}
	return &Match{profiles: profiles, teams: teams, prefs: prefs, history: history, logger: logger}
}

// ScoreMatch computes the full compatibility result for one user/team pair.
// Unresolvable ids are fatal for the call; everything downstream of profile
// resolution degrades to documented neutral scores instead of failing.
func (u *Match) ScoreMatch(ctx context.Context, userID, teamID uuid.UUID) (matching.MatchResult, error) {
	if userID == uuid.Nil {
		return matching.MatchResult{}, ErrUserNotFound
	}
	if teamID == uuid.Nil {
		return matching.MatchResult{}, ErrTeamNotFound
	}

	profile, err := u.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return matching.MatchResult{}, ErrUserNotFound
		}
		return matching.MatchResult{}, ErrInternal
	}

	snap, err := u.teams.GetSnapshot(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return matching.MatchResult{}, ErrTeamNotFound
		}
		return matching.MatchResult{}, ErrInternal
	}

	prefs, err := resolveTeamPreferences(ctx, u.prefs, snap.Team.ID, snap.Team.LeaderID)
	if err != nil {
		return matching.MatchResult{}, ErrInternal
	}

	res := matching.Calculate(candidateFromProfile(profile), teamProfileFromSnapshot(snap), prefs)

	if u.history != nil {
		if err := u.history.Upsert(ctx, repository.MatchUpsert{
			UserID:       userID,
			TeamID:       teamID,
			HackathonID:  snap.Team.HackathonID,
			OverallScore: res.OverallScore,
		}); err != nil {
			u.logger.Printf("match history upsert failed | user=%s team=%s error=%v", userID, teamID, err)
		}
	}

	return res, nil
}

func candidateFromProfile(p user.Profile) matching.CandidateProfile {
	c := matching.CandidateProfile{
		UserID:          p.UserID,
		Skills:          p.Skills,
		ExperienceLevel: p.ExperienceLevel,
		Timezone:        p.Timezone,
	}
	if p.WorkStart != nil || p.WorkEnd != nil {
		wh := matching.WorkingHours{}
		if p.WorkStart != nil {
			wh.Start = *p.WorkStart
		}
		if p.WorkEnd != nil {
			wh.End = *p.WorkEnd
		}
		c.WorkingHours = &wh
	}
	return c
}

func teamProfileFromSnapshot(s repository.TeamSnapshot) matching.TeamProfile {
	return matching.TeamProfile{
		TeamID:      s.Team.ID,
		LeaderID:    s.Team.LeaderID,
		MemberCount: s.MemberCount,
		MaxMembers:  s.Team.MaxMembers,
	}
}
