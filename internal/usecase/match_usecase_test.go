package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"hackmate/internal/domain/matching"
	"hackmate/internal/domain/team"
	"hackmate/internal/domain/user"
	"hackmate/internal/repository"

	"github.com/google/uuid"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testProfile(id uuid.UUID) user.Profile {
	start, end := "09:00", "18:00"
	return user.Profile{
		UserID:          id,
		DisplayName:     "Ada",
		Skills:          []string{"Go", "PostgreSQL"},
		ExperienceLevel: matching.LevelAdvanced,
		Timezone:        "UTC+7",
		WorkStart:       &start,
		WorkEnd:         &end,
	}
}

func testSnapshot(teamID, leaderID uuid.UUID) repository.TeamSnapshot {
	return repository.TeamSnapshot{
		Team: team.Team{
			ID:         teamID,
			Name:       "Night Owls",
			LeaderID:   leaderID,
			MaxMembers: 5,
			Recruiting: true,
		},
		MemberCount: 3,
	}
}

func TestScoreMatch_UserNotFound(t *testing.T) {
	uc := NewMatchUsecase(mockProfileRepo{}, mockTeamRepo{}, mockPrefRepo{}, nil, quietLogger())
	_, err := uc.ScoreMatch(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestScoreMatch_TeamNotFound(t *testing.T) {
	userID := uuid.New()
	uc := NewMatchUsecase(
		mockProfileRepo{profiles: map[uuid.UUID]user.Profile{userID: testProfile(userID)}},
		mockTeamRepo{},
		mockPrefRepo{},
		nil,
		quietLogger(),
	)
	_, err := uc.ScoreMatch(context.Background(), userID, uuid.New())
	if !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestScoreMatch_UsesDefaultPreferencesWhenNoneStored(t *testing.T) {
	userID, teamID, leaderID := uuid.New(), uuid.New(), uuid.New()
	history := &mockHistoryRepo{}

	uc := NewMatchUsecase(
		mockProfileRepo{profiles: map[uuid.UUID]user.Profile{userID: testProfile(userID)}},
		mockTeamRepo{snapshots: map[uuid.UUID]repository.TeamSnapshot{teamID: testSnapshot(teamID, leaderID)}},
		mockPrefRepo{},
		history,
		quietLogger(),
	)

	res, err := uc.ScoreMatch(context.Background(), userID, teamID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// Default preferences: no required skills -> skill score 1.0 (2 complementary
	// max out at 0.7+0.2+0.04, clamped dims all in range).
	if res.OverallScore <= 0 || res.OverallScore > 1 {
		t.Fatalf("overall out of range: %v", res.OverallScore)
	}
	// location: flexible default -> 0.9
	if !almostEqual(res.LocationScore, 0.9) {
		t.Fatalf("expected flexible default 0.9, got %v", res.LocationScore)
	}
	// team of 3 joining to 4 == default preferred size
	if !almostEqual(res.TeamSizeScore, 1.0) {
		t.Fatalf("expected team size 1.0, got %v", res.TeamSizeScore)
	}
	if len(history.upserts) != 1 {
		t.Fatalf("expected one history upsert, got %d", len(history.upserts))
	}
}

func TestScoreMatch_PreferenceFallbackToLeader(t *testing.T) {
	userID, teamID, leaderID := uuid.New(), uuid.New(), uuid.New()

	leaderPrefs := matching.DefaultPreferences()
	leaderPrefs.RequiredSkills = []string{"Rust"}

	uc := NewMatchUsecase(
		mockProfileRepo{profiles: map[uuid.UUID]user.Profile{userID: testProfile(userID)}},
		mockTeamRepo{snapshots: map[uuid.UUID]repository.TeamSnapshot{teamID: testSnapshot(teamID, leaderID)}},
		mockPrefRepo{userPrefs: map[uuid.UUID]matching.TeamPreferences{leaderID: leaderPrefs}},
		nil,
		quietLogger(),
	)

	res, err := uc.ScoreMatch(context.Background(), userID, teamID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// leader requires rust, candidate has none: missing majority -> halved skill score
	if len(res.MissingSkills) != 1 || res.MissingSkills[0] != "rust" {
		t.Fatalf("expected missing [rust], got %v", res.MissingSkills)
	}
}

func TestScoreMatch_HistoryFailureIsNotFatal(t *testing.T) {
	userID, teamID, leaderID := uuid.New(), uuid.New(), uuid.New()

	uc := NewMatchUsecase(
		mockProfileRepo{profiles: map[uuid.UUID]user.Profile{userID: testProfile(userID)}},
		mockTeamRepo{snapshots: map[uuid.UUID]repository.TeamSnapshot{teamID: testSnapshot(teamID, leaderID)}},
		mockPrefRepo{},
		&mockHistoryRepo{err: errBoom},
		quietLogger(),
	)

	if _, err := uc.ScoreMatch(context.Background(), userID, teamID); err != nil {
		t.Fatalf("history write failure must not fail scoring, got %v", err)
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
