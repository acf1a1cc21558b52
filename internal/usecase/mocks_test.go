package usecase

import (
	"context"
	"errors"
	"time"

	"hackmate/internal/domain/hackathon"
	"hackmate/internal/domain/matching"
	"hackmate/internal/domain/team"
	"hackmate/internal/domain/user"
	"hackmate/internal/repository"

	"github.com/google/uuid"
)

type mockProfileRepo struct {
	profiles map[uuid.UUID]user.Profile
	err      error
	failFor  map[uuid.UUID]error
}

func (m mockProfileRepo) GetProfile(_ context.Context, userID uuid.UUID) (user.Profile, error) {
	if m.err != nil {
		return user.Profile{}, m.err
	}
	if err, ok := m.failFor[userID]; ok {
		return user.Profile{}, err
	}
	p, ok := m.profiles[userID]
	if !ok {
		return user.Profile{}, repository.ErrProfileNotFound
	}
	return p, nil
}

func (m mockProfileRepo) GetProfiles(_ context.Context, userIDs []uuid.UUID) (map[uuid.UUID]user.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[uuid.UUID]user.Profile, len(userIDs))
	for _, id := range userIDs {
		if _, ok := m.failFor[id]; ok {
			continue
		}
		if p, ok := m.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (m mockProfileRepo) ReplaceSkills(context.Context, uuid.UUID, []string) error { return nil }
func (m mockProfileRepo) UpdateProfile(context.Context, user.Profile) error        { return nil }

type mockTeamRepo struct {
	snapshots map[uuid.UUID]repository.TeamSnapshot
	open      []repository.TeamSnapshot
	members   map[uuid.UUID][]uuid.UUID
	memberErr map[uuid.UUID]error
	addErr    error
	err       error
}

func (m mockTeamRepo) CreateTeam(context.Context, team.Team) error { return nil }

func (m mockTeamRepo) GetSnapshot(_ context.Context, teamID uuid.UUID) (repository.TeamSnapshot, error) {
	if m.err != nil {
		return repository.TeamSnapshot{}, m.err
	}
	s, ok := m.snapshots[teamID]
	if !ok {
		return repository.TeamSnapshot{}, repository.ErrTeamNotFound
	}
	return s, nil
}

func (m mockTeamRepo) ListOpenTeams(_ context.Context, _ uuid.UUID) ([]repository.TeamSnapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.open, nil
}

func (m mockTeamRepo) ListMemberIDs(_ context.Context, teamID uuid.UUID) ([]uuid.UUID, error) {
	return m.members[teamID], nil
}

func (m mockTeamRepo) IsMember(_ context.Context, teamID, userID uuid.UUID) (bool, error) {
	if err, ok := m.memberErr[teamID]; ok {
		return false, err
	}
	for _, id := range m.members[teamID] {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m mockTeamRepo) HasTeamInHackathon(_ context.Context, _, userID uuid.UUID) (bool, error) {
	for _, ids := range m.members {
		for _, id := range ids {
			if id == userID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (m mockTeamRepo) AddMember(context.Context, uuid.UUID, uuid.UUID, string) error {
	return m.addErr
}
func (m mockTeamRepo) RemoveMember(context.Context, uuid.UUID, uuid.UUID) error      { return nil }
func (m mockTeamRepo) SetRecruiting(context.Context, uuid.UUID, bool) error          { return nil }

type mockPrefRepo struct {
	teamPrefs map[uuid.UUID]matching.TeamPreferences
	userPrefs map[uuid.UUID]matching.TeamPreferences
	err       error
}

func (m mockPrefRepo) GetTeamPreferences(_ context.Context, teamID uuid.UUID) (matching.TeamPreferences, bool, error) {
	if m.err != nil {
		return matching.TeamPreferences{}, false, m.err
	}
	p, ok := m.teamPrefs[teamID]
	return p, ok, nil
}

func (m mockPrefRepo) GetUserPreferences(_ context.Context, userID uuid.UUID) (matching.TeamPreferences, bool, error) {
	if m.err != nil {
		return matching.TeamPreferences{}, false, m.err
	}
	p, ok := m.userPrefs[userID]
	return p, ok, nil
}

func (m mockPrefRepo) UpsertTeamPreferences(context.Context, uuid.UUID, matching.TeamPreferences) error {
	return nil
}

type mockHackathonRepo struct {
	existing map[uuid.UUID]bool
	unteamed []uuid.UUID
	err      error
}

func (m mockHackathonRepo) GetByID(_ context.Context, id uuid.UUID) (hackathon.Hackathon, error) {
	if !m.existing[id] {
		return hackathon.Hackathon{}, repository.ErrHackathonNotFound
	}
	return hackathon.Hackathon{ID: id}, nil
}

func (m mockHackathonRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.existing[id], nil
}

func (m mockHackathonRepo) List(context.Context, int, int) ([]hackathon.Hackathon, error) {
	return nil, nil
}

func (m mockHackathonRepo) RegisterParticipant(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func (m mockHackathonRepo) IsParticipant(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return true, nil
}

func (m mockHackathonRepo) ListUnteamedParticipantIDs(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.unteamed, nil
}

func (m mockHackathonRepo) UpsertImported(context.Context, hackathon.Hackathon) error { return nil }

type mockHistoryRepo struct {
	upserts []repository.MatchUpsert
	err     error
}

func (m *mockHistoryRepo) Upsert(_ context.Context, u repository.MatchUpsert) error {
	if m.err != nil {
		return m.err
	}
	m.upserts = append(m.upserts, u)
	return nil
}

type mockCache struct {
	store map[string][]byte
}

func (m *mockCache) GetJSON(_ context.Context, _ string, _ any) (bool, error) { return false, nil }
func (m *mockCache) SetJSON(_ context.Context, key string, _ any, _ time.Duration) error {
	if m.store == nil {
		m.store = map[string][]byte{}
	}
	m.store[key] = nil
	return nil
}
func (m *mockCache) Delete(context.Context, string) error { return nil }

type mockNotifier struct {
	notified []uuid.UUID
}

func (m *mockNotifier) NotifyMatchesUpdated(hackathonID uuid.UUID) {
	m.notified = append(m.notified, hackathonID)
}

var errBoom = errors.New("boom")
