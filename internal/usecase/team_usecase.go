package usecase

import (
	"context"
	"errors"
	"strings"

	"hackmate/internal/domain/matching"
	"hackmate/internal/domain/team"
	"hackmate/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrTeamFull         = errors.New("team is full")
	ErrAlreadyOnTeam    = errors.New("already on a team for this hackathon")
	ErrNotTeamLeader    = errors.New("only the team leader may do this")
	ErrNotRegistered    = errors.New("not registered for this hackathon")
)

const defaultMaxMembers = 5

type CreateTeamInput struct {
	HackathonID uuid.UUID
	LeaderID    uuid.UUID
	Name        string
	Description string
	MaxMembers  int
}

type TeamUsecase interface {
	CreateTeam(ctx context.Context, in CreateTeamInput) (team.Team, error)
	GetTeam(ctx context.Context, teamID uuid.UUID) (repository.TeamSnapshot, error)
	JoinTeam(ctx context.Context, teamID, userID uuid.UUID) error
	LeaveTeam(ctx context.Context, teamID, userID uuid.UUID) error
	SetRecruiting(ctx context.Context, teamID, leaderID uuid.UUID, recruiting bool) error
	SetPreferences(ctx context.Context, teamID, leaderID uuid.UUID, prefs matching.TeamPreferences) error
}

type Teams struct {
	teams      repository.TeamRepository
	prefs      repository.PreferenceRepository
	hackathons repository.HackathonRepository
	notifier   MatchNotifier
}

// MatchNotifier lets the usecase layer tell connected clients their
// recommendation lists went stale. The websocket hub satisfies it.
type MatchNotifier interface {
	NotifyMatchesUpdated(hackathonID uuid.UUID)
}

func NewTeamUsecase(
	teams repository.TeamRepository,
	prefs repository.PreferenceRepository,
	hackathons repository.HackathonRepository,
	notifier MatchNotifier,
) *Teams {
	return &Teams{teams: teams, prefs: prefs, hackathons: hackathons, notifier: notifier}
}

func (u *Teams) CreateTeam(ctx context.Context, in CreateTeamInput) (team.Team, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.LeaderID == uuid.Nil {
		return team.Team{}, ErrInvalidInput
	}
	if in.MaxMembers <= 0 {
		in.MaxMembers = defaultMaxMembers
	}

	exists, err := u.hackathons.ExistsByID(ctx, in.HackathonID)
	if err != nil {
		return team.Team{}, ErrInternal
	}
	if !exists {
		return team.Team{}, ErrHackathonNotFound
	}

	registered, err := u.hackathons.IsParticipant(ctx, in.HackathonID, in.LeaderID)
	if err != nil {
		return team.Team{}, ErrInternal
	}
	if !registered {
		return team.Team{}, ErrNotRegistered
	}

	onTeam, err := u.teams.HasTeamInHackathon(ctx, in.HackathonID, in.LeaderID)
	if err != nil {
		return team.Team{}, ErrInternal
	}
	if onTeam {
		return team.Team{}, ErrAlreadyOnTeam
	}

	t := team.Team{
		ID:          uuid.New(),
		HackathonID: in.HackathonID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		LeaderID:    in.LeaderID,
		MaxMembers:  in.MaxMembers,
		Recruiting:  true,
	}
	if err := u.teams.CreateTeam(ctx, t); err != nil {
		return team.Team{}, ErrInternal
	}

	u.notifyMatchesUpdated(in.HackathonID)
	return t, nil
}

func (u *Teams) GetTeam(ctx context.Context, teamID uuid.UUID) (repository.TeamSnapshot, error) {
	snap, err := u.teams.GetSnapshot(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return repository.TeamSnapshot{}, ErrTeamNotFound
		}
		return repository.TeamSnapshot{}, ErrInternal
	}
	return snap, nil
}

func (u *Teams) JoinTeam(ctx context.Context, teamID, userID uuid.UUID) error {
	snap, err := u.teams.GetSnapshot(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return ErrInternal
	}

	registered, err := u.hackathons.IsParticipant(ctx, snap.Team.HackathonID, userID)
	if err != nil {
		return ErrInternal
	}
	if !registered {
		return ErrNotRegistered
	}

	onTeam, err := u.teams.HasTeamInHackathon(ctx, snap.Team.HackathonID, userID)
	if err != nil {
		return ErrInternal
	}
	if onTeam {
		return ErrAlreadyOnTeam
	}

	if err := u.teams.AddMember(ctx, teamID, userID, "member"); err != nil {
		switch {
		case errors.Is(err, repository.ErrTeamFull):
			return ErrTeamFull
		case errors.Is(err, repository.ErrAlreadyMember):
			return ErrAlreadyOnTeam
		case errors.Is(err, repository.ErrTeamNotFound):
			return ErrTeamNotFound
		default:
			return ErrInternal
		}
	}

	u.notifyMatchesUpdated(snap.Team.HackathonID)
	return nil
}

func (u *Teams) LeaveTeam(ctx context.Context, teamID, userID uuid.UUID) error {
	snap, err := u.teams.GetSnapshot(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return ErrInternal
	}
	if snap.Team.LeaderID == userID {
		// Leaders disband by deleting the team, not by leaving it headless.
		return ErrNotTeamLeader
	}

	if err := u.teams.RemoveMember(ctx, teamID, userID); err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return ErrInternal
	}

	u.notifyMatchesUpdated(snap.Team.HackathonID)
	return nil
}

func (u *Teams) SetRecruiting(ctx context.Context, teamID, leaderID uuid.UUID, recruiting bool) error {
	snap, err := u.requireLeader(ctx, teamID, leaderID)
	if err != nil {
		return err
	}
	if err := u.teams.SetRecruiting(ctx, teamID, recruiting); err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return ErrInternal
	}

	u.notifyMatchesUpdated(snap.Team.HackathonID)
	return nil
}

func (u *Teams) SetPreferences(ctx context.Context, teamID, leaderID uuid.UUID, prefs matching.TeamPreferences) error {
	snap, err := u.requireLeader(ctx, teamID, leaderID)
	if err != nil {
		return err
	}
	if err := u.prefs.UpsertTeamPreferences(ctx, teamID, prefs); err != nil {
		return ErrInternal
	}

	u.notifyMatchesUpdated(snap.Team.HackathonID)
	return nil
}

func (u *Teams) requireLeader(ctx context.Context, teamID, userID uuid.UUID) (repository.TeamSnapshot, error) {
	snap, err := u.teams.GetSnapshot(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return repository.TeamSnapshot{}, ErrTeamNotFound
		}
		return repository.TeamSnapshot{}, ErrInternal
	}
	if snap.Team.LeaderID != userID {
		return repository.TeamSnapshot{}, ErrNotTeamLeader
	}
	return snap, nil
}

func (u *Teams) notifyMatchesUpdated(hackathonID uuid.UUID) {
	if u.notifier == nil {
		return
	}
	u.notifier.NotifyMatchesUpdated(hackathonID)
}
