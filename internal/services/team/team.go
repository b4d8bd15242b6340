package team

import (
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/JorgeSaicoski/pgconnect"

	"github.com/zolten95/project-man/internal/db"
)

var log = slog.Default().With(
	slog.String("layer", "service"),
	slog.String("service", "TeamService"),
)

var ErrAccessDenied = errors.New("access denied: profiles can only be edited by their owner")

type TeamService struct {
	memberRepo *pgconnect.Repository[db.TeamMember]
}

func NewTeamService(database *pgconnect.DB) *TeamService {
	return &TeamService{
		memberRepo: pgconnect.NewRepository[db.TeamMember](database),
	}
}

// ListMembers returns the whole workspace roster, used for assignee
// pickers and the team page.
func (s *TeamService) ListMembers() ([]db.TeamMember, error) {
	log.Debug("list-members")

	var members []db.TeamMember
	if err := s.memberRepo.FindAll(&members); err != nil {
		log.Error("list-members:query-failed", "err", err)
		return nil, fmt.Errorf("failed to retrieve team members: %w", err)
	}
	return members, nil
}

// GetProfile returns one member's profile; on first sight of a user it
// creates a minimal row so the roster stays in step with Keycloak.
func (s *TeamService) GetProfile(userID string) (*db.TeamMember, error) {
	log.Debug("get-profile", "userID", userID)

	var members []db.TeamMember
	if err := s.memberRepo.FindWhere(&members, "user_id = ?", userID); err != nil {
		log.Error("get-profile:query-failed", "err", err)
		return nil, fmt.Errorf("failed to retrieve profile: %w", err)
	}
	if len(members) > 0 {
		return &members[0], nil
	}

	member := &db.TeamMember{
		UserID:      userID,
		DisplayName: userID,
		Role:        db.RoleMember,
		JoinedAt:    time.Now(),
	}
	if err := s.memberRepo.Create(member); err != nil {
		log.Error("get-profile:create-failed", "err", err)
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	log.Info("get-profile:created", "userID", userID)
	return member, nil
}

type UpdateProfileInput struct {
	DisplayName *string
	AvatarURL   *string
}

// UpdateProfile edits the caller's own profile.
func (s *TeamService) UpdateProfile(userID, callerID string, in *UpdateProfileInput) (*db.TeamMember, error) {
	log.Info("update-profile:start", "userID", userID, "callerID", callerID)

	if userID != callerID {
		log.Warn("update-profile:access-denied", "userID", userID, "callerID", callerID)
		return nil, ErrAccessDenied
	}

	member, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if in.DisplayName != nil && *in.DisplayName != "" {
		member.DisplayName = *in.DisplayName
	}
	if in.AvatarURL != nil {
		member.AvatarURL = in.AvatarURL
	}

	if err := s.memberRepo.Update(member); err != nil {
		log.Error("update-profile:db-update-failed", "err", err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	log.Info("update-profile:success", "userID", userID)
	return member, nil
}
