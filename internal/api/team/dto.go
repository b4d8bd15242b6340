package team

import (
	"time"

	"github.com/zolten95/project-man/internal/db"
	svc "github.com/zolten95/project-man/internal/services/team"
)

// Request DTOs

type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName"`
	AvatarURL   *string `json:"avatarUrl"`
}

// Response DTOs

type TeamMemberResponse struct {
	UserID      string    `json:"userId"`
	DisplayName string    `json:"displayName"`
	AvatarURL   *string   `json:"avatarUrl"`
	Role        string    `json:"role"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// Conversion methods

func (r *UpdateProfileRequest) ToInput() *svc.UpdateProfileInput {
	return &svc.UpdateProfileInput{
		DisplayName: r.DisplayName,
		AvatarURL:   r.AvatarURL,
	}
}

func TeamMemberToResponse(member *db.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		UserID:      member.UserID,
		DisplayName: member.DisplayName,
		AvatarURL:   member.AvatarURL,
		Role:        member.Role,
		JoinedAt:    member.JoinedAt,
	}
}

func TeamMembersToResponse(members []db.TeamMember) []TeamMemberResponse {
	responses := make([]TeamMemberResponse, len(members))
	for i, member := range members {
		responses[i] = TeamMemberToResponse(&member)
	}
	return responses
}
