package project

import "go-inova/internal/member"

// CoordinatorID is accepted for compatibility with older clients and
// ignored, the coordinator is always the startup's administrator.
type CreateProjectRequest struct {
	Name          string   `json:"name" binding:"required,max=100"`
	Description   string   `json:"description" binding:"required"`
	VideoURL      string   `json:"video_url" binding:"omitempty,url"`
	Photos        []string `json:"photos"`
	MemberIDs     []string `json:"member_ids" binding:"omitempty,dive,uuid"`
	CoordinatorID *string  `json:"coordinator_id"`
}

type UpdateProjectRequest struct {
	Name          *string   `json:"name" binding:"omitempty,min=1,max=100"`
	Description   *string   `json:"description" binding:"omitempty,min=1"`
	VideoURL      *string   `json:"video_url" binding:"omitempty,url"`
	Photos        *[]string `json:"photos"`
	CoordinatorID *string   `json:"coordinator_id"`
}

type SetMembersRequest struct {
	MemberIDs []string `json:"member_ids" binding:"required,dive,uuid"`
}

type ProjectResponse struct {
	ID            string                  `json:"id"`
	StartupID     string                  `json:"startup_id"`
	CoordinatorID string                  `json:"coordinator_id"`
	Name          string                  `json:"name"`
	Description   string                  `json:"description"`
	VideoURL      string                  `json:"video_url,omitempty"`
	Photos        []string                `json:"photos"`
	Members       []member.MemberResponse `json:"members,omitempty"`
}

func mapToResponse(p Project, members []member.Member) ProjectResponse {
	photos := []string(p.Photos)
	if photos == nil {
		photos = []string{}
	}
	resp := ProjectResponse{
		ID:            p.ID.String(),
		StartupID:     p.StartupID.String(),
		Name:          p.Name,
		Description:   p.Description,
		VideoURL:      p.VideoURL,
		Photos:        photos,
	}
	if p.CoordinatorID != nil {
		resp.CoordinatorID = p.CoordinatorID.String()
	}
	if len(members) > 0 {
		resp.Members = member.MapToResponses(members)
	}
	return resp
}
