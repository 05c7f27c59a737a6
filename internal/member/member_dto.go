package member

type CreateMemberRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Role     string `json:"role" binding:"required,max=100"`
	PhotoURL string `json:"photo_url" binding:"omitempty,url"`
}

type UpdateMemberRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Role     *string `json:"role" binding:"omitempty,min=1,max=100"`
	PhotoURL *string `json:"photo_url" binding:"omitempty,url"`
}

type MemberResponse struct {
	ID        string `json:"id"`
	StartupID string `json:"startup_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	PhotoURL  string `json:"photo_url,omitempty"`
}

func MapToResponse(m Member) MemberResponse {
	return MemberResponse{
		ID:        m.ID.String(),
		StartupID: m.StartupID.String(),
		Name:      m.Name,
		Role:      m.Role,
		PhotoURL:  m.PhotoURL,
	}
}

func MapToResponses(members []Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, MapToResponse(m))
	}
	return out
}
