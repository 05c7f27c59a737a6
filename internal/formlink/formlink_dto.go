package formlink

import "time"

type UpdateFormLinkRequest struct {
	URL string `json:"url" binding:"required,url,max=500"`
}

type FormLinkResponse struct {
	ID        string  `json:"id"`
	URL       string  `json:"url"`
	UpdatedAt string  `json:"updated_at"`
	UpdatedBy *string `json:"updated_by"`
}

func mapToResponse(f FormLink) FormLinkResponse {
	var by *string
	if f.UpdatedBy != nil {
		id := f.UpdatedBy.String()
		by = &id
	}
	return FormLinkResponse{
		ID:        f.ID.String(),
		URL:       f.URL,
		UpdatedAt: f.UpdatedAt.Format(time.RFC3339),
		UpdatedBy: by,
	}
}

func mapToResponses(items []FormLink) []FormLinkResponse {
	resp := make([]FormLinkResponse, 0, len(items))
	for _, f := range items {
		resp = append(resp, mapToResponse(f))
	}
	return resp
}
