package news

import "time"

type CreateNewsRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Body        string     `json:"body" binding:"required"`
	Category    string     `json:"category" binding:"omitempty,oneof=STARTUP INOVACAO EVENTO PESQUISA TECNOLOGIA INSTITUCIONAL OUTROS"`
	CoverURL    string     `json:"cover_url" binding:"omitempty,url,max=500"`
	Link        string     `json:"link" binding:"omitempty,url,max=500"`
	PublishedAt *time.Time `json:"published_at"`
}

type UpdateNewsRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=200"`
	Body        *string    `json:"body"`
	Category    *string    `json:"category" binding:"omitempty,oneof=STARTUP INOVACAO EVENTO PESQUISA TECNOLOGIA INSTITUCIONAL OUTROS"`
	CoverURL    *string    `json:"cover_url" binding:"omitempty,max=500"`
	Link        *string    `json:"link" binding:"omitempty,max=500"`
	PublishedAt *time.Time `json:"published_at"`
}

type ListNewsQuery struct {
	Category string `form:"category"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
}

type NewsResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Body        string  `json:"body"`
	Category    string  `json:"category"`
	CoverURL    string  `json:"cover_url,omitempty"`
	Link        string  `json:"link,omitempty"`
	OwnerID     *string `json:"owner_id"`
	PublishedAt string  `json:"published_at"`
	CreatedAt   string  `json:"created_at"`
}

type ListResult struct {
	Items []NewsResponse
	Total int64
	Page  int
	Size  int
}

func mapToResponse(n News) NewsResponse {
	var owner *string
	if n.OwnerID != nil {
		id := n.OwnerID.String()
		owner = &id
	}
	return NewsResponse{
		ID:          n.ID,
		Title:       n.Title,
		Body:        n.Body,
		Category:    n.Category,
		CoverURL:    n.CoverURL,
		Link:        n.Link,
		OwnerID:     owner,
		PublishedAt: n.PublishedAt.Format(time.RFC3339),
		CreatedAt:   n.CreatedAt.Format(time.RFC3339),
	}
}

func mapToResponses(items []News) []NewsResponse {
	resp := make([]NewsResponse, 0, len(items))
	for _, n := range items {
		resp = append(resp, mapToResponse(n))
	}
	return resp
}
