package startup

import (
	"time"

	"go-inova/internal/administrator"
	"go-inova/internal/member"
)

type AddressRequest struct {
	Street     string `json:"street" binding:"omitempty,max=255"`
	Number     string `json:"number" binding:"omitempty,max=20"`
	District   string `json:"district" binding:"omitempty,max=100"`
	City       string `json:"city" binding:"omitempty,max=100"`
	State      string `json:"state" binding:"omitempty,max=50"`
	PostalCode string `json:"postal_code" binding:"omitempty,max=20"`
}

type CreateStartupRequest struct {
	Name                string         `json:"name" binding:"required,max=100"`
	About               string         `json:"about" binding:"required"`
	HowUniversityHelped string         `json:"how_university_helped"`
	FoundedYear         int            `json:"founded_year" binding:"omitempty,min=1900"`
	Sector              string         `json:"sector" binding:"required,max=100"`
	TeamSize            string         `json:"team_size" binding:"omitempty,max=50"`
	Incubator           string         `json:"incubator" binding:"omitempty,max=100"`
	Address             AddressRequest `json:"address"`
}

type UpdateStartupRequest struct {
	Name                *string         `json:"name" binding:"omitempty,min=1,max=100"`
	About               *string         `json:"about" binding:"omitempty,min=1"`
	HowUniversityHelped *string         `json:"how_university_helped"`
	FoundedYear         *int            `json:"founded_year" binding:"omitempty,min=1900"`
	Sector              *string         `json:"sector" binding:"omitempty,min=1,max=100"`
	TeamSize            *string         `json:"team_size" binding:"omitempty,max=50"`
	Incubator           *string         `json:"incubator" binding:"omitempty,max=100"`
	Address             *AddressRequest `json:"address"`
}

type ContactRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,max=20"`
	Website string `json:"website" binding:"omitempty,url"`
}

type SocialLinksRequest struct {
	LinkedIn  string `json:"linkedin" binding:"omitempty,url"`
	Facebook  string `json:"facebook" binding:"omitempty,url"`
	Instagram string `json:"instagram" binding:"omitempty,url"`
	Twitter   string `json:"twitter" binding:"omitempty,url"`
}

type ListStartupsQuery struct {
	Sector    string `form:"sector"`
	Incubator string `form:"incubator"`
	Q         string `form:"q"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type AddressResponse struct {
	Street     string `json:"street,omitempty"`
	Number     string `json:"number,omitempty"`
	District   string `json:"district,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

type StartupResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	About               string          `json:"about"`
	HowUniversityHelped string          `json:"how_university_helped,omitempty"`
	FoundedYear         int             `json:"founded_year"`
	Sector              string          `json:"sector"`
	TeamSize            string          `json:"team_size,omitempty"`
	Incubator           string          `json:"incubator,omitempty"`
	LogoURL             string          `json:"logo_url,omitempty"`
	Address             AddressResponse `json:"address"`
	CreatedAt           string          `json:"created_at"`
}

type ContactResponse struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website,omitempty"`
}

type SocialLinksResponse struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

type ProfileResponse struct {
	Startup       StartupResponse                      `json:"startup"`
	Members       []member.MemberResponse              `json:"members"`
	Contact       *ContactResponse                     `json:"contact,omitempty"`
	SocialLinks   *SocialLinksResponse                 `json:"social_links,omitempty"`
	Administrator *administrator.AdministratorResponse `json:"administrator,omitempty"`
}

type ListResult struct {
	Items []StartupResponse
	Total int64
	Page  int
	Size  int
}

func mapToResponse(s Startup) StartupResponse {
	return StartupResponse{
		ID:                  s.ID.String(),
		Name:                s.Name,
		About:               s.About,
		HowUniversityHelped: s.HowUniversityHelped,
		FoundedYear:         s.FoundedYear,
		Sector:              s.Sector,
		TeamSize:            s.TeamSize,
		Incubator:           s.Incubator,
		LogoURL:             s.LogoURL,
		Address: AddressResponse{
			Street:     s.Street,
			Number:     s.Number,
			District:   s.District,
			City:       s.City,
			State:      s.State,
			PostalCode: s.PostalCode,
		},
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

func mapContact(c ContactInfo) *ContactResponse {
	return &ContactResponse{Email: c.Email, Phone: c.Phone, Website: c.Website}
}

func mapSocialLinks(l SocialLinks) *SocialLinksResponse {
	return &SocialLinksResponse{
		LinkedIn:  l.LinkedIn,
		Facebook:  l.Facebook,
		Instagram: l.Instagram,
		Twitter:   l.Twitter,
	}
}
