package administrator

type BindAdministratorRequest struct {
	UserID     string `json:"user_id" binding:"required,uuid"`
	Name       string `json:"name" binding:"required,max=100"`
	Role       string `json:"role" binding:"omitempty,max=100"`
	Education  string `json:"education" binding:"omitempty,max=255"`
	Email      string `json:"email" binding:"omitempty,email"`
	SocialLink string `json:"social_link" binding:"omitempty,url"`
}

type UpdateAdministratorRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=100"`
	Role       *string `json:"role" binding:"omitempty,max=100"`
	Education  *string `json:"education" binding:"omitempty,max=255"`
	Email      *string `json:"email" binding:"omitempty,email"`
	SocialLink *string `json:"social_link" binding:"omitempty,url"`
}

type AdministratorResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	StartupID  string `json:"startup_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Education  string `json:"education"`
	Email      string `json:"email"`
	SocialLink string `json:"social_link"`
}

func MapToResponse(a Administrator) AdministratorResponse {
	return AdministratorResponse{
		ID:         a.ID.String(),
		UserID:     a.UserID.String(),
		StartupID:  a.StartupID.String(),
		Name:       a.Name,
		Role:       a.Role,
		Education:  a.Education,
		Email:      a.Email,
		SocialLink: a.SocialLink,
	}
}
