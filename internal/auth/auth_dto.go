package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type CreateUserRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	IsSuperuser bool   `json:"is_superuser"`
}

type UserResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsSuperuser bool   `json:"is_superuser"`
	StartupID   string `json:"startup_id,omitempty"`
}

// LoginResult is returned by Login and RefreshToken. RedirectTo points the
// client at the principal's own startup, or at the catalogue for superusers.
type LoginResult struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
	RedirectTo   string       `json:"redirect_to"`
}

func mapToResponse(u User, startupID string) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		IsSuperuser: u.IsSuperuser,
		StartupID:   startupID,
	}
}
