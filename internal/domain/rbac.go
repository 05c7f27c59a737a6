package domain

// Roles understood by the casbin policy. A principal's role is derived from
// its token claims, never stored.
const (
	RoleSuperuser     = "superuser"
	RoleAdministrator = "administrator"
	RoleAnonymous     = "anonymous"
)

type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

type RolePermissionsResponse struct {
	Role        string               `json:"role"`
	Permissions []PermissionResponse `json:"permissions"`
}

func RoleFor(authenticated, superuser, bound bool) string {
	switch {
	case !authenticated:
		return RoleAnonymous
	case superuser:
		return RoleSuperuser
	case bound:
		return RoleAdministrator
	default:
		return RoleAnonymous
	}
}
