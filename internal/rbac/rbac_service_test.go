package rbac_test

import (
	"testing"

	"go-inova/internal/domain"
	"go-inova/internal/rbac"
	"go-inova/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, repo rbac.Repository) rbac.Service {
	t.Helper()
	e, err := infra.NewEnforcer()
	require.NoError(t, err)
	return rbac.NewService(repo, e)
}

func TestService_EnforceDefaultPolicy(t *testing.T) {
	svc := newService(t, rbac.NewRepository())

	tests := []struct {
		role, resource, action string
		want                   bool
	}{
		{domain.RoleAdministrator, "news", "create", true},
		{domain.RoleAdministrator, "formlink", "update", true},
		{domain.RoleAdministrator, "asset", "upload", true},
		{domain.RoleAdministrator, "user", "delete", false},
		{domain.RoleSuperuser, "user", "delete", true},
		{domain.RoleAnonymous, "news", "create", false},
	}

	for _, tt := range tests {
		allowed, err := svc.Enforce(domain.EnforceRequest{Role: tt.role, Resource: tt.resource, Action: tt.action})
		assert.NoError(t, err)
		assert.Equal(t, tt.want, allowed, tt.role+" "+tt.resource+":"+tt.action)
	}
}

func TestService_Permissions(t *testing.T) {
	svc := newService(t, rbac.NewYAMLRepository([]byte(`
roles:
  administrator:
    - resource: news
      action: update
    - resource: asset
      action: upload
    - resource: news
      action: create
`)))

	perms, err := svc.Permissions(domain.RoleAdministrator)
	require.NoError(t, err)
	assert.Equal(t, []domain.PermissionResponse{
		{Resource: "asset", Action: "upload"},
		{Resource: "news", Action: "create"},
		{Resource: "news", Action: "update"},
	}, perms)

	none, err := svc.Permissions(domain.RoleAnonymous)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestService_InvalidPolicy(t *testing.T) {
	svc := newService(t, rbac.NewYAMLRepository([]byte(`
roles:
  administrator:
    - resource: news
`)))

	assert.Error(t, svc.Reload())

	_, err := svc.Enforce(domain.EnforceRequest{Role: domain.RoleAdministrator, Resource: "news", Action: "create"})
	assert.Error(t, err)
}
