package rbac

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var defaultPolicy []byte

type PolicyRule struct {
	Role     string
	Resource string `yaml:"resource"`
	Action   string `yaml:"action"`
}

type policyFile struct {
	Roles map[string][]PolicyRule `yaml:"roles"`
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	LoadPolicies() ([]PolicyRule, error)
}

type yamlRepository struct {
	data []byte
}

func NewYAMLRepository(data []byte) Repository {
	return &yamlRepository{data: data}
}

// NewRepository reads the policy file compiled into the binary.
func NewRepository() Repository {
	return NewYAMLRepository(defaultPolicy)
}

func (r *yamlRepository) LoadPolicies() ([]PolicyRule, error) {
	var f policyFile
	if err := yaml.Unmarshal(r.data, &f); err != nil {
		return nil, fmt.Errorf("parse rbac policy: %w", err)
	}

	var rules []PolicyRule
	for role, perms := range f.Roles {
		for _, p := range perms {
			if p.Resource == "" || p.Action == "" {
				return nil, fmt.Errorf("rbac policy for role %q has an empty resource or action", role)
			}
			rules = append(rules, PolicyRule{Role: role, Resource: p.Resource, Action: p.Action})
		}
	}
	return rules, nil
}
