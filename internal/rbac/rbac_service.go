package rbac

import (
	"sort"
	"sync"

	"go-inova/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Reload() error
	Enforce(req domain.EnforceRequest) (bool, error)
	Permissions(role string) ([]domain.PermissionResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	rules    []PolicyRule
	loaded   bool
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reloadUnlocked()
}

func (s *service) reloadUnlocked() error {
	rules, err := s.repo.LoadPolicies()
	if err != nil {
		return err
	}

	s.enforcer.ClearPolicy()
	for _, r := range rules {
		if _, err := s.enforcer.AddPolicy(r.Role, r.Resource, r.Action); err != nil {
			return err
		}
	}

	s.rules = rules
	s.loaded = true
	s.logger.Info("rbac policy loaded", zap.Int("rules", len(rules)))
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		if err := s.reloadUnlocked(); err != nil {
			return false, err
		}
	}

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		return false, err
	}
	if !allowed {
		s.logger.Debug("rbac denied",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
		)
	}
	return allowed, nil
}

func (s *service) Permissions(role string) ([]domain.PermissionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		if err := s.reloadUnlocked(); err != nil {
			return nil, err
		}
	}

	perms := make([]domain.PermissionResponse, 0)
	for _, r := range s.rules {
		if r.Role == role {
			perms = append(perms, domain.PermissionResponse{Resource: r.Resource, Action: r.Action})
		}
	}
	sort.Slice(perms, func(i, j int) bool {
		if perms[i].Resource == perms[j].Resource {
			return perms[i].Action < perms[j].Action
		}
		return perms[i].Resource < perms[j].Resource
	})
	return perms, nil
}
