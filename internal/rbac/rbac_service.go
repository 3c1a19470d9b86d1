package rbac

import (
	"sort"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
	PermissionsFor(role string) ([]Permission, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewService loads the static role policy into enforcer.
func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	s := &service{enforcer: enforcer, logger: l}
	if err := s.loadPolicy(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) loadPolicy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	for role, perms := range rolePermissions {
		for _, p := range perms {
			if _, err := s.enforcer.AddPolicy(role, p.Resource, p.Action); err != nil {
				return err
			}
		}
	}
	for _, edge := range roleInheritance {
		if _, err := s.enforcer.AddGroupingPolicy(edge[0], edge[1]); err != nil {
			return err
		}
	}

	s.logger.Debug("rbac policy loaded", zap.Int("roles", len(rolePermissions)))
	return nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	if !allowed {
		s.logger.Debug("access denied",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
		)
	}
	return allowed, nil
}

func (s *service) PermissionsFor(role string) ([]Permission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return nil, err
	}

	perms := make([]Permission, 0, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		perms = append(perms, Permission{Resource: row[1], Action: row[2]})
	}
	sort.Slice(perms, func(i, j int) bool {
		if perms[i].Resource != perms[j].Resource {
			return perms[i].Resource < perms[j].Resource
		}
		return perms[i].Action < perms[j].Action
	})
	return perms, nil
}
