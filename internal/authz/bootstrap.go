package authz

import (
	"fmt"

	"github.com/mxshop-next/internal/constants"
)

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
	// Subjects 启动时直接归入该角色的主体
	Subjects []string
}

// BuiltinRoleSeeds 系统预置角色矩阵（父角色在前）
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: constants.RoleGuest,
			Policies: []Policy{
				{Object: "/goods", Action: "GET"},
				{Object: "/goods/:id", Action: "GET"},
				{Object: "/categorys", Action: "GET"},
				{Object: "/categorys/:id", Action: "GET"},
				{Object: "/code", Action: "POST"},
				{Object: "/users", Action: "POST"},
				{Object: "/login", Action: "POST"},
				{Object: "/login/refresh", Action: "POST"},
				{Object: "/logout", Action: "POST"},
				{Object: "/captcha/image", Action: "GET"},
			},
			Subjects: []string{SubjectAnonymous},
		},
		{
			Role:     constants.RoleMember,
			Inherits: []string{constants.RoleGuest},
			Policies: []Policy{
				{Object: "/users/me", Action: "*"},
				{Object: "/shopcarts", Action: "*"},
				{Object: "/shopcarts/:product_id", Action: "*"},
				{Object: "/orders", Action: "*"},
				{Object: "/orders/:id", Action: "*"},
				{Object: "/userfavs", Action: "*"},
				{Object: "/userfavs/:product_id", Action: "*"},
				{Object: "/messages", Action: "*"},
				{Object: "/messages/:id", Action: "*"},
				{Object: "/address", Action: "*"},
				{Object: "/address/:id", Action: "*"},
			},
		},
		{
			Role:     constants.RoleCatalogAdmin,
			Inherits: []string{constants.RoleMember},
			Policies: []Policy{
				{Object: "/goods", Action: "POST"},
			},
		},
	}
}

// BootstrapBuiltinRoles 初始化预置角色与默认策略（幂等）
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := s.EnsureRole(seed.Role)
		if err != nil {
			return err
		}

		for _, parent := range seed.Inherits {
			parentRole, err := NormalizeRole(parent)
			if err != nil {
				return err
			}
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, parentRole); err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}

		for _, subject := range seed.Subjects {
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", subject, role); err != nil {
				return fmt.Errorf("link builtin subject failed: %w", err)
			}
		}
	}
	return nil
}
