// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "github.com/canonical/supply-service/internal/types"

// RoleKind tags every stored role string with how it participates in tenant
// scoping. Tenant kinds belong to exactly one membership. Legacy kinds
// predate memberships and may be exempted from tenant scoping by
// configuration.
type RoleKind int

const (
	KindUnknown RoleKind = iota

	// Tenant kinds.
	KindRootAdmin
	KindTeamMember

	// Legacy kinds.
	KindAdmin
	KindUser
	KindOwner
)

func KindOf(role string) RoleKind {
	switch role {
	case types.RoleRootAdmin:
		return KindRootAdmin
	case types.RoleTeamMember:
		return KindTeamMember
	case types.RoleAdmin:
		return KindAdmin
	case types.RoleUser:
		return KindUser
	case types.RoleOwner:
		return KindOwner
	default:
		return KindUnknown
	}
}

// IsTenantScoped reports whether the kind is confined to a membership.
func (k RoleKind) IsTenantScoped() bool {
	return k == KindRootAdmin || k == KindTeamMember
}

// IsLegacy reports whether the kind predates memberships.
func (k RoleKind) IsLegacy() bool {
	return k == KindAdmin || k == KindUser || k == KindOwner
}

// IsOperator reports whether the kind may manage memberships platform-wide.
func (k RoleKind) IsOperator() bool {
	return k == KindAdmin
}

func (k RoleKind) String() string {
	switch k {
	case KindRootAdmin:
		return types.RoleRootAdmin
	case KindTeamMember:
		return types.RoleTeamMember
	case KindAdmin:
		return types.RoleAdmin
	case KindUser:
		return types.RoleUser
	case KindOwner:
		return types.RoleOwner
	default:
		return "unknown"
	}
}

// Permission selects one of the team-member capability flags.
type Permission int

const (
	PermViewRecipes Permission = iota
	PermViewIngredients
	PermRecommendChanges
	PermAddToOrders
)

// Allows evaluates a permission flag against a permission set.
func (p Permission) Allows(perms types.Permissions) bool {
	switch p {
	case PermViewRecipes:
		return perms.CanViewRecipes
	case PermViewIngredients:
		return perms.CanViewIngredients
	case PermRecommendChanges:
		return perms.CanRecommendChanges
	case PermAddToOrders:
		return perms.CanAddToOrders
	default:
		return false
	}
}
