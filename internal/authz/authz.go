// Package authz centralizes the client-side authorization policy.
//
// Guards answer "is anyone logged in"; this package answers "may this
// role perform this action". Pages and commands consult CanAccess
// uniformly instead of scattering role comparisons.
//
// The server remains authoritative for every mutation; these checks
// only decide what the client offers, they are not a security boundary.
package authz

import (
	"fmt"

	"github.com/Devduttshar/eventPlanner/internal/errors"
	"github.com/Devduttshar/eventPlanner/internal/session"
)

// Standard action constants for the event resource.
const (
	ActionList   = "event:list"
	ActionListMy = "event:list-my"
	ActionCreate = "event:create"
	ActionUpdate = "event:update"
	ActionDelete = "event:delete"
	ActionRSVP   = "event:rsvp"
	ActionRsvps  = "event:rsvps"
	ActionReport = "event:report"
)

// adminOnly lists actions reserved for the admin role.
var adminOnly = map[string]bool{
	ActionCreate: true,
	ActionUpdate: true,
	ActionDelete: true,
	ActionRsvps:  true,
	ActionReport: true,
}

// authenticatedOnly lists actions any logged-in role may perform.
var authenticatedOnly = map[string]bool{
	ActionListMy: true,
	ActionRSVP:   true,
}

// CanAccess reports whether the given role may perform the action.
// An empty role is the logged-out state.
func CanAccess(role session.Role, action string) bool {
	switch {
	case adminOnly[action]:
		return role == session.RoleAdmin
	case authenticatedOnly[action]:
		return role.Valid()
	case action == ActionList:
		return true
	default:
		return false
	}
}

// RequireAdmin returns an error unless the role is admin.
// Used by admin-only pages as their page-level check.
func RequireAdmin(role session.Role, action string) error {
	if role == session.RoleAdmin {
		return nil
	}
	return errors.NewRoleDeniedError(action)
}

// FormatAction formats an action with a resource type prefix.
//
// Example: FormatAction("event", "delete") => "event:delete"
func FormatAction(resourceType, action string) string {
	return fmt.Sprintf("%s:%s", resourceType, action)
}
