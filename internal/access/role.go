// Package access implements the role hierarchy and per-list permission
// resolution used by every mutating operation in the service layer.
package access

import (
	apperrors "pantry-planner-backend/internal/errors"
)

// Role is a user's effective role for a shopping list. Roles are totally
// ordered: NoAccess < Viewer < Editor < Admin < Owner. Owner is derived from
// the list's owner column and is never stored as a collaborator row.
type Role int

const (
	RoleNoAccess Role = iota
	RoleViewer
	RoleEditor
	RoleAdmin
	RoleOwner
)

// String returns the wire/storage form of the role
func (r Role) String() string {
	switch r {
	case RoleViewer:
		return "viewer"
	case RoleEditor:
		return "editor"
	case RoleAdmin:
		return "admin"
	case RoleOwner:
		return "owner"
	default:
		return "none"
	}
}

// ParseRole converts the stored string form of a collaborator role. Owner and
// NoAccess are not valid stored roles.
func ParseRole(s string) (Role, error) {
	switch s {
	case "viewer":
		return RoleViewer, nil
	case "editor":
		return RoleEditor, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleNoAccess, apperrors.ErrInvalidRole
	}
}

// Compare returns -1, 0 or 1 as a orders before, equal to or after b in the
// role hierarchy.
func Compare(a, b Role) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Meets reports whether the role satisfies the given minimum. NoAccess never
// meets any minimum, including NoAccess itself.
func (r Role) Meets(minimum Role) bool {
	if r == RoleNoAccess {
		return false
	}
	return Compare(r, minimum) >= 0
}

// CanView reports whether the role may read the list and its items
func (r Role) CanView() bool {
	return r.Meets(RoleViewer)
}

// CanEditItems reports whether the role may create and update items
func (r Role) CanEditItems() bool {
	return r.Meets(RoleEditor)
}

// CanToggleItems reports whether the role may check and uncheck items
func (r Role) CanToggleItems() bool {
	return r.Meets(RoleEditor)
}

// CanDeleteItems reports whether the role may delete items
func (r Role) CanDeleteItems() bool {
	return r.Meets(RoleEditor)
}

// CanEditListDetails reports whether the role may rename the list or change
// its budget, status or template flag
func (r Role) CanEditListDetails() bool {
	return r.Meets(RoleAdmin)
}

// CanDeleteList reports whether the role may delete the list
func (r Role) CanDeleteList() bool {
	return r.Meets(RoleAdmin)
}

// CanManageCollaborators reports whether the role may share the list and
// remove collaborators
func (r Role) CanManageCollaborators() bool {
	return r.Meets(RoleAdmin)
}

// CanChangeRoles reports whether the role may change collaborator roles
func (r Role) CanChangeRoles() bool {
	return r.Meets(RoleAdmin)
}

// CanLeave reports whether the user may leave the list. Only collaborators
// can leave; the owner cannot, and a user without access has nothing to leave.
func (r Role) CanLeave() bool {
	return r != RoleNoAccess && r != RoleOwner
}

// IsOwner reports whether the role is Owner
func (r Role) IsOwner() bool {
	return r == RoleOwner
}
