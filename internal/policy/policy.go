// Package policy is the single place where role and ownership rules live.
// Mutating endpoints consult one shared table instead of re-deriving the
// checks ad hoc, so the rules cannot drift apart.
package policy

import (
	"fmt"

	"github.com/miniblog-dev/miniblog/internal/domain"
	internal_errors "github.com/miniblog-dev/miniblog/internal/errors"
)

type Action string

const (
	PostCreate Action = "post.create"
	PostEdit   Action = "post.edit"
	PostDelete Action = "post.delete"

	CommentCreate Action = "comment.create"
	CommentEdit   Action = "comment.edit"
	CommentDelete Action = "comment.delete"

	CategoryCreate Action = "category.create"
	CategoryEdit   Action = "category.edit"
	CategoryDelete Action = "category.delete"

	UserList       Action = "user.list"
	UserView       Action = "user.view"
	UserDeactivate Action = "user.deactivate"
	UserChangeRole Action = "user.change_role"

	StatsView Action = "stats.view"
)

// ownership describes which ownership override applies after the role gate.
type ownership int

const (
	// none: the role gate alone decides.
	none ownership = iota
	// ownerOrAdmin: resource owner may act; admin bypasses ownership.
	ownerOrAdmin
	// ownerOnly: strictly the owner, no admin bypass. Used for comment edit:
	// moderators may delete any comment but nobody edits another user's words.
	ownerOnly
	// ownerModeratorOrAdmin: owner plus both elevated roles.
	ownerModeratorOrAdmin
)

type rule struct {
	roles     []domain.Role // minimum role gate; empty means any authenticated caller
	ownership ownership
}

var rules = map[Action]rule{
	PostCreate: {},
	PostEdit:   {ownership: ownerOrAdmin},
	PostDelete: {ownership: ownerOrAdmin},

	CommentCreate: {},
	CommentEdit:   {ownership: ownerOnly},
	CommentDelete: {ownership: ownerModeratorOrAdmin},

	CategoryCreate: {roles: []domain.Role{domain.RoleModerator, domain.RoleAdmin}},
	CategoryEdit:   {roles: []domain.Role{domain.RoleModerator, domain.RoleAdmin}},
	CategoryDelete: {roles: []domain.Role{domain.RoleAdmin}},

	UserList:       {roles: []domain.Role{domain.RoleAdmin}},
	UserView:       {ownership: ownerOrAdmin},
	UserDeactivate: {roles: []domain.Role{domain.RoleAdmin}},
	UserChangeRole: {roles: []domain.Role{domain.RoleAdmin}},

	StatsView: {roles: []domain.Role{domain.RoleModerator, domain.RoleAdmin}},
}

// Decide reports whether the caller may perform action on a resource owned by
// ownerId. For actions without an ownership rule, ownerId is ignored.
// Pure function: no storage access, the caller resolves ownership first.
func Decide(claims domain.Claims, ownerId domain.UserId, action Action) error {
	r, ok := rules[action]
	if !ok {
		// Unknown actions fail closed.
		return internal_errors.Forbidden(fmt.Sprintf("Unknown action %q", action))
	}

	if len(r.roles) > 0 && !roleAllowed(claims.Role, r.roles) {
		return internal_errors.Forbidden("Access denied for this role")
	}

	switch r.ownership {
	case none:
		return nil
	case ownerOrAdmin:
		if claims.Role == domain.RoleAdmin || claims.UserId == ownerId {
			return nil
		}
	case ownerOnly:
		if claims.UserId == ownerId {
			return nil
		}
	case ownerModeratorOrAdmin:
		if claims.Role == domain.RoleAdmin || claims.Role == domain.RoleModerator || claims.UserId == ownerId {
			return nil
		}
	}
	return internal_errors.Forbidden("Not authorized")
}

func roleAllowed(role domain.Role, allowed []domain.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
