package policy

import (
	"testing"

	"github.com/miniblog-dev/miniblog/internal/domain"
	internal_errors "github.com/miniblog-dev/miniblog/internal/errors"
	"github.com/stretchr/testify/assert"
)

func claims(id domain.UserId, role domain.Role) domain.Claims {
	return domain.Claims{UserId: id, Email: "x@x.com", Role: role, Name: "x"}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name    string
		claims  domain.Claims
		ownerId domain.UserId
		action  Action
		allowed bool
	}{
		// Post ownership
		{"user edits own post", claims(7, domain.RoleUser), 7, PostEdit, true},
		{"user edits foreign post", claims(5, domain.RoleUser), 7, PostEdit, false},
		{"admin edits foreign post", claims(5, domain.RoleAdmin), 7, PostEdit, true},
		{"moderator edits foreign post", claims(5, domain.RoleModerator), 7, PostEdit, false},
		{"user deletes own post", claims(7, domain.RoleUser), 7, PostDelete, true},
		{"user deletes foreign post", claims(5, domain.RoleUser), 7, PostDelete, false},
		{"admin deletes foreign post", claims(5, domain.RoleAdmin), 7, PostDelete, true},
		{"any authenticated creates post", claims(5, domain.RoleUser), 0, PostCreate, true},

		// Comment asymmetry: moderators delete anything but edit nothing foreign,
		// and comment edit has no admin bypass either.
		{"moderator deletes foreign comment", claims(5, domain.RoleModerator), 7, CommentDelete, true},
		{"admin deletes foreign comment", claims(5, domain.RoleAdmin), 7, CommentDelete, true},
		{"owner deletes own comment", claims(7, domain.RoleUser), 7, CommentDelete, true},
		{"user deletes foreign comment", claims(5, domain.RoleUser), 7, CommentDelete, false},
		{"moderator edits foreign comment", claims(5, domain.RoleModerator), 7, CommentEdit, false},
		{"admin edits foreign comment", claims(5, domain.RoleAdmin), 7, CommentEdit, false},
		{"owner edits own comment", claims(7, domain.RoleUser), 7, CommentEdit, true},
		{"any authenticated creates comment", claims(5, domain.RoleUser), 0, CommentCreate, true},

		// Category role gates
		{"user creates category", claims(5, domain.RoleUser), 0, CategoryCreate, false},
		{"moderator creates category", claims(5, domain.RoleModerator), 0, CategoryCreate, true},
		{"admin creates category", claims(5, domain.RoleAdmin), 0, CategoryCreate, true},
		{"moderator edits category", claims(5, domain.RoleModerator), 0, CategoryEdit, true},
		{"moderator deletes category", claims(5, domain.RoleModerator), 0, CategoryDelete, false},
		{"admin deletes category", claims(5, domain.RoleAdmin), 0, CategoryDelete, true},

		// User administration
		{"user lists users", claims(5, domain.RoleUser), 0, UserList, false},
		{"admin lists users", claims(5, domain.RoleAdmin), 0, UserList, true},
		{"user views self", claims(5, domain.RoleUser), 5, UserView, true},
		{"user views other user", claims(5, domain.RoleUser), 7, UserView, false},
		{"moderator views other user", claims(5, domain.RoleModerator), 7, UserView, false},
		{"admin views other user", claims(5, domain.RoleAdmin), 7, UserView, true},
		{"moderator deactivates user", claims(5, domain.RoleModerator), 7, UserDeactivate, false},
		{"admin deactivates user", claims(5, domain.RoleAdmin), 7, UserDeactivate, true},
		{"moderator changes role", claims(5, domain.RoleModerator), 7, UserChangeRole, false},
		{"admin changes role", claims(5, domain.RoleAdmin), 7, UserChangeRole, true},

		// Stats
		{"user views stats", claims(5, domain.RoleUser), 0, StatsView, false},
		{"moderator views stats", claims(5, domain.RoleModerator), 0, StatsView, true},
		{"admin views stats", claims(5, domain.RoleAdmin), 0, StatsView, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Decide(tt.claims, tt.ownerId, tt.action)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, internal_errors.IsForbidden(err), "deny must map to 403, got %v", err)
			}
		})
	}
}

func TestDecideUnknownActionFailsClosed(t *testing.T) {
	err := Decide(claims(1, domain.RoleAdmin), 1, Action("post.transmogrify"))
	assert.Error(t, err)
	assert.True(t, internal_errors.IsForbidden(err))
}
