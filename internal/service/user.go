package service

import (
	"github.com/miniblog-dev/miniblog/internal/domain"
	internal_errors "github.com/miniblog-dev/miniblog/internal/errors"
	"github.com/miniblog-dev/miniblog/internal/policy"
)

type UserService interface {
	List(claims domain.Claims) ([]domain.User, error)
	Get(claims domain.Claims, id domain.UserId) (domain.User, error)
	Me(claims domain.Claims) (domain.User, error)
	Deactivate(claims domain.Claims, id domain.UserId) error
	ChangeRole(claims domain.Claims, id domain.UserId, role string) error
}

type UserStorage interface {
	User(id domain.UserId) (domain.User, error)
	Users() ([]domain.User, error)
	DeactivateUser(id domain.UserId) error
	UpdateUserRole(id domain.UserId, role domain.Role) error
}

type User struct {
	storage UserStorage
}

func NewUser(storage UserStorage) *User {
	return &User{storage: storage}
}

func (u *User) List(claims domain.Claims) ([]domain.User, error) {
	if err := policy.Decide(claims, 0, policy.UserList); err != nil {
		return nil, err
	}
	return u.storage.Users()
}

func (u *User) Get(claims domain.Claims, id domain.UserId) (domain.User, error) {
	user, err := u.storage.User(id)
	if err != nil {
		return domain.User{}, err
	}
	if err := policy.Decide(claims, user.Id, policy.UserView); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (u *User) Me(claims domain.Claims) (domain.User, error) {
	return u.storage.User(claims.UserId)
}

// Deactivate flips is_active off; accounts are never hard-deleted.
func (u *User) Deactivate(claims domain.Claims, id domain.UserId) error {
	if _, err := u.storage.User(id); err != nil {
		return err
	}
	if err := policy.Decide(claims, id, policy.UserDeactivate); err != nil {
		return err
	}
	return u.storage.DeactivateUser(id)
}

// ChangeRole updates the stored role. Tokens issued before the change keep
// the old role claim until they expire; that staleness window is accepted.
func (u *User) ChangeRole(claims domain.Claims, id domain.UserId, role string) error {
	newRole := domain.Role(role)
	if !newRole.Valid() {
		return internal_errors.BadRequest("Invalid role")
	}
	if _, err := u.storage.User(id); err != nil {
		return err
	}
	if err := policy.Decide(claims, id, policy.UserChangeRole); err != nil {
		return err
	}
	return u.storage.UpdateUserRole(id, newRole)
}
