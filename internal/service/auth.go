package service

import (
	"strings"

	"github.com/miniblog-dev/miniblog/internal/domain"
	internal_errors "github.com/miniblog-dev/miniblog/internal/errors"
	"github.com/miniblog-dev/miniblog/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(name, email, password string) (domain.User, error)
	Login(email, password string) (string, error)
}

type AuthStorage interface {
	// SaveUserWithCredential must create both rows in a single transaction.
	SaveUserWithCredential(user domain.User, passwordHash string) (domain.User, error)
	UserByEmail(email domain.Email) (domain.User, error)
	Credential(userId domain.UserId) (domain.Credential, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

// Register creates a new identity with the default role. The password hash
// embeds its own salt and cost, so verification needs no extra parameters.
// Name/email uniqueness violations surface as a Conflict from storage.
func (a *Auth) Register(name, email, password string) (domain.User, error) {
	email = strings.ToLower(email)

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, err
	}

	user := domain.User{
		Name:     sanitizePlain(name),
		Email:    email,
		Role:     domain.RoleUser,
		IsActive: true,
	}

	saved, err := a.storage.SaveUserWithCredential(user, string(passHash))
	if err != nil {
		return domain.User{}, err
	}
	return saved, nil
}

// Login exchanges valid credentials for an access token. Unknown email,
// missing credential and wrong password all return the same opaque error so
// account existence does not leak. A deactivated account gets its own
// message: registration is public, so its existence is already known.
func (a *Auth) Login(email, password string) (string, error) {
	email = strings.ToLower(email)

	user, err := a.storage.UserByEmail(email)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return "", internal_errors.Unauthorized("Invalid credentials")
		}
		return "", err
	}

	cred, err := a.storage.Credential(user.Id)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			logger.Log.Error("user exists without credential", "user_id", user.Id)
			return "", internal_errors.Unauthorized("Invalid credentials")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", internal_errors.Unauthorized("Invalid credentials")
	}

	if !user.IsActive {
		return "", internal_errors.Unauthorized("Account deactivated")
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", err
	}

	return token, nil
}
