package jwt

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/miniblog-dev/miniblog/internal/domain"
	internal_errors "github.com/miniblog-dev/miniblog/internal/errors"
	"github.com/miniblog-dev/miniblog/internal/logger"
)

type JwtService interface {
	NewToken(user domain.User) (string, error)
	DecodeToken(jwtStr string) (domain.Claims, error)
}

// Jwt issues and validates stateless HS256 access tokens. Validity is fully
// determined by signature and expiry: there is no revocation list, so claims
// (role, name) can lag behind the database until the token expires.
type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(user domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{}
	claims["uid"] = user.Id
	claims["email"] = user.Email
	claims["role"] = string(user.Role)
	claims["name"] = user.Name
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", err
	}

	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (domain.Claims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		// Verify signing algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("Unexpected signing method: %v", token.Header["alg"]), StatusCode: http.StatusUnauthorized}
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		// Covers malformed structure, bad signature and expired tokens
		return domain.Claims{}, internal_errors.Unauthorized("Invalid access token")
	}
	if !token.Valid {
		return domain.Claims{}, internal_errors.Unauthorized("Invalid access token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Claims{}, internal_errors.Unauthorized("Invalid access token")
	}

	return claimsFromMap(mapClaims)
}

func claimsFromMap(m jwt.MapClaims) (domain.Claims, error) {
	uid, ok := m["uid"].(float64)
	if !ok {
		return domain.Claims{}, internal_errors.Unauthorized("Invalid token claims")
	}
	email, ok := m["email"].(string)
	if !ok {
		return domain.Claims{}, internal_errors.Unauthorized("Invalid token claims")
	}
	roleStr, ok := m["role"].(string)
	if !ok || !domain.Role(roleStr).Valid() {
		return domain.Claims{}, internal_errors.Unauthorized("Invalid token claims")
	}
	name, ok := m["name"].(string)
	if !ok {
		return domain.Claims{}, internal_errors.Unauthorized("Invalid token claims")
	}

	return domain.Claims{
		UserId: domain.UserId(uid),
		Email:  email,
		Role:   domain.Role(roleStr),
		Name:   name,
	}, nil
}
