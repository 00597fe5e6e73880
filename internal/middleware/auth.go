package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/miniblog-dev/miniblog/internal/domain"
	internal_errors "github.com/miniblog-dev/miniblog/internal/errors"
	"github.com/miniblog-dev/miniblog/internal/jwt"
	"github.com/miniblog-dev/miniblog/internal/utils"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

type Auth struct {
	jwtService jwt.JwtService
}

func NewAuth(jwtService jwt.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth requires a valid bearer token and stores its claims in the
// request context. Role and ownership checks happen later, in the policy:
// this middleware only answers "who is calling", never "may they".
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := a.extractClaims(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *Auth) extractClaims(r *http.Request) (domain.Claims, error) {
	tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || tokenString == "" {
		return domain.Claims{}, internal_errors.Unauthorized("Please sign-in")
	}

	return a.jwtService.DecodeToken(tokenString)
}

// GetClaimsFromContext retrieves the token claims placed by NeedAuth.
func GetClaimsFromContext(r *http.Request) (domain.Claims, bool) {
	claims, ok := r.Context().Value(UserClaimsKey).(domain.Claims)
	return claims, ok
}
