package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/miniblog-dev/miniblog/internal/domain"
	internal_errors "github.com/miniblog-dev/miniblog/internal/errors"
	"github.com/miniblog-dev/miniblog/internal/logger"
	mw "github.com/miniblog-dev/miniblog/internal/middleware"
	"github.com/miniblog-dev/miniblog/internal/service"
	"github.com/miniblog-dev/miniblog/internal/utils"
)

type Handler struct {
	auth       service.AuthService
	posts      service.PostService
	comments   service.CommentService
	categories service.CategoryService
	users      service.UserService
	stats      service.StatsService
}

func New(auth service.AuthService, posts service.PostService, comments service.CommentService,
	categories service.CategoryService, users service.UserService, stats service.StatsService) *Handler {
	return &Handler{auth, posts, comments, categories, users, stats}
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// parseIdParam parses an integer path parameter and returns a 400-mapped error
func parseIdParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, internal_errors.BadRequest("invalid " + paramName + ": must be an integer")
	}
	return val, nil
}

// claims fetches the token claims placed by the auth middleware. Routes that
// reach this without the middleware are a wiring error, answered as 401.
func claims(w http.ResponseWriter, r *http.Request) (domain.Claims, bool) {
	c, ok := mw.GetClaimsFromContext(r)
	if !ok {
		utils.WriteErrorAndStatusCode(w, internal_errors.Unauthorized("Not authenticated"))
		return domain.Claims{}, false
	}
	return c, true
}
