package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/miniblog-dev/miniblog/internal/api"
	"github.com/miniblog-dev/miniblog/internal/utils"
)

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	users, err := h.users.List(c)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NewUserListResponse(users))
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	user, err := h.users.Me(c)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NewUserResponse(user))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	userId, err := parseIdParam(chi.URLParam(r, "user"), "user id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.users.Get(c, userId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NewUserResponse(user))
}

// DeactivateUser is the delete surrogate: accounts are never hard-deleted.
func (h *Handler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	userId, err := parseIdParam(chi.URLParam(r, "user"), "user id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.users.Deactivate(c, userId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "User deactivated"})
}

func (h *Handler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	userId, err := parseIdParam(chi.URLParam(r, "user"), "user id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.UpdateRoleRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.users.ChangeRole(c, userId, body.Role); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Role updated"})
}
