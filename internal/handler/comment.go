package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/miniblog-dev/miniblog/internal/api"
	"github.com/miniblog-dev/miniblog/internal/domain"
	"github.com/miniblog-dev/miniblog/internal/utils"
)

func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	postId, err := parseIdParam(chi.URLParam(r, "post"), "post id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	comments, err := h.comments.GetByPost(postId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NewCommentListResponse(comments))
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	postId, err := parseIdParam(chi.URLParam(r, "post"), "post id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.CreateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	commentId, err := h.comments.Create(c, postId, body.Text)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CreateCommentResponse{Message: "Comment created", CommentId: commentId})
}

func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	commentId, err := parseIdParam(chi.URLParam(r, "comment"), "comment id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.UpdateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.comments.Update(c, commentId, domain.CommentUpdate{Text: body.Text}); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Comment updated"})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	commentId, err := parseIdParam(chi.URLParam(r, "comment"), "comment id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.comments.Delete(c, commentId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Comment deleted"})
}
