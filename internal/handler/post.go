package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/miniblog-dev/miniblog/internal/api"
	"github.com/miniblog-dev/miniblog/internal/domain"
	"github.com/miniblog-dev/miniblog/internal/utils"
)

func (h *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.GetPublished()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NewPostListResponse(posts))
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	var body api.CreatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	postId, err := h.posts.Create(c, body.Title, body.Content, body.CategoryIds)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CreatePostResponse{Message: "Post created", PostId: postId})
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	postId, err := parseIdParam(chi.URLParam(r, "post"), "post id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.posts.Get(postId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NewPostResponse(post))
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	postId, err := parseIdParam(chi.URLParam(r, "post"), "post id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.UpdatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	update := domain.PostUpdate{Title: body.Title, Content: body.Content, CategoryIds: body.CategoryIds}
	if err := h.posts.Update(c, postId, update); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Post updated"})
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	postId, err := parseIdParam(chi.URLParam(r, "post"), "post id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.posts.Delete(c, postId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Post deleted"})
}
