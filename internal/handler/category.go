package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/miniblog-dev/miniblog/internal/api"
	"github.com/miniblog-dev/miniblog/internal/utils"
)

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.GetAll()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NewCategoryListResponse(categories))
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	var body api.CategoryRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	categoryId, err := h.categories.Create(c, body.Name)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CreateCategoryResponse{Message: "Category created", CategoryId: categoryId})
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	categoryId, err := parseIdParam(chi.URLParam(r, "category"), "category id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.CategoryRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.categories.Update(c, categoryId, body.Name); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Category updated"})
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	c, ok := claims(w, r)
	if !ok {
		return
	}

	categoryId, err := parseIdParam(chi.URLParam(r, "category"), "category id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.categories.Delete(c, categoryId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Category deleted"})
}
