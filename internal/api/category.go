package api

import "github.com/miniblog-dev/miniblog/internal/domain"

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

type CreateCategoryResponse struct {
	Message    string            `json:"message"`
	CategoryId domain.CategoryId `json:"category_id"`
}

type CategoryResponse struct {
	Id   domain.CategoryId `json:"id"`
	Name string            `json:"name"`
}

func NewCategoryListResponse(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = CategoryResponse{Id: c.Id, Name: c.Name}
	}
	return out
}
