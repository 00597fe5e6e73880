package api

import (
	"time"

	"github.com/miniblog-dev/miniblog/internal/domain"
)

type CreatePostRequest struct {
	Title       string              `json:"title" validate:"required,min=1,max=100"`
	Content     string              `json:"content" validate:"required"`
	CategoryIds []domain.CategoryId `json:"category_ids,omitempty"`
}

// UpdatePostRequest is a partial update: nil fields stay unchanged.
type UpdatePostRequest struct {
	Title       *string              `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Content     *string              `json:"content,omitempty" validate:"omitempty,min=1"`
	CategoryIds *[]domain.CategoryId `json:"category_ids,omitempty"`
}

type CreatePostResponse struct {
	Message string        `json:"message"`
	PostId  domain.PostId `json:"post_id"`
}

type PostResponse struct {
	Id          domain.PostId      `json:"id"`
	Title       string             `json:"title"`
	Content     string             `json:"content"`
	IsPublished bool               `json:"is_published"`
	UserId      domain.UserId      `json:"user_id"`
	Author      *domain.Author     `json:"author,omitempty"`
	Categories  []CategoryResponse `json:"categories,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func NewPostResponse(p domain.Post) PostResponse {
	return PostResponse{
		Id:          p.Id,
		Title:       p.Title,
		Content:     p.Content,
		IsPublished: p.IsPublished,
		UserId:      p.AuthorId,
		Author:      p.Author,
		Categories:  NewCategoryListResponse(p.Categories),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewPostListResponse(posts []domain.Post) []PostResponse {
	out := make([]PostResponse, len(posts))
	for i, p := range posts {
		out[i] = NewPostResponse(p)
	}
	return out
}
