package api

import (
	"time"

	"github.com/miniblog-dev/miniblog/internal/domain"
)

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

type UpdateCommentRequest struct {
	Text *string `json:"text,omitempty" validate:"omitempty,min=1"`
}

type CreateCommentResponse struct {
	Message   string           `json:"message"`
	CommentId domain.CommentId `json:"comment_id"`
}

type CommentResponse struct {
	Id        domain.CommentId `json:"id"`
	Text      string           `json:"text"`
	IsVisible bool             `json:"is_visible"`
	UserId    domain.UserId    `json:"user_id"`
	Author    *domain.Author   `json:"author,omitempty"`
	PostId    domain.PostId    `json:"post_id"`
	CreatedAt time.Time        `json:"created_at"`
}

func NewCommentResponse(c domain.Comment) CommentResponse {
	return CommentResponse{
		Id:        c.Id,
		Text:      c.Text,
		IsVisible: c.IsVisible,
		UserId:    c.AuthorId,
		Author:    c.Author,
		PostId:    c.PostId,
		CreatedAt: c.CreatedAt,
	}
}

func NewCommentListResponse(comments []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i, c := range comments {
		out[i] = NewCommentResponse(c)
	}
	return out
}
