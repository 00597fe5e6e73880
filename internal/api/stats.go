package api

import "github.com/miniblog-dev/miniblog/internal/domain"

// StatsResponse mirrors domain.Stats; posts_last_week is admin-only.
type StatsResponse struct {
	TotalPosts    int64  `json:"total_posts"`
	TotalComments int64  `json:"total_comments"`
	TotalUsers    int64  `json:"total_users"`
	PostsLastWeek *int64 `json:"posts_last_week,omitempty"`
}

func NewStatsResponse(s domain.Stats) StatsResponse {
	return StatsResponse{
		TotalPosts:    s.TotalPosts,
		TotalComments: s.TotalComments,
		TotalUsers:    s.TotalUsers,
		PostsLastWeek: s.PostsLastWeek,
	}
}
