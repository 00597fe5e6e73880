package domain

// Stats aggregates platform counters. PostsLastWeek is only populated for
// admin callers.
type Stats struct {
	TotalPosts    int64
	TotalComments int64
	TotalUsers    int64
	PostsLastWeek *int64
}
