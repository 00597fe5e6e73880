package pg

import (
	"fmt"
	"time"
)

func (s *Storage) CountPosts() (int64, error) {
	return s.count("posts")
}

func (s *Storage) CountComments() (int64, error) {
	return s.count("comments")
}

func (s *Storage) CountUsers() (int64, error) {
	return s.count("users")
}

func (s *Storage) CountPostsSince(since time.Time) (int64, error) {
	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM posts WHERE created_at >= $1", since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent posts: %w", err)
	}
	return n, nil
}

// count runs COUNT(*) over one of the fixed stats tables. The table name is
// never user input.
func (s *Storage) count(table string) (int64, error) {
	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}
