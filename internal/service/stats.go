package service

import (
	"time"

	"github.com/miniblog-dev/miniblog/internal/domain"
	"github.com/miniblog-dev/miniblog/internal/policy"
)

type StatsService interface {
	Get(claims domain.Claims) (domain.Stats, error)
}

type StatsStorage interface {
	CountPosts() (int64, error)
	CountComments() (int64, error)
	CountUsers() (int64, error)
	CountPostsSince(since time.Time) (int64, error)
}

type Stats struct {
	storage StatsStorage
	now     func() time.Time
}

func NewStats(storage StatsStorage) *Stats {
	return &Stats{storage: storage, now: time.Now}
}

func (s *Stats) Get(claims domain.Claims) (domain.Stats, error) {
	if err := policy.Decide(claims, 0, policy.StatsView); err != nil {
		return domain.Stats{}, err
	}

	var stats domain.Stats
	var err error
	if stats.TotalPosts, err = s.storage.CountPosts(); err != nil {
		return domain.Stats{}, err
	}
	if stats.TotalComments, err = s.storage.CountComments(); err != nil {
		return domain.Stats{}, err
	}
	if stats.TotalUsers, err = s.storage.CountUsers(); err != nil {
		return domain.Stats{}, err
	}

	// Extended fields are admin-only
	if claims.Role == domain.RoleAdmin {
		lastWeek, err := s.storage.CountPostsSince(s.now().AddDate(0, 0, -7))
		if err != nil {
			return domain.Stats{}, err
		}
		stats.PostsLastWeek = &lastWeek
	}

	return stats, nil
}
