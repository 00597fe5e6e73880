package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_errors "github.com/miniblog-dev/miniblog/internal/errors"
)

type MockStatsStorage struct {
	CountPostsFunc      func() (int64, error)
	CountCommentsFunc   func() (int64, error)
	CountUsersFunc      func() (int64, error)
	CountPostsSinceFunc func(since time.Time) (int64, error)
}

func (m *MockStatsStorage) CountPosts() (int64, error) {
	if m.CountPostsFunc != nil {
		return m.CountPostsFunc()
	}
	return 10, nil
}

func (m *MockStatsStorage) CountComments() (int64, error) {
	if m.CountCommentsFunc != nil {
		return m.CountCommentsFunc()
	}
	return 20, nil
}

func (m *MockStatsStorage) CountUsers() (int64, error) {
	if m.CountUsersFunc != nil {
		return m.CountUsersFunc()
	}
	return 5, nil
}

func (m *MockStatsStorage) CountPostsSince(since time.Time) (int64, error) {
	if m.CountPostsSinceFunc != nil {
		return m.CountPostsSinceFunc(since)
	}
	return 3, nil
}

func TestStatsGet_UserForbidden(t *testing.T) {
	stats := NewStats(&MockStatsStorage{})

	_, err := stats.Get(userClaims(1))
	assert.True(t, internal_errors.IsForbidden(err))
}

func TestStatsGet_ModeratorGetsBaseCounters(t *testing.T) {
	stats := NewStats(&MockStatsStorage{})

	got, err := stats.Get(moderatorClaims(1))
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.TotalPosts)
	assert.Equal(t, int64(20), got.TotalComments)
	assert.Equal(t, int64(5), got.TotalUsers)
	assert.Nil(t, got.PostsLastWeek, "weekly counter is admin-only")
}

func TestStatsGet_AdminGetsWeeklyCounter(t *testing.T) {
	fixedNow := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	var gotSince time.Time
	storage := &MockStatsStorage{
		CountPostsSinceFunc: func(since time.Time) (int64, error) {
			gotSince = since
			return 3, nil
		},
	}
	stats := NewStats(storage)
	stats.now = func() time.Time { return fixedNow }

	got, err := stats.Get(adminClaims(1))
	require.NoError(t, err)
	require.NotNil(t, got.PostsLastWeek)
	assert.Equal(t, int64(3), *got.PostsLastWeek)
	assert.Equal(t, fixedNow.AddDate(0, 0, -7), gotSince)
}
