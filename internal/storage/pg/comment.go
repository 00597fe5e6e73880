package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/miniblog-dev/miniblog/internal/domain"
	internal_errors "github.com/miniblog-dev/miniblog/internal/errors"
)

// =========================================================================
// Public methods
// =========================================================================

func (s *Storage) SaveComment(data domain.CommentCreationData) (domain.CommentId, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var id domain.CommentId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = s.saveComment(tx, data)
		return err
	})
	return id, err
}

func (s *Storage) Comment(id domain.CommentId) (domain.Comment, error) {
	return s.comment(s.db, id)
}

// VisibleComments returns visible comments of one post, oldest first.
func (s *Storage) VisibleComments(postId domain.PostId) ([]domain.Comment, error) {
	return s.visibleComments(s.db, postId)
}

func (s *Storage) UpdateComment(id domain.CommentId, update domain.CommentUpdate) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.updateComment(tx, id, update)
	})
}

func (s *Storage) DeleteComment(id domain.CommentId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deleteComment(tx, id)
	})
}

// =========================================================================
// Internal methods
// =========================================================================

func (s *Storage) saveComment(q Querier, data domain.CommentCreationData) (domain.CommentId, error) {
	var id domain.CommentId
	err := q.QueryRow(`
        INSERT INTO comments(text, user_id, post_id)
        VALUES($1, $2, $3)
        RETURNING id`,
		data.Text, data.AuthorId, data.PostId,
	).Scan(&id)
	if err != nil {
		if mapped := mapPqError(err, "Comment conflicts with existing data"); mapped != err {
			return 0, mapped
		}
		return 0, fmt.Errorf("failed to insert comment: %w", err)
	}
	return id, nil
}

func (s *Storage) comment(q Querier, id domain.CommentId) (domain.Comment, error) {
	var c domain.Comment
	var author domain.Author
	err := q.QueryRow(`
        SELECT c.id, c.text, c.is_visible, c.user_id, c.post_id, c.created_at, c.updated_at,
               u.id, u.name
        FROM comments c
        JOIN users u ON u.id = c.user_id
        WHERE c.id = $1`, id,
	).Scan(&c.Id, &c.Text, &c.IsVisible, &c.AuthorId, &c.PostId, &c.CreatedAt, &c.UpdatedAt,
		&author.Id, &author.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, internal_errors.NotFound("Comment not found")
		}
		return domain.Comment{}, fmt.Errorf("failed to query comment: %w", err)
	}
	c.Author = &author
	return c, nil
}

func (s *Storage) visibleComments(q Querier, postId domain.PostId) ([]domain.Comment, error) {
	rows, err := q.Query(`
        SELECT c.id, c.text, c.is_visible, c.user_id, c.post_id, c.created_at, c.updated_at,
               u.id, u.name
        FROM comments c
        JOIN users u ON u.id = c.user_id
        WHERE c.post_id = $1 AND c.is_visible = TRUE
        ORDER BY c.created_at`, postId)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var out []domain.Comment
	for rows.Next() {
		var c domain.Comment
		var author domain.Author
		if err := rows.Scan(&c.Id, &c.Text, &c.IsVisible, &c.AuthorId, &c.PostId, &c.CreatedAt, &c.UpdatedAt,
			&author.Id, &author.Name); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		c.Author = &author
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Storage) updateComment(q Querier, id domain.CommentId, update domain.CommentUpdate) error {
	if update.Text == nil {
		return nil
	}
	result, err := q.Exec("UPDATE comments SET text = $1, updated_at = now() WHERE id = $2", *update.Text, id)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	return requireRowsAffected(result, "Comment not found")
}

func (s *Storage) deleteComment(q Querier, id domain.CommentId) error {
	result, err := q.Exec("DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return requireRowsAffected(result, "Comment not found")
}
