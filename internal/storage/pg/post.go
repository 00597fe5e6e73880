package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/miniblog-dev/miniblog/internal/domain"
	internal_errors "github.com/miniblog-dev/miniblog/internal/errors"
)

// =========================================================================
// Public methods
// =========================================================================

func (s *Storage) SavePost(data domain.PostCreationData) (domain.PostId, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var id domain.PostId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = s.savePost(tx, data)
		if err != nil {
			return err
		}
		return s.setPostCategories(tx, id, data.CategoryIds)
	})
	return id, err
}

func (s *Storage) Post(id domain.PostId) (domain.Post, error) {
	return s.post(s.db, id)
}

// PublishedPosts returns published posts, newest first.
func (s *Storage) PublishedPosts() ([]domain.Post, error) {
	return s.publishedPosts(s.db)
}

func (s *Storage) UpdatePost(id domain.PostId, update domain.PostUpdate) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.updatePost(tx, id, update); err != nil {
			return err
		}
		if update.CategoryIds == nil {
			return nil
		}
		if _, err := tx.Exec("DELETE FROM post_categories WHERE post_id = $1", id); err != nil {
			return fmt.Errorf("failed to clear post categories: %w", err)
		}
		return s.setPostCategories(tx, id, *update.CategoryIds)
	})
}

func (s *Storage) DeletePost(id domain.PostId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deletePost(tx, id)
	})
}

// =========================================================================
// Internal methods
// =========================================================================

func (s *Storage) savePost(q Querier, data domain.PostCreationData) (domain.PostId, error) {
	var id domain.PostId
	err := q.QueryRow(`
        INSERT INTO posts(title, content, user_id)
        VALUES($1, $2, $3)
        RETURNING id`,
		data.Title, data.Content, data.AuthorId,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert post: %w", err)
	}
	return id, nil
}

func (s *Storage) post(q Querier, id domain.PostId) (domain.Post, error) {
	var p domain.Post
	var author domain.Author
	err := q.QueryRow(`
        SELECT p.id, p.title, p.content, p.is_published, p.user_id, p.created_at, p.updated_at,
               u.id, u.name
        FROM posts p
        JOIN users u ON u.id = p.user_id
        WHERE p.id = $1`, id,
	).Scan(&p.Id, &p.Title, &p.Content, &p.IsPublished, &p.AuthorId, &p.CreatedAt, &p.UpdatedAt,
		&author.Id, &author.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, internal_errors.NotFound("Post not found")
		}
		return domain.Post{}, fmt.Errorf("failed to query post: %w", err)
	}
	p.Author = &author

	if p.Categories, err = s.postCategories(q, id); err != nil {
		return domain.Post{}, err
	}
	return p, nil
}

// setPostCategories inserts tag rows for a post. An unknown category id
// trips the FK and surfaces as a 400.
func (s *Storage) setPostCategories(q Querier, postId domain.PostId, categoryIds []domain.CategoryId) error {
	for _, categoryId := range categoryIds {
		_, err := q.Exec("INSERT INTO post_categories(post_id, category_id) VALUES($1, $2) ON CONFLICT DO NOTHING",
			postId, categoryId)
		if err != nil {
			if mapped := mapPqError(err, "Post already tagged"); mapped != err {
				return internal_errors.BadRequest("Unknown category")
			}
			return fmt.Errorf("failed to tag post: %w", err)
		}
	}
	return nil
}

func (s *Storage) postCategories(q Querier, postId domain.PostId) ([]domain.Category, error) {
	rows, err := q.Query(`
        SELECT c.id, c.name
        FROM post_categories pc
        JOIN categories c ON c.id = pc.category_id
        WHERE pc.post_id = $1
        ORDER BY c.name`, postId)
	if err != nil {
		return nil, fmt.Errorf("failed to query post categories: %w", err)
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.Id, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan post category row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Storage) publishedPosts(q Querier) ([]domain.Post, error) {
	rows, err := q.Query(`
        SELECT p.id, p.title, p.content, p.is_published, p.user_id, p.created_at, p.updated_at,
               u.id, u.name
        FROM posts p
        JOIN users u ON u.id = p.user_id
        WHERE p.is_published = TRUE
        ORDER BY p.created_at DESC, p.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var out []domain.Post
	for rows.Next() {
		var p domain.Post
		var author domain.Author
		if err := rows.Scan(&p.Id, &p.Title, &p.Content, &p.IsPublished, &p.AuthorId, &p.CreatedAt, &p.UpdatedAt,
			&author.Id, &author.Name); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		p.Author = &author
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Storage) updatePost(q Querier, id domain.PostId, update domain.PostUpdate) error {
	// Nothing to change: don't bump updated_at on a no-op request.
	if update.Title == nil && update.Content == nil && update.CategoryIds == nil {
		return nil
	}

	setClauses := []string{"updated_at = now()"}
	args := []interface{}{}
	argPos := 1

	if update.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", argPos))
		args = append(args, *update.Title)
		argPos++
	}
	if update.Content != nil {
		setClauses = append(setClauses, fmt.Sprintf("content = $%d", argPos))
		args = append(args, *update.Content)
		argPos++
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE posts SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argPos)

	result, err := q.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return requireRowsAffected(result, "Post not found")
}

func (s *Storage) deletePost(q Querier, id domain.PostId) error {
	result, err := q.Exec("DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return requireRowsAffected(result, "Post not found")
}
