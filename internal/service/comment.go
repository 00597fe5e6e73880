package service

import (
	"github.com/miniblog-dev/miniblog/internal/domain"
	"github.com/miniblog-dev/miniblog/internal/policy"
)

type CommentService interface {
	Create(claims domain.Claims, postId domain.PostId, text string) (domain.CommentId, error)
	GetByPost(postId domain.PostId) ([]domain.Comment, error)
	Update(claims domain.Claims, id domain.CommentId, update domain.CommentUpdate) error
	Delete(claims domain.Claims, id domain.CommentId) error
}

type CommentStorage interface {
	SaveComment(data domain.CommentCreationData) (domain.CommentId, error)
	Comment(id domain.CommentId) (domain.Comment, error)
	VisibleComments(postId domain.PostId) ([]domain.Comment, error)
	UpdateComment(id domain.CommentId, update domain.CommentUpdate) error
	DeleteComment(id domain.CommentId) error
}

type Comment struct {
	storage CommentStorage
	posts   PostStorage
}

func NewComment(storage CommentStorage, posts PostStorage) *Comment {
	return &Comment{storage: storage, posts: posts}
}

func (c *Comment) Create(claims domain.Claims, postId domain.PostId, text string) (domain.CommentId, error) {
	if err := policy.Decide(claims, 0, policy.CommentCreate); err != nil {
		return 0, err
	}
	// Commenting on a missing post is 404, not a dangling FK error
	if _, err := c.posts.Post(postId); err != nil {
		return 0, err
	}
	return c.storage.SaveComment(domain.CommentCreationData{
		Text:     sanitizePlain(text),
		AuthorId: claims.UserId,
		PostId:   postId,
	})
}

func (c *Comment) GetByPost(postId domain.PostId) ([]domain.Comment, error) {
	if _, err := c.posts.Post(postId); err != nil {
		return nil, err
	}
	return c.storage.VisibleComments(postId)
}

// Update is owner-only. Admins do not bypass ownership here: moderators may
// remove any comment, but nobody rewrites another user's words.
func (c *Comment) Update(claims domain.Claims, id domain.CommentId, update domain.CommentUpdate) error {
	comment, err := c.storage.Comment(id)
	if err != nil {
		return err
	}
	if err := policy.Decide(claims, comment.AuthorId, policy.CommentEdit); err != nil {
		return err
	}
	if update.Text != nil {
		t := sanitizePlain(*update.Text)
		update.Text = &t
	}
	return c.storage.UpdateComment(id, update)
}

func (c *Comment) Delete(claims domain.Claims, id domain.CommentId) error {
	comment, err := c.storage.Comment(id)
	if err != nil {
		return err
	}
	if err := policy.Decide(claims, comment.AuthorId, policy.CommentDelete); err != nil {
		return err
	}
	return c.storage.DeleteComment(id)
}
