package service

import (
	"github.com/miniblog-dev/miniblog/internal/domain"
	"github.com/miniblog-dev/miniblog/internal/policy"
)

type PostService interface {
	Create(claims domain.Claims, title, content string, categoryIds []domain.CategoryId) (domain.PostId, error)
	Get(id domain.PostId) (domain.Post, error)
	GetPublished() ([]domain.Post, error)
	Update(claims domain.Claims, id domain.PostId, update domain.PostUpdate) error
	Delete(claims domain.Claims, id domain.PostId) error
}

type PostStorage interface {
	SavePost(data domain.PostCreationData) (domain.PostId, error)
	Post(id domain.PostId) (domain.Post, error)
	PublishedPosts() ([]domain.Post, error)
	UpdatePost(id domain.PostId, update domain.PostUpdate) error
	DeletePost(id domain.PostId) error
}

type Post struct {
	storage PostStorage
}

func NewPost(storage PostStorage) *Post {
	return &Post{storage: storage}
}

func (p *Post) Create(claims domain.Claims, title, content string, categoryIds []domain.CategoryId) (domain.PostId, error) {
	if err := policy.Decide(claims, 0, policy.PostCreate); err != nil {
		return 0, err
	}
	return p.storage.SavePost(domain.PostCreationData{
		Title:       sanitizePlain(title),
		Content:     sanitizeContent(content),
		AuthorId:    claims.UserId,
		CategoryIds: categoryIds,
	})
}

func (p *Post) Get(id domain.PostId) (domain.Post, error) {
	return p.storage.Post(id)
}

func (p *Post) GetPublished() ([]domain.Post, error) {
	return p.storage.PublishedPosts()
}

// Update resolves the post before consulting the policy: a missing post is
// 404 for everyone, and only then may an existing one be 403.
func (p *Post) Update(claims domain.Claims, id domain.PostId, update domain.PostUpdate) error {
	post, err := p.storage.Post(id)
	if err != nil {
		return err
	}
	if err := policy.Decide(claims, post.AuthorId, policy.PostEdit); err != nil {
		return err
	}
	if update.Title != nil {
		t := sanitizePlain(*update.Title)
		update.Title = &t
	}
	if update.Content != nil {
		c := sanitizeContent(*update.Content)
		update.Content = &c
	}
	return p.storage.UpdatePost(id, update)
}

func (p *Post) Delete(claims domain.Claims, id domain.PostId) error {
	post, err := p.storage.Post(id)
	if err != nil {
		return err
	}
	if err := policy.Decide(claims, post.AuthorId, policy.PostDelete); err != nil {
		return err
	}
	return p.storage.DeletePost(id)
}
