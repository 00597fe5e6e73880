package service

import (
	"github.com/miniblog-dev/miniblog/internal/domain"
	"github.com/miniblog-dev/miniblog/internal/policy"
)

type CategoryService interface {
	Create(claims domain.Claims, name string) (domain.CategoryId, error)
	GetAll() ([]domain.Category, error)
	Update(claims domain.Claims, id domain.CategoryId, name string) error
	Delete(claims domain.Claims, id domain.CategoryId) error
}

type CategoryStorage interface {
	SaveCategory(name string) (domain.CategoryId, error)
	Category(id domain.CategoryId) (domain.Category, error)
	Categories() ([]domain.Category, error)
	UpdateCategory(id domain.CategoryId, name string) error
	DeleteCategory(id domain.CategoryId) error
}

type Category struct {
	storage CategoryStorage
}

func NewCategory(storage CategoryStorage) *Category {
	return &Category{storage: storage}
}

func (c *Category) Create(claims domain.Claims, name string) (domain.CategoryId, error) {
	if err := policy.Decide(claims, 0, policy.CategoryCreate); err != nil {
		return 0, err
	}
	return c.storage.SaveCategory(sanitizePlain(name))
}

func (c *Category) GetAll() ([]domain.Category, error) {
	return c.storage.Categories()
}

func (c *Category) Update(claims domain.Claims, id domain.CategoryId, name string) error {
	if _, err := c.storage.Category(id); err != nil {
		return err
	}
	if err := policy.Decide(claims, 0, policy.CategoryEdit); err != nil {
		return err
	}
	return c.storage.UpdateCategory(id, sanitizePlain(name))
}

func (c *Category) Delete(claims domain.Claims, id domain.CategoryId) error {
	if _, err := c.storage.Category(id); err != nil {
		return err
	}
	if err := policy.Decide(claims, 0, policy.CategoryDelete); err != nil {
		return err
	}
	return c.storage.DeleteCategory(id)
}
