package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/miniblog-dev/miniblog/internal/domain"
	mw "github.com/miniblog-dev/miniblog/internal/middleware"
)

// --- Service mocks ---

type MockAuthService struct {
	RegisterFunc func(name, email, password string) (domain.User, error)
	LoginFunc    func(email, password string) (string, error)
}

func (m *MockAuthService) Register(name, email, password string) (domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(name, email, password)
	}
	return domain.User{Id: 1, Name: name, Email: email, Role: domain.RoleUser, IsActive: true}, nil
}

func (m *MockAuthService) Login(email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(email, password)
	}
	return "token", nil
}

type MockPostService struct {
	CreateFunc       func(claims domain.Claims, title, content string, categoryIds []domain.CategoryId) (domain.PostId, error)
	GetFunc          func(id domain.PostId) (domain.Post, error)
	GetPublishedFunc func() ([]domain.Post, error)
	UpdateFunc       func(claims domain.Claims, id domain.PostId, update domain.PostUpdate) error
	DeleteFunc       func(claims domain.Claims, id domain.PostId) error
}

func (m *MockPostService) Create(claims domain.Claims, title, content string, categoryIds []domain.CategoryId) (domain.PostId, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(claims, title, content, categoryIds)
	}
	return 1, nil
}

func (m *MockPostService) Get(id domain.PostId) (domain.Post, error) {
	if m.GetFunc != nil {
		return m.GetFunc(id)
	}
	return domain.Post{Id: id, Title: "t", Content: "c", IsPublished: true, AuthorId: 1}, nil
}

func (m *MockPostService) GetPublished() ([]domain.Post, error) {
	if m.GetPublishedFunc != nil {
		return m.GetPublishedFunc()
	}
	return nil, nil
}

func (m *MockPostService) Update(claims domain.Claims, id domain.PostId, update domain.PostUpdate) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(claims, id, update)
	}
	return nil
}

func (m *MockPostService) Delete(claims domain.Claims, id domain.PostId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(claims, id)
	}
	return nil
}

type MockCommentService struct {
	CreateFunc    func(claims domain.Claims, postId domain.PostId, text string) (domain.CommentId, error)
	GetByPostFunc func(postId domain.PostId) ([]domain.Comment, error)
	UpdateFunc    func(claims domain.Claims, id domain.CommentId, update domain.CommentUpdate) error
	DeleteFunc    func(claims domain.Claims, id domain.CommentId) error
}

func (m *MockCommentService) Create(claims domain.Claims, postId domain.PostId, text string) (domain.CommentId, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(claims, postId, text)
	}
	return 1, nil
}

func (m *MockCommentService) GetByPost(postId domain.PostId) ([]domain.Comment, error) {
	if m.GetByPostFunc != nil {
		return m.GetByPostFunc(postId)
	}
	return nil, nil
}

func (m *MockCommentService) Update(claims domain.Claims, id domain.CommentId, update domain.CommentUpdate) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(claims, id, update)
	}
	return nil
}

func (m *MockCommentService) Delete(claims domain.Claims, id domain.CommentId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(claims, id)
	}
	return nil
}

type MockCategoryService struct {
	CreateFunc func(claims domain.Claims, name string) (domain.CategoryId, error)
	GetAllFunc func() ([]domain.Category, error)
	UpdateFunc func(claims domain.Claims, id domain.CategoryId, name string) error
	DeleteFunc func(claims domain.Claims, id domain.CategoryId) error
}

func (m *MockCategoryService) Create(claims domain.Claims, name string) (domain.CategoryId, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(claims, name)
	}
	return 1, nil
}

func (m *MockCategoryService) GetAll() ([]domain.Category, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *MockCategoryService) Update(claims domain.Claims, id domain.CategoryId, name string) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(claims, id, name)
	}
	return nil
}

func (m *MockCategoryService) Delete(claims domain.Claims, id domain.CategoryId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(claims, id)
	}
	return nil
}

type MockUserService struct {
	ListFunc       func(claims domain.Claims) ([]domain.User, error)
	GetFunc        func(claims domain.Claims, id domain.UserId) (domain.User, error)
	MeFunc         func(claims domain.Claims) (domain.User, error)
	DeactivateFunc func(claims domain.Claims, id domain.UserId) error
	ChangeRoleFunc func(claims domain.Claims, id domain.UserId, role string) error
}

func (m *MockUserService) List(claims domain.Claims) ([]domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(claims)
	}
	return nil, nil
}

func (m *MockUserService) Get(claims domain.Claims, id domain.UserId) (domain.User, error) {
	if m.GetFunc != nil {
		return m.GetFunc(claims, id)
	}
	return domain.User{Id: id, Name: "u", Role: domain.RoleUser, IsActive: true, CreatedAt: time.Now()}, nil
}

func (m *MockUserService) Me(claims domain.Claims) (domain.User, error) {
	if m.MeFunc != nil {
		return m.MeFunc(claims)
	}
	return domain.User{Id: claims.UserId, Name: claims.Name, Role: claims.Role, IsActive: true}, nil
}

func (m *MockUserService) Deactivate(claims domain.Claims, id domain.UserId) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(claims, id)
	}
	return nil
}

func (m *MockUserService) ChangeRole(claims domain.Claims, id domain.UserId, role string) error {
	if m.ChangeRoleFunc != nil {
		return m.ChangeRoleFunc(claims, id, role)
	}
	return nil
}

type MockStatsService struct {
	GetFunc func(claims domain.Claims) (domain.Stats, error)
}

func (m *MockStatsService) Get(claims domain.Claims) (domain.Stats, error) {
	if m.GetFunc != nil {
		return m.GetFunc(claims)
	}
	return domain.Stats{TotalPosts: 1, TotalComments: 2, TotalUsers: 3}, nil
}

// --- Helpers ---

type testDeps struct {
	auth       *MockAuthService
	posts      *MockPostService
	comments   *MockCommentService
	categories *MockCategoryService
	users      *MockUserService
	stats      *MockStatsService
}

func newTestHandler() (*Handler, *testDeps) {
	deps := &testDeps{
		auth:       &MockAuthService{},
		posts:      &MockPostService{},
		comments:   &MockCommentService{},
		categories: &MockCategoryService{},
		users:      &MockUserService{},
		stats:      &MockStatsService{},
	}
	h := New(deps.auth, deps.posts, deps.comments, deps.categories, deps.users, deps.stats)
	return h, deps
}

// testRouter wires the handler into a chi router so URL params resolve.
func testRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Get("/posts", h.GetPosts)
	r.Post("/posts", h.CreatePost)
	r.Get("/posts/{post}", h.GetPost)
	r.Put("/posts/{post}", h.UpdatePost)
	r.Delete("/posts/{post}", h.DeletePost)
	r.Get("/posts/{post}/comments", h.GetComments)
	r.Post("/posts/{post}/comments", h.CreateComment)
	r.Put("/comments/{comment}", h.UpdateComment)
	r.Delete("/comments/{comment}", h.DeleteComment)
	r.Get("/categories", h.GetCategories)
	r.Post("/categories", h.CreateCategory)
	r.Put("/categories/{category}", h.UpdateCategory)
	r.Delete("/categories/{category}", h.DeleteCategory)
	r.Get("/users", h.GetUsers)
	r.Get("/users/me", h.GetMe)
	r.Get("/users/{user}", h.GetUser)
	r.Delete("/users/{user}", h.DeactivateUser)
	r.Patch("/users/{user}/role", h.UpdateUserRole)
	r.Get("/stats", h.GetStats)
	return r
}

func doRequest(t *testing.T, router chi.Router, method, target, body string, claims *domain.Claims) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), mw.UserClaimsKey, *claims))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func asUser(id domain.UserId) *domain.Claims {
	return &domain.Claims{UserId: id, Email: "user@example.com", Role: domain.RoleUser, Name: "user"}
}

func asAdmin(id domain.UserId) *domain.Claims {
	return &domain.Claims{UserId: id, Email: "admin@example.com", Role: domain.RoleAdmin, Name: "admin"}
}
