package setup

import (
	"github.com/miniblog-dev/miniblog/internal/config"
	"github.com/miniblog-dev/miniblog/internal/handler"
	"github.com/miniblog-dev/miniblog/internal/jwt"
	"github.com/miniblog-dev/miniblog/internal/middleware"
	"github.com/miniblog-dev/miniblog/internal/service"
	"github.com/miniblog-dev/miniblog/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Jwt            jwt.JwtService
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwtService)
	posts := service.NewPost(storage)
	comments := service.NewComment(storage, storage)
	categories := service.NewCategory(storage)
	users := service.NewUser(storage)
	stats := service.NewStats(storage)

	h := handler.New(auth, posts, comments, categories, users, stats)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(jwtService),
		Jwt:            jwtService,
	}, nil
}
