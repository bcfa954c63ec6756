package setup

import (
	"github.com/forumgate-dev/forumgate/internal/config"
	"github.com/forumgate-dev/forumgate/internal/forum"
	"github.com/forumgate-dev/forumgate/internal/handler"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Forum   *forum.Client
	Handler *handler.Handler
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) *Dependencies {
	client := forum.New(forum.Config{
		BaseURL:        cfg.Public.Forum.BaseURL,
		APIKey:         cfg.ForumAPIKey(),
		SystemUsername: cfg.Public.Forum.SystemUsername,
	}, cfg.IsAdmin)

	h := handler.New(client, cfg)

	return &Dependencies{
		Config:  cfg,
		Forum:   client,
		Handler: h,
	}
}
