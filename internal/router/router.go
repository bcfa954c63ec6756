package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/forumgate-dev/forumgate/internal/middleware"
	"github.com/forumgate-dev/forumgate/internal/middleware/metrics"
	rl "github.com/forumgate-dev/forumgate/internal/middleware/ratelimiter"
	"github.com/forumgate-dev/forumgate/internal/setup"
)

// New creates the chi router with all routes. One endpoint per forum
// operation; the heavy lifting happens in the forum client.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(metrics.Middleware)
	r.Use(mw.SecurityHeaders(deps.Config.Public.Secure))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Get("/healthz", deps.Handler.Health)
	r.Get("/readyz", deps.Handler.Ready)
	r.Handle("/metrics", promhttp.Handler())

	h := deps.Handler
	r.Route("/v1", func(r chi.Router) {
		// per-IP limit across the API surface
		r.Use(mw.RateLimit(rl.New(100, 100, 1*time.Hour), mw.GetIP))

		r.Get("/users/{username}", h.GetUser)
		r.Post("/users", h.CreateUser)
		r.Put("/users/{userId}/trust_level", h.ChangeTrustLevel)

		r.Post("/messages", h.CreateMessage)

		r.Get("/topics/{topic}", h.GetTopic)
		r.Put("/topics/{topic}", h.UpdateTopic)
		r.Delete("/topics/{topic}", h.DeleteTopic)
		r.Post("/topics/{topic}/access", h.GrantAccess)
		r.Delete("/topics/{topic}/access/{username}", h.RemoveAccess)
		r.Get("/topics/{topic}/posts", h.GetPosts)
		r.Post("/topics/{topic}/read", h.MarkTopicPostsRead)

		r.Post("/posts", h.CreatePost)
		r.Get("/posts/{post}", h.GetPost)
		r.Put("/posts/{post}", h.UpdatePost)
		r.Delete("/posts/{post}", h.DeletePost)

		r.Post("/uploads", h.UploadImage)
	})

	return r
}
