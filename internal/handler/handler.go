package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/forumgate-dev/forumgate/internal/config"
	"github.com/forumgate-dev/forumgate/internal/domain"
	"github.com/forumgate-dev/forumgate/internal/logger"
)

// Forum is the slice of the forum client the handlers consume. Satisfied by
// *forum.Client; mocked in tests.
type Forum interface {
	GetUser(ctx context.Context, username string) (json.RawMessage, error)
	CreateUser(ctx context.Context, name string, userId domain.UserId, handle, email, password string) (json.RawMessage, error)
	ChangeTrustLevel(ctx context.Context, userId domain.UserId, level domain.TrustLevel) (json.RawMessage, error)
	CreatePrivatePost(ctx context.Context, title, body string, targetUsernames []string, owner string) (*domain.PrivateMessageRef, error)
	GetTopic(ctx context.Context, username string, topicId domain.TopicId) (json.RawMessage, error)
	UpdateTopic(ctx context.Context, username string, topicId domain.TopicId, title string) (json.RawMessage, error)
	DeleteTopic(ctx context.Context, username string, topicId domain.TopicId) error
	GrantAccess(ctx context.Context, username string, topicId domain.TopicId, invitee string) (json.RawMessage, error)
	RemoveAccess(ctx context.Context, username string, topicId domain.TopicId) (json.RawMessage, error)
	CreatePost(ctx context.Context, username, body string, topicId domain.TopicId, responseTo *domain.PostId) (json.RawMessage, error)
	GetPost(ctx context.Context, username string, postId domain.PostId) (json.RawMessage, error)
	GetPosts(ctx context.Context, username string, topicId domain.TopicId, postIds []domain.PostId) (json.RawMessage, error)
	UpdatePost(ctx context.Context, username string, postId domain.PostId, body string) (json.RawMessage, error)
	DeletePost(ctx context.Context, username string, postId domain.PostId) error
	UploadImage(ctx context.Context, username string, file *domain.PendingUpload) (json.RawMessage, error)
	MarkTopicPostsRead(ctx context.Context, username string, topicId domain.TopicId, postIds []domain.PostId) error
	Ping(ctx context.Context) error
}

type Handler struct {
	forum Forum
	cfg   *config.Config
}

func New(forum Forum, cfg *config.Config) *Handler {
	return &Handler{forum: forum, cfg: cfg}
}

// writeRaw relays an upstream JSON payload to the caller unchanged.
func writeRaw(w http.ResponseWriter, statusCode int, payload json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(payload); err != nil {
		logger.Log.Error("failed to write response", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
