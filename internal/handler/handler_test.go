package handler

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/forumgate-dev/forumgate/internal/config"
	"github.com/forumgate-dev/forumgate/internal/domain"
)

// MockForum implements the Forum interface with overridable function fields.
type MockForum struct {
	MockGetUser            func(ctx context.Context, username string) (json.RawMessage, error)
	MockCreateUser         func(ctx context.Context, name string, userId domain.UserId, handle, email, password string) (json.RawMessage, error)
	MockChangeTrustLevel   func(ctx context.Context, userId domain.UserId, level domain.TrustLevel) (json.RawMessage, error)
	MockCreatePrivatePost  func(ctx context.Context, title, body string, targetUsernames []string, owner string) (*domain.PrivateMessageRef, error)
	MockGetTopic           func(ctx context.Context, username string, topicId domain.TopicId) (json.RawMessage, error)
	MockUpdateTopic        func(ctx context.Context, username string, topicId domain.TopicId, title string) (json.RawMessage, error)
	MockDeleteTopic        func(ctx context.Context, username string, topicId domain.TopicId) error
	MockGrantAccess        func(ctx context.Context, username string, topicId domain.TopicId, invitee string) (json.RawMessage, error)
	MockRemoveAccess       func(ctx context.Context, username string, topicId domain.TopicId) (json.RawMessage, error)
	MockCreatePost         func(ctx context.Context, username, body string, topicId domain.TopicId, responseTo *domain.PostId) (json.RawMessage, error)
	MockGetPost            func(ctx context.Context, username string, postId domain.PostId) (json.RawMessage, error)
	MockGetPosts           func(ctx context.Context, username string, topicId domain.TopicId, postIds []domain.PostId) (json.RawMessage, error)
	MockUpdatePost         func(ctx context.Context, username string, postId domain.PostId, body string) (json.RawMessage, error)
	MockDeletePost         func(ctx context.Context, username string, postId domain.PostId) error
	MockUploadImage        func(ctx context.Context, username string, file *domain.PendingUpload) (json.RawMessage, error)
	MockMarkTopicPostsRead func(ctx context.Context, username string, topicId domain.TopicId, postIds []domain.PostId) error
	MockPing               func(ctx context.Context) error
}

var emptyPayload = json.RawMessage(`{}`)

func (m *MockForum) GetUser(ctx context.Context, username string) (json.RawMessage, error) {
	if m.MockGetUser != nil {
		return m.MockGetUser(ctx, username)
	}
	return emptyPayload, nil
}

func (m *MockForum) CreateUser(ctx context.Context, name string, userId domain.UserId, handle, email, password string) (json.RawMessage, error) {
	if m.MockCreateUser != nil {
		return m.MockCreateUser(ctx, name, userId, handle, email, password)
	}
	return emptyPayload, nil
}

func (m *MockForum) ChangeTrustLevel(ctx context.Context, userId domain.UserId, level domain.TrustLevel) (json.RawMessage, error) {
	if m.MockChangeTrustLevel != nil {
		return m.MockChangeTrustLevel(ctx, userId, level)
	}
	return emptyPayload, nil
}

func (m *MockForum) CreatePrivatePost(ctx context.Context, title, body string, targetUsernames []string, owner string) (*domain.PrivateMessageRef, error) {
	if m.MockCreatePrivatePost != nil {
		return m.MockCreatePrivatePost(ctx, title, body, targetUsernames, owner)
	}
	return &domain.PrivateMessageRef{}, nil
}

func (m *MockForum) GetTopic(ctx context.Context, username string, topicId domain.TopicId) (json.RawMessage, error) {
	if m.MockGetTopic != nil {
		return m.MockGetTopic(ctx, username, topicId)
	}
	return emptyPayload, nil
}

func (m *MockForum) UpdateTopic(ctx context.Context, username string, topicId domain.TopicId, title string) (json.RawMessage, error) {
	if m.MockUpdateTopic != nil {
		return m.MockUpdateTopic(ctx, username, topicId, title)
	}
	return emptyPayload, nil
}

func (m *MockForum) DeleteTopic(ctx context.Context, username string, topicId domain.TopicId) error {
	if m.MockDeleteTopic != nil {
		return m.MockDeleteTopic(ctx, username, topicId)
	}
	return nil
}

func (m *MockForum) GrantAccess(ctx context.Context, username string, topicId domain.TopicId, invitee string) (json.RawMessage, error) {
	if m.MockGrantAccess != nil {
		return m.MockGrantAccess(ctx, username, topicId, invitee)
	}
	return emptyPayload, nil
}

func (m *MockForum) RemoveAccess(ctx context.Context, username string, topicId domain.TopicId) (json.RawMessage, error) {
	if m.MockRemoveAccess != nil {
		return m.MockRemoveAccess(ctx, username, topicId)
	}
	return emptyPayload, nil
}

func (m *MockForum) CreatePost(ctx context.Context, username, body string, topicId domain.TopicId, responseTo *domain.PostId) (json.RawMessage, error) {
	if m.MockCreatePost != nil {
		return m.MockCreatePost(ctx, username, body, topicId, responseTo)
	}
	return emptyPayload, nil
}

func (m *MockForum) GetPost(ctx context.Context, username string, postId domain.PostId) (json.RawMessage, error) {
	if m.MockGetPost != nil {
		return m.MockGetPost(ctx, username, postId)
	}
	return emptyPayload, nil
}

func (m *MockForum) GetPosts(ctx context.Context, username string, topicId domain.TopicId, postIds []domain.PostId) (json.RawMessage, error) {
	if m.MockGetPosts != nil {
		return m.MockGetPosts(ctx, username, topicId, postIds)
	}
	return emptyPayload, nil
}

func (m *MockForum) UpdatePost(ctx context.Context, username string, postId domain.PostId, body string) (json.RawMessage, error) {
	if m.MockUpdatePost != nil {
		return m.MockUpdatePost(ctx, username, postId, body)
	}
	return emptyPayload, nil
}

func (m *MockForum) DeletePost(ctx context.Context, username string, postId domain.PostId) error {
	if m.MockDeletePost != nil {
		return m.MockDeletePost(ctx, username, postId)
	}
	return nil
}

func (m *MockForum) UploadImage(ctx context.Context, username string, file *domain.PendingUpload) (json.RawMessage, error) {
	if m.MockUploadImage != nil {
		return m.MockUploadImage(ctx, username, file)
	}
	return emptyPayload, nil
}

func (m *MockForum) MarkTopicPostsRead(ctx context.Context, username string, topicId domain.TopicId, postIds []domain.PostId) error {
	if m.MockMarkTopicPostsRead != nil {
		return m.MockMarkTopicPostsRead(ctx, username, topicId, postIds)
	}
	return nil
}

func (m *MockForum) Ping(ctx context.Context) error {
	if m.MockPing != nil {
		return m.MockPing(ctx)
	}
	return nil
}

// setupTestRouter wires the handler under test into the same route patterns
// the real router uses.
func setupTestRouter(t *testing.T, f Forum) *chi.Mux {
	t.Helper()
	cfg := &config.Config{
		Public: config.Public{
			MaxUploadSize:         1 << 20,
			AllowedImageMimeTypes: []string{"image/png"},
		},
	}
	h := New(f, cfg)

	r := chi.NewRouter()
	r.Get("/v1/users/{username}", h.GetUser)
	r.Post("/v1/users", h.CreateUser)
	r.Put("/v1/users/{userId}/trust_level", h.ChangeTrustLevel)
	r.Post("/v1/messages", h.CreateMessage)
	r.Get("/v1/topics/{topic}", h.GetTopic)
	r.Put("/v1/topics/{topic}", h.UpdateTopic)
	r.Delete("/v1/topics/{topic}", h.DeleteTopic)
	r.Post("/v1/topics/{topic}/access", h.GrantAccess)
	r.Delete("/v1/topics/{topic}/access/{username}", h.RemoveAccess)
	r.Get("/v1/topics/{topic}/posts", h.GetPosts)
	r.Post("/v1/topics/{topic}/read", h.MarkTopicPostsRead)
	r.Post("/v1/posts", h.CreatePost)
	r.Get("/v1/posts/{post}", h.GetPost)
	r.Put("/v1/posts/{post}", h.UpdatePost)
	r.Delete("/v1/posts/{post}", h.DeletePost)
	r.Post("/v1/uploads", h.UploadImage)
	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	return r
}
