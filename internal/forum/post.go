package forum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/forumgate-dev/forumgate/internal/domain"
)

// CreatePost creates a reply in a topic. The body goes form-url-encoded, not
// JSON; reply_to_post_number is present only when responseTo is set.
func (c *Client) CreatePost(ctx context.Context, username, body string, topicId domain.TopicId, responseTo *domain.PostId) (json.RawMessage, error) {
	form := url.Values{}
	form.Set("topic_id", strconv.FormatInt(topicId, 10))
	form.Set("raw", body)
	if responseTo != nil {
		form.Set("reply_to_post_number", strconv.FormatInt(*responseTo, 10))
	}
	return c.do(ctx, "createPost", http.MethodPost, "/posts", c.actingAs(username), nil, contentTypeForm, bytes.NewReader([]byte(form.Encode())))
}

// GetPost fetches a single post.
func (c *Client) GetPost(ctx context.Context, username string, postId domain.PostId) (json.RawMessage, error) {
	path := fmt.Sprintf("/posts/%d.json", postId)
	return c.do(ctx, "getPost", http.MethodGet, path, c.actingAs(username), nil, "", nil)
}

// GetPosts fetches several posts of a topic in one call, one post_ids[] query
// entry per id.
func (c *Client) GetPosts(ctx context.Context, username string, topicId domain.TopicId, postIds []domain.PostId) (json.RawMessage, error) {
	query := url.Values{}
	for _, id := range postIds {
		query.Add("post_ids[]", strconv.FormatInt(id, 10))
	}
	path := fmt.Sprintf("/t/%d/posts.json", topicId)
	return c.do(ctx, "getPosts", http.MethodGet, path, c.actingAs(username), query, "", nil)
}

// UpdatePost replaces a post's raw content.
func (c *Client) UpdatePost(ctx context.Context, username string, postId domain.PostId, body string) (json.RawMessage, error) {
	type rawContent struct {
		Raw string `json:"raw"`
	}
	encoded, err := json.Marshal(struct {
		Post rawContent `json:"post"`
	}{rawContent{body}})
	if err != nil {
		return nil, fmt.Errorf("failed to encode post update: %w", err)
	}
	path := fmt.Sprintf("/posts/%d", postId)
	return c.do(ctx, "updatePost", http.MethodPut, path, c.actingAs(username), nil, contentTypeJSON, bytes.NewReader(encoded))
}

// DeletePost removes a post. No request body is sent.
func (c *Client) DeletePost(ctx context.Context, username string, postId domain.PostId) error {
	path := fmt.Sprintf("/posts/%d", postId)
	_, err := c.do(ctx, "deletePost", http.MethodDelete, path, c.actingAs(username), nil, "", nil)
	return err
}
