package forum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/forumgate-dev/forumgate/internal/domain"
)

// GetTopic fetches a topic with raw (unrendered) post content included.
func (c *Client) GetTopic(ctx context.Context, username string, topicId domain.TopicId) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("include_raw", "1")
	path := fmt.Sprintf("/t/%d.json", topicId)
	return c.do(ctx, "getTopic", http.MethodGet, path, c.actingAs(username), query, "", nil)
}

// UpdateTopic renames a topic.
func (c *Client) UpdateTopic(ctx context.Context, username string, topicId domain.TopicId, title string) (json.RawMessage, error) {
	encoded, err := json.Marshal(struct {
		Title string `json:"title"`
	}{title})
	if err != nil {
		return nil, fmt.Errorf("failed to encode topic update: %w", err)
	}
	path := fmt.Sprintf("/t/%d", topicId)
	return c.do(ctx, "updateTopic", http.MethodPut, path, c.actingAs(username), nil, contentTypeJSON, bytes.NewReader(encoded))
}

// DeleteTopic removes a topic. No request body is sent.
func (c *Client) DeleteTopic(ctx context.Context, username string, topicId domain.TopicId) error {
	path := fmt.Sprintf("/t/%d", topicId)
	_, err := c.do(ctx, "deleteTopic", http.MethodDelete, path, c.actingAs(username), nil, "", nil)
	return err
}

// GrantAccess invites username into the topic's private thread, acting as
// invitee. The invitee is passed through verbatim: it is a trusted-caller
// parameter and deliberately NOT run through the substitution rule. An empty
// invitee defaults to the system identity.
func (c *Client) GrantAccess(ctx context.Context, username string, topicId domain.TopicId, invitee string) (json.RawMessage, error) {
	if invitee == "" {
		invitee = c.systemUsername
	}
	encoded, err := json.Marshal(struct {
		User string `json:"user"`
	}{username})
	if err != nil {
		return nil, fmt.Errorf("failed to encode invite: %w", err)
	}
	path := fmt.Sprintf("/t/%d/invite", topicId)
	return c.do(ctx, "grantAccess", http.MethodPost, path, invitee, nil, contentTypeJSON, bytes.NewReader(encoded))
}

// RemoveAccess removes username from the topic's allowed list. Revoking
// access is inherently privileged, so the system identity always acts.
func (c *Client) RemoveAccess(ctx context.Context, username string, topicId domain.TopicId) (json.RawMessage, error) {
	encoded, err := json.Marshal(struct {
		Username string `json:"username"`
	}{username})
	if err != nil {
		return nil, fmt.Errorf("failed to encode access removal: %w", err)
	}
	path := fmt.Sprintf("/t/%d/remove-allowed-user", topicId)
	return c.do(ctx, "removeAccess", http.MethodPut, path, c.systemUsername, nil, contentTypeJSON, bytes.NewReader(encoded))
}
