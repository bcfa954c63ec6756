package forum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/forumgate-dev/forumgate/internal/domain"
	"github.com/forumgate-dev/forumgate/internal/logger"
)

// CreatePrivatePost opens a private message thread addressed to the given
// usernames. The substitution rule applies to owner only; recipients are
// passed through verbatim. Failures are logged here in addition to the shared
// response logging, then returned.
func (c *Client) CreatePrivatePost(ctx context.Context, title, body string, targetUsernames []string, owner string) (*domain.PrivateMessageRef, error) {
	encoded, err := json.Marshal(struct {
		Title           string `json:"title"`
		Raw             string `json:"raw"`
		Archetype       string `json:"archetype"`
		TargetUsernames string `json:"target_usernames"`
	}{
		Title:           title,
		Raw:             body,
		Archetype:       "private_message",
		TargetUsernames: strings.Join(targetUsernames, ","),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode private message: %w", err)
	}

	payload, err := c.do(ctx, "createPrivatePost", http.MethodPost, "/posts", c.actingAs(owner), nil, contentTypeJSON, bytes.NewReader(encoded))
	if err != nil {
		logger.Log.Error("failed to create private message", "owner", owner, "title", title, "error", err)
		return nil, err
	}

	var ref domain.PrivateMessageRef
	if err := json.Unmarshal(payload, &ref); err != nil {
		return nil, fmt.Errorf("failed to parse created post: %w", err)
	}
	return &ref, nil
}
