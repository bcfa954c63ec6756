package forum

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/forumgate-dev/forumgate/internal/domain"
	"github.com/forumgate-dev/forumgate/internal/errors"
)

// GetUser fetches the forum user record by forum username. Returns
// errors.NotFound when the forum has no such user.
func (c *Client) GetUser(ctx context.Context, username string) (json.RawMessage, error) {
	path := "/users/" + url.PathEscape(username) + ".json"
	payload, err := c.do(ctx, "getUser", http.MethodGet, path, c.systemUsername, nil, "", nil)
	if err != nil {
		var upstream *errors.UpstreamError
		if stderrors.As(err, &upstream) && upstream.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("forum user %q: %w", username, errors.NotFound)
		}
		return nil, err
	}
	return payload, nil
}

// CreateUser registers a user in the forum. The forum username is the
// application's numeric user id; the human-readable handle lives in custom
// user field 1. The account is always created active because password auth
// is bypassed by single sign-on. Returns errors.Conflict when the email or
// username already exists upstream.
func (c *Client) CreateUser(ctx context.Context, name string, userId domain.UserId, handle, email, password string) (json.RawMessage, error) {
	body := struct {
		Name       string            `json:"name"`
		Email      string            `json:"email"`
		Password   string            `json:"password"`
		Username   string            `json:"username"`
		Active     bool              `json:"active"`
		UserFields map[string]string `json:"user_fields"`
	}{
		Name:       name,
		Email:      email,
		Password:   password,
		Username:   strconv.FormatInt(userId, 10),
		Active:     true,
		UserFields: map[string]string{"1": handle},
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user: %w", err)
	}

	payload, err := c.do(ctx, "createUser", http.MethodPost, "/users", c.systemUsername, nil, contentTypeJSON, bytes.NewReader(encoded))
	if err != nil {
		var upstream *errors.UpstreamError
		if stderrors.As(err, &upstream) &&
			(upstream.StatusCode == http.StatusConflict || upstream.StatusCode == http.StatusUnprocessableEntity) {
			return nil, fmt.Errorf("forum user %q: %w", email, errors.Conflict)
		}
		return nil, err
	}
	return payload, nil
}

// ChangeTrustLevel sets the trust level for a forum numeric user id. This is
// inherently privileged; the system identity acts, no caller username is
// involved.
func (c *Client) ChangeTrustLevel(ctx context.Context, userId domain.UserId, level domain.TrustLevel) (json.RawMessage, error) {
	form := url.Values{}
	form.Set("level", strconv.Itoa(level))
	path := fmt.Sprintf("/admin/users/%d/trust_level", userId)
	return c.do(ctx, "changeTrustLevel", http.MethodPut, path, c.systemUsername, nil, contentTypeForm, bytes.NewReader([]byte(form.Encode())))
}
