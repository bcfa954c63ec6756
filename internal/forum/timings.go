package forum

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/forumgate-dev/forumgate/internal/domain"
)

// postDwellMillis is the fixed per-post reading time recorded for every post
// marked read.
const postDwellMillis = "1000"

// MarkTopicPostsRead records read timings for the given posts plus a
// topic-level timing. topic_time mirrors the topic id, a quirk of the
// upstream contract that consumers depend on. The username is deliberately
// NOT run through the substitution rule: read receipts must land on the real
// user's record even when that user is an application administrator.
func (c *Client) MarkTopicPostsRead(ctx context.Context, username string, topicId domain.TopicId, postIds []domain.PostId) error {
	form := url.Values{}
	form.Set("topic_id", strconv.FormatInt(topicId, 10))
	form.Set("topic_time", strconv.FormatInt(topicId, 10))
	for _, id := range postIds {
		form.Set(fmt.Sprintf("timings[%d]", id), postDwellMillis)
	}
	_, err := c.do(ctx, "markTopicPostsRead", http.MethodPost, "/topics/timings", username, nil, contentTypeForm, bytes.NewReader([]byte(form.Encode())))
	return err
}
