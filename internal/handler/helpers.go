package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/forumgate-dev/forumgate/internal/domain"
)

// parseIntParam parses an integer parameter from a string and returns a meaningful error
func parseIntParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}
	return val, nil
}

// parsePostIds parses a comma-separated list of post ids ("1,2,3").
func parsePostIds(raw string) ([]domain.PostId, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("post_ids is required")
	}
	parts := strings.Split(raw, ",")
	ids := make([]domain.PostId, 0, len(parts))
	for _, p := range parts {
		id, err := parseIntParam(strings.TrimSpace(p), "post id")
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
