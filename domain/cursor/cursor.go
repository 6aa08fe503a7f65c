// Package cursor implements the pagination cursor token: a cache key and a
// result offset serialized as "<key>:<offset>". The token is opaque to
// clients but deliberately human-debuggable; it carries no secret and no
// expiry, staleness is detected by a cache miss on the decoded key.
package cursor

import (
	"fmt"
	"strconv"
	"strings"

	"yt-service/domain/model"
)

// Encode serializes a (key, offset) pair into a cursor token.
func Encode(key string, offset int) string {
	return fmt.Sprintf("%s:%d", key, offset)
}

// Decode parses a cursor token back into its (key, offset) pair. It fails
// with model.ErrInvalidCursor on wrong arity, an empty key, a non-numeric
// offset or a negative offset.
func Decode(token string) (string, int, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 2 || parts[0] == "" {
		return "", 0, fmt.Errorf("%w: %q", model.ErrInvalidCursor, token)
	}
	offset, err := strconv.Atoi(parts[1])
	if err != nil || offset < 0 {
		return "", 0, fmt.Errorf("%w: bad offset in %q", model.ErrInvalidCursor, token)
	}
	return parts[0], offset, nil
}
