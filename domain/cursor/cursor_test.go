package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yt-service/domain/cursor"
	"yt-service/domain/model"
)

func TestCursorRoundTrip(t *testing.T) {
	cases := []struct {
		key    string
		offset int
	}{
		{"a1b2c3d4e5f60718", 0},
		{"a1b2c3d4e5f60718", 15},
		{"ABCdef0123456789", 9999},
	}
	for _, tc := range cases {
		token := cursor.Encode(tc.key, tc.offset)
		key, offset, err := cursor.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, tc.key, key)
		assert.Equal(t, tc.offset, offset)
	}
}

func TestEncodeFormat(t *testing.T) {
	assert.Equal(t, "deadbeef:15", cursor.Encode("deadbeef", 15))
}

func TestDecodeMalformed(t *testing.T) {
	cases := []string{
		"abc",       // no offset
		"",          // empty
		"abc:",      // empty offset
		"abc:xyz",   // non-numeric offset
		":5",        // empty key
		"abc:-1",    // negative offset
		"a:b:c",     // wrong arity
		"abc:15:30", // wrong arity
		"abc:1.5",   // fractional offset
	}
	for _, token := range cases {
		_, _, err := cursor.Decode(token)
		assert.ErrorIs(t, err, model.ErrInvalidCursor, "token %q", token)
	}
}
