package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yt-service/domain/model"
	"yt-service/infrastructure/utils"
)

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLxyz&index=2", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ"},
	}
	for _, tc := range cases {
		got, err := utils.ExtractVideoID(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got)
	}
}

func TestExtractVideoIDInvalid(t *testing.T) {
	cases := []string{
		"",
		"not a url",
		"https://example.com/watch?v=short",
		"tooshort",
	}
	for _, input := range cases {
		_, err := utils.ExtractVideoID(input)
		assert.ErrorIs(t, err, model.ErrInvalidVideoURL, "input %q", input)
	}
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "song.mp3", utils.SanitizeFilename("song"))
	assert.Equal(t, "song.mp3", utils.SanitizeFilename("song.mp3"))
	assert.Equal(t, "song.mp3", utils.SanitizeFilename("../../song.mp3"))
	assert.Equal(t, "a_b_.mp3", utils.SanitizeFilename(`a<b>`))
	assert.Equal(t, "my song_.mp3", utils.SanitizeFilename(`my song?`))
}
