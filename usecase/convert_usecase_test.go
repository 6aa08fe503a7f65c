package usecase_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"yt-service/domain/model"
	"yt-service/usecase"
)

type MockConverter struct {
	mock.Mock
}

func (m *MockConverter) ConvertToMP3(ctx context.Context, videoID string) (io.ReadCloser, *model.AudioFile, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*model.AudioFile), args.Error(2)
}

func TestConvertToMP3(t *testing.T) {
	converter := new(MockConverter)
	converter.On("ConvertToMP3", mock.Anything, "dQw4w9WgXcQ").Return(
		io.NopCloser(strings.NewReader("mp3-bytes")),
		&model.AudioFile{Filename: "dQw4w9WgXcQ.mp3", MimeType: "audio/mpeg"},
		nil,
	).Once()

	uc := usecase.NewConvertUsecase(converter, time.Minute)
	stream, audio, err := uc.ConvertToMP3(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLxyz")
	require.NoError(t, err)
	defer stream.Close()

	assert.Equal(t, "dQw4w9WgXcQ.mp3", audio.Filename)
	assert.Equal(t, "audio/mpeg", audio.MimeType)

	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "mp3-bytes", string(data))

	converter.AssertExpectations(t)
}

func TestConvertToMP3InvalidURL(t *testing.T) {
	uc := usecase.NewConvertUsecase(new(MockConverter), time.Minute)

	_, _, err := uc.ConvertToMP3(context.Background(), "https://example.com/watch?v=short")
	assert.ErrorIs(t, err, model.ErrInvalidVideoURL)
}

func TestConvertToMP3Failure(t *testing.T) {
	converter := new(MockConverter)
	converter.On("ConvertToMP3", mock.Anything, "dQw4w9WgXcQ").
		Return(nil, nil, model.ErrConversionFailed).Once()

	uc := usecase.NewConvertUsecase(converter, time.Minute)
	_, _, err := uc.ConvertToMP3(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, model.ErrConversionFailed)
}
