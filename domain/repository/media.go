package repository

import (
	"context"
	"io"

	"yt-service/domain/model"
)

// ITranscript fetches a video transcript, preferring the target language and
// falling back to translation or the original language.
type ITranscript interface {
	Fetch(ctx context.Context, videoID, targetLanguage string) (*model.Transcript, error)
}

// IConverter downloads a video's audio track and converts it to MP3.
// The returned stream removes the backing file when closed.
type IConverter interface {
	ConvertToMP3(ctx context.Context, videoID string) (io.ReadCloser, *model.AudioFile, error)
}
