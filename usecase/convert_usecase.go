package usecase

import (
	"context"
	"io"
	"time"

	"yt-service/domain/model"
	"yt-service/domain/repository"
	"yt-service/infrastructure/logger"
	"yt-service/infrastructure/utils"
)

// IConvertUsecase converts a video to an MP3 stream
type IConvertUsecase interface {
	ConvertToMP3(ctx context.Context, videoURL string) (io.ReadCloser, *model.AudioFile, error)
}

type ConvertUsecase struct {
	converter repository.IConverter
	timeout   time.Duration
}

// NewConvertUsecase creates the convert use case; timeout bounds the whole
// download+transcode pipeline per request.
func NewConvertUsecase(converter repository.IConverter, timeout time.Duration) IConvertUsecase {
	return &ConvertUsecase{converter: converter, timeout: timeout}
}

// ConvertToMP3 validates the URL and delegates to the converter. The
// returned stream deletes its backing file on close.
func (u *ConvertUsecase) ConvertToMP3(ctx context.Context, videoURL string) (io.ReadCloser, *model.AudioFile, error) {
	videoID, err := utils.ExtractVideoID(videoURL)
	if err != nil {
		return nil, nil, err
	}
	logger.GetLogger().WithField("video_id", videoID).Info("Converting video to MP3")

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	return u.converter.ConvertToMP3(ctx, videoID)
}
