package usecase

import (
	"context"
	"fmt"
	"strings"

	"yt-service/domain/dto"
	"yt-service/domain/repository"
	"yt-service/infrastructure/logger"
	"yt-service/infrastructure/utils"
)

// ITranscriptUsecase fetches video transcripts
type ITranscriptUsecase interface {
	GetTranscript(ctx context.Context, req *dto.TranscriptRequest) (*dto.TranscriptResponse, error)
}

type TranscriptUsecase struct {
	fetcher repository.ITranscript
}

func NewTranscriptUsecase(fetcher repository.ITranscript) ITranscriptUsecase {
	return &TranscriptUsecase{fetcher: fetcher}
}

// GetTranscript resolves the video ID, fetches the transcript and flattens
// the segments into a single text.
func (u *TranscriptUsecase) GetTranscript(ctx context.Context, req *dto.TranscriptRequest) (*dto.TranscriptResponse, error) {
	targetLanguage := req.TargetLanguage
	if targetLanguage == "" {
		targetLanguage = "en"
	}

	videoID, err := utils.ExtractVideoID(req.VideoURL)
	if err != nil {
		return nil, err
	}
	logger.GetLogger().WithFields(map[string]interface{}{
		"video_id":        videoID,
		"target_language": targetLanguage,
	}).Info("Fetching transcript")

	transcript, err := u.fetcher.Fetch(ctx, videoID, targetLanguage)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transcript: %w", err)
	}

	texts := make([]string, len(transcript.Segments))
	for i, segment := range transcript.Segments {
		texts[i] = segment.Text
	}

	return &dto.TranscriptResponse{
		Transcript:        strings.Join(texts, " "),
		Segments:          transcript.Segments,
		Language:          transcript.Language,
		RequestedLanguage: targetLanguage,
		VideoID:           videoID,
	}, nil
}
