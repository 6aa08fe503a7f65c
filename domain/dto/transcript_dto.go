package dto

import "yt-service/domain/model"

// TranscriptRequest represents a /transcript request
type TranscriptRequest struct {
	VideoURL       string `json:"video_url"`
	TargetLanguage string `json:"target_language,omitempty"` // defaults to "en"
}

// TranscriptResponse represents a fetched transcript, flattened text plus
// the timed segments it was assembled from
type TranscriptResponse struct {
	Transcript        string                    `json:"transcript"`
	Segments          []model.TranscriptSegment `json:"segments"`
	Language          string                    `json:"language"`
	RequestedLanguage string                    `json:"requested_language"`
	VideoID           string                    `json:"video_id"`
}
