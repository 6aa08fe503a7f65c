package model

// Video represents a single YouTube search result
type Video struct {
	VideoID         string `json:"video_id"`
	Title           string `json:"title"`
	Channel         string `json:"channel"`
	Duration        string `json:"duration"`
	DurationSeconds int64  `json:"duration_seconds"`
	Views           int64  `json:"views"`
	Thumbnail       string `json:"thumbnail"`
	URL             string `json:"url"`
}

// TranscriptSegment represents a single timed caption line
type TranscriptSegment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Transcript represents a fetched video transcript
type Transcript struct {
	VideoID  string              `json:"video_id"`
	Language string              `json:"language"` // language actually delivered, may differ from the requested one
	Segments []TranscriptSegment `json:"segments"`
}

// AudioFile represents a converted audio artifact on disk
type AudioFile struct {
	Path     string `json:"path"`
	Filename string `json:"filename"` // client-facing name, e.g. "<video_id>.mp3"
	MimeType string `json:"mime_type"`
}
