package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"yt-service/domain/model"
)

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/v/|youtu\.be/|/embed/|/shorts/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`^([a-zA-Z0-9_-]{11})$`),
}

// ExtractVideoID pulls the 11-character video ID out of the common YouTube
// URL shapes (watch, youtu.be, embed, shorts) or accepts a bare ID.
func ExtractVideoID(videoURL string) (string, error) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(videoURL); m != nil {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("%w: %q", model.ErrInvalidVideoURL, videoURL)
}

// SanitizeFilename strips path components and characters that break
// Content-Disposition headers, and forces an .mp3 extension.
func SanitizeFilename(name string) string {
	if idx := strings.LastIndexAny(name, "/\\"); idx != -1 {
		name = name[idx+1:]
	}
	replacer := strings.NewReplacer("<", "_", ">", "_", ":", "_", "\"", "_", "|", "_", "?", "_", "*", "_")
	name = replacer.Replace(name)
	if !strings.HasSuffix(strings.ToLower(name), ".mp3") {
		name += ".mp3"
	}
	return name
}
