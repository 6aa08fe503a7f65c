package media

import (
	"context"
	"fmt"
	"os/exec"

	"yt-service/infrastructure/logger"
)

// ffmpegProcessor converts downloaded audio tracks to MP3.
type ffmpegProcessor struct {
	binary string
}

func newFFmpegProcessor(binary string) *ffmpegProcessor {
	return &ffmpegProcessor{binary: binary}
}

// ConvertToMP3 transcodes audioFile into outputFile at 192k.
func (p *ffmpegProcessor) ConvertToMP3(ctx context.Context, audioFile, outputFile string) error {
	cmd := exec.CommandContext(ctx, p.binary, "-y", "-i", audioFile, "-f", "mp3", "-ab", "192k", "-vn", outputFile)
	if out, err := cmd.CombinedOutput(); err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":  err,
			"output": string(out),
		}).Error("FFmpeg convert error")
		return fmt.Errorf("ffmpeg: %w", err)
	}
	return nil
}
