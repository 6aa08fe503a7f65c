package media

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"yt-service/domain/model"
	"yt-service/domain/repository"
	"yt-service/infrastructure/logger"
	"yt-service/infrastructure/utils"
)

// Converter downloads a video's best audio track with yt-dlp and transcodes
// it to MP3 with ffmpeg. Each request works on a unique file under dir so
// concurrent conversions of the same video never collide.
type Converter struct {
	ytdlp  string
	ffmpeg *ffmpegProcessor
	dir    string
}

// NewConverter creates a converter writing temp files under dir.
func NewConverter(dir, ytdlpPath, ffmpegPath string) (repository.IConverter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create downloads dir: %w", err)
	}
	return &Converter{
		ytdlp:  ytdlpPath,
		ffmpeg: newFFmpegProcessor(ffmpegPath),
		dir:    dir,
	}, nil
}

// ConvertToMP3 produces an MP3 stream for videoID. The returned reader
// removes the backing file when closed; the caller owns closing it.
func (c *Converter) ConvertToMP3(ctx context.Context, videoID string) (io.ReadCloser, *model.AudioFile, error) {
	// Rebuild the canonical watch URL from the ID so playlist/mix params
	// never drag in more than this one video.
	videoURL := "https://www.youtube.com/watch?v=" + videoID

	base := filepath.Join(c.dir, fmt.Sprintf("%s_%s", videoID, randomSuffix()))
	audioFile, err := c.downloadAudio(ctx, videoURL, base)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", model.ErrConversionFailed, err)
	}
	defer os.Remove(audioFile)

	mp3File := base + ".mp3"
	if err := c.ffmpeg.ConvertToMP3(ctx, audioFile, mp3File); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", model.ErrConversionFailed, err)
	}

	reader, err := newDeleteOnCloseReader(mp3File)
	if err != nil {
		_ = os.Remove(mp3File)
		return nil, nil, fmt.Errorf("%w: %v", model.ErrConversionFailed, err)
	}

	logger.GetLogger().WithField("video_id", videoID).Info("Conversion complete")
	return reader, &model.AudioFile{
		Path:     mp3File,
		Filename: utils.SanitizeFilename(videoID),
		MimeType: "audio/mpeg",
	}, nil
}

// downloadAudio fetches the best audio track to "<base>.<ext>" and returns
// the path yt-dlp actually wrote, since the extension depends on the source.
func (c *Converter) downloadAudio(ctx context.Context, videoURL, base string) (string, error) {
	cmd := exec.CommandContext(ctx, c.ytdlp,
		videoURL,
		"-f", "bestaudio/best",
		"--no-playlist",
		"--quiet",
		"--no-warnings",
		"--socket-timeout", "30",
		"-o", base+".%(ext)s",
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("yt-dlp: %v, output: %s", err, string(out))
	}

	matches, err := filepath.Glob(base + ".*")
	if err != nil || len(matches) == 0 {
		return "", fmt.Errorf("yt-dlp produced no output file for %s", base)
	}
	return matches[0], nil
}

func randomSuffix() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// deleteOnCloseReader removes its backing file once the consumer is done
// streaming it.
type deleteOnCloseReader struct {
	*os.File
}

func newDeleteOnCloseReader(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &deleteOnCloseReader{File: f}, nil
}

func (d *deleteOnCloseReader) Close() error {
	path := d.File.Name()
	err := d.File.Close()
	if rmErr := os.Remove(path); rmErr == nil {
		logger.GetLogger().WithField("path", path).Debug("Cleaned up file")
	}
	return err
}
