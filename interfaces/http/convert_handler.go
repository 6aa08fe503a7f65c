package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"yt-service/domain/model"
	"yt-service/infrastructure/logger"
	"yt-service/usecase"

	"github.com/gin-gonic/gin"
)

// IConvertHandler defines the interface for conversion HTTP handlers
type IConvertHandler interface {
	ConvertToMP3(ctx *gin.Context)
}

type ConvertHandler struct {
	convertUsecase usecase.IConvertUsecase
}

func NewConvertHandler(convertUsecase usecase.IConvertUsecase) IConvertHandler {
	return &ConvertHandler{convertUsecase: convertUsecase}
}

// ConvertToMP3 handles GET|POST /convert?video_url= and streams the MP3 back.
func (h *ConvertHandler) ConvertToMP3(ctx *gin.Context) {
	videoURL := ctx.Query("video_url")
	if videoURL == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "video_url is required",
		})
		return
	}

	stream, audio, err := h.convertUsecase.ConvertToMP3(ctx.Request.Context(), videoURL)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidVideoURL):
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_video_url",
				"message": err.Error(),
			})
		default:
			logger.GetLogger().WithField("error", err).Error("Conversion failed")
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"error":   "conversion_failed",
				"message": err.Error(),
			})
		}
		return
	}
	defer stream.Close()

	ctx.Header("Content-Type", audio.MimeType)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", audio.Filename))
	ctx.Status(http.StatusOK)

	if _, err := io.Copy(ctx.Writer, stream); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Error streaming audio response")
	}
}
