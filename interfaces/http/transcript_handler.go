package http

import (
	"errors"
	"net/http"

	"yt-service/domain/dto"
	"yt-service/domain/model"
	"yt-service/infrastructure/logger"
	"yt-service/usecase"

	"github.com/gin-gonic/gin"
)

// ITranscriptHandler defines the interface for transcript HTTP handlers
type ITranscriptHandler interface {
	GetTranscript(ctx *gin.Context)
}

type TranscriptHandler struct {
	transcriptUsecase usecase.ITranscriptUsecase
}

func NewTranscriptHandler(transcriptUsecase usecase.ITranscriptUsecase) ITranscriptHandler {
	return &TranscriptHandler{transcriptUsecase: transcriptUsecase}
}

// GetTranscript handles GET|POST /transcript?video_url=&target_language=
func (h *TranscriptHandler) GetTranscript(ctx *gin.Context) {
	req := &dto.TranscriptRequest{
		VideoURL:       ctx.Query("video_url"),
		TargetLanguage: ctx.Query("target_language"),
	}
	if req.VideoURL == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "video_url is required",
		})
		return
	}

	response, err := h.transcriptUsecase.GetTranscript(ctx.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidVideoURL):
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_video_url",
				"message": err.Error(),
			})
		case errors.Is(err, model.ErrTranscriptUnavailable):
			ctx.JSON(http.StatusNotFound, gin.H{
				"error":   "transcript_unavailable",
				"message": "Sorry, a transcript isn't available for this video.",
			})
		default:
			logger.GetLogger().WithField("error", err).Error("Transcript fetch failed")
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"error":   "transcript_failed",
				"message": err.Error(),
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, response)
}
