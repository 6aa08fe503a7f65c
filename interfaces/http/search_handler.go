package http

import (
	"errors"
	"net/http"
	"strconv"

	"yt-service/domain/dto"
	"yt-service/domain/model"
	"yt-service/infrastructure/logger"
	"yt-service/usecase"

	"github.com/gin-gonic/gin"
)

// ISearchHandler defines the interface for search HTTP handlers
type ISearchHandler interface {
	Search(ctx *gin.Context)
}

type SearchHandler struct {
	searchUsecase usecase.ISearchUsecase
}

func NewSearchHandler(searchUsecase usecase.ISearchUsecase) ISearchHandler {
	return &SearchHandler{searchUsecase: searchUsecase}
}

// Search handles GET /search?query=&cursor=&limit=
func (h *SearchHandler) Search(ctx *gin.Context) {
	req := &dto.SearchRequest{
		Query:  ctx.Query("query"),
		Cursor: ctx.Query("cursor"),
	}
	if raw := ctx.Query("limit"); raw != "" {
		// A non-numeric limit falls back to the default rather than failing.
		if val, err := strconv.Atoi(raw); err == nil {
			req.Limit = val
		}
	}

	page, err := h.searchUsecase.Search(ctx.Request.Context(), req)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

func (h *SearchHandler) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidRequest):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Exactly one of 'query' or 'cursor' is required",
		})
	case errors.Is(err, model.ErrInvalidCursor):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_cursor",
			"message": "Cursor is malformed",
		})
	case errors.Is(err, model.ErrExpiredCursor):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "expired_cursor",
			"message": "Cursor expired or invalid. Please start a new search.",
		})
	default:
		logger.GetLogger().WithField("error", err).Error("Search failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "search_failed",
			"message": err.Error(),
		})
	}
}
