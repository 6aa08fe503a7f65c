package server

import (
	"net/http"
	"time"

	httpHandler "yt-service/interfaces/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	searchHandler httpHandler.ISearchHandler,
	transcriptHandler httpHandler.ITranscriptHandler,
	convertHandler httpHandler.IConvertHandler,
	healthHandler httpHandler.IHealthHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler.Healthz)

	// Search routes (only when the upstream provider is configured)
	if searchHandler != nil {
		router.GET("/search", searchHandler.Search)
	} else {
		router.GET("/search", func(ctx *gin.Context) {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "search_unavailable",
				"message": "YouTube API credentials not configured - set YOUTUBE_API_KEY to enable search",
			})
		})
	}

	// Clients call these with both verbs.
	router.GET("/transcript", transcriptHandler.GetTranscript)
	router.POST("/transcript", transcriptHandler.GetTranscript)
	router.GET("/convert", convertHandler.ConvertToMP3)
	router.POST("/convert", convertHandler.ConvertToMP3)

	return router
}
