package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"yt-service/domain/dto"
	"yt-service/domain/model"
	httpHandler "yt-service/interfaces/http"
)

type MockTranscriptUsecase struct {
	mock.Mock
}

func (m *MockTranscriptUsecase) GetTranscript(ctx context.Context, req *dto.TranscriptRequest) (*dto.TranscriptResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranscriptResponse), args.Error(1)
}

func transcriptRouter(uc *MockTranscriptUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := httpHandler.NewTranscriptHandler(uc)
	router.GET("/transcript", handler.GetTranscript)
	router.POST("/transcript", handler.GetTranscript)
	return router
}

func TestTranscriptHandlerOK(t *testing.T) {
	uc := new(MockTranscriptUsecase)
	uc.On("GetTranscript", mock.Anything, &dto.TranscriptRequest{
		VideoURL:       "dQw4w9WgXcQ",
		TargetLanguage: "es",
	}).Return(&dto.TranscriptResponse{
		Transcript:        "hola mundo",
		Language:          "es",
		RequestedLanguage: "es",
		VideoID:           "dQw4w9WgXcQ",
	}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/transcript?video_url=dQw4w9WgXcQ&target_language=es", nil)
	transcriptRouter(uc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body dto.TranscriptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "hola mundo", body.Transcript)
	assert.Equal(t, "dQw4w9WgXcQ", body.VideoID)

	uc.AssertExpectations(t)
}

func TestTranscriptHandlerPost(t *testing.T) {
	uc := new(MockTranscriptUsecase)
	uc.On("GetTranscript", mock.Anything, mock.Anything).
		Return(&dto.TranscriptResponse{VideoID: "dQw4w9WgXcQ"}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transcript?video_url=dQw4w9WgXcQ", nil)
	transcriptRouter(uc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTranscriptHandlerMissingURL(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/transcript", nil)
	transcriptRouter(new(MockTranscriptUsecase)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "video_url is required")
}

func TestTranscriptHandlerInvalidURL(t *testing.T) {
	uc := new(MockTranscriptUsecase)
	uc.On("GetTranscript", mock.Anything, mock.Anything).
		Return(nil, model.ErrInvalidVideoURL).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/transcript?video_url=nope", nil)
	transcriptRouter(uc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTranscriptHandlerUnavailable(t *testing.T) {
	uc := new(MockTranscriptUsecase)
	uc.On("GetTranscript", mock.Anything, mock.Anything).
		Return(nil, model.ErrTranscriptUnavailable).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/transcript?video_url=dQw4w9WgXcQ", nil)
	transcriptRouter(uc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "transcript_unavailable")
}
