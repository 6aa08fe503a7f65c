package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"yt-service/domain/model"
	httpHandler "yt-service/interfaces/http"
)

type MockConvertUsecase struct {
	mock.Mock
}

func (m *MockConvertUsecase) ConvertToMP3(ctx context.Context, videoURL string) (io.ReadCloser, *model.AudioFile, error) {
	args := m.Called(ctx, videoURL)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*model.AudioFile), args.Error(2)
}

func convertRouter(uc *MockConvertUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/convert", httpHandler.NewConvertHandler(uc).ConvertToMP3)
	return router
}

func TestConvertHandlerOK(t *testing.T) {
	uc := new(MockConvertUsecase)
	uc.On("ConvertToMP3", mock.Anything, "dQw4w9WgXcQ").Return(
		io.NopCloser(strings.NewReader("mp3-bytes")),
		&model.AudioFile{Filename: "dQw4w9WgXcQ.mp3", MimeType: "audio/mpeg"},
		nil,
	).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/convert?video_url=dQw4w9WgXcQ", nil)
	convertRouter(uc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "dQw4w9WgXcQ.mp3")
	assert.Equal(t, "mp3-bytes", w.Body.String())

	uc.AssertExpectations(t)
}

func TestConvertHandlerMissingURL(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/convert", nil)
	convertRouter(new(MockConvertUsecase)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConvertHandlerFailure(t *testing.T) {
	uc := new(MockConvertUsecase)
	uc.On("ConvertToMP3", mock.Anything, mock.Anything).
		Return(nil, nil, model.ErrConversionFailed).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/convert?video_url=dQw4w9WgXcQ", nil)
	convertRouter(uc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "conversion_failed")
}
