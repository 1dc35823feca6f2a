package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/devfolio-io/portfolio-backend/internal/api/http"
	"github.com/devfolio-io/portfolio-backend/internal/uploads"
)

func fileRouter(t *testing.T) (*gin.Engine, *uploads.DiskStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := uploads.NewDiskStore(t.TempDir())
	router := gin.New()
	httpapi.NewFilesHandler(store).RegisterRoutes(router)
	return router, store
}

func TestServeUploadedFile(t *testing.T) {
	router, store := fileRouter(t)

	_, err := store.Save(context.Background(), "cover.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	req, err := http.NewRequest("GET", "/uploads/cover.png", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "png-bytes", rr.Body.String())
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
}

func TestServeUploadedFile_NotFound(t *testing.T) {
	router, _ := fileRouter(t)

	req, err := http.NewRequest("GET", "/uploads/missing.png", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
