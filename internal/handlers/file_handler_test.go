package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hansols27/QWER-Back-end/internal/handlers"
	"github.com/hansols27/QWER-Back-end/internal/storage"
	"github.com/hansols27/QWER-Back-end/internal/validator"
)

func newFileRouter(t *testing.T) (*gin.Engine, *storage.LocalStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	local, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	router := gin.New()
	fh := handlers.NewFileHandler(handlers.NewBaseHandler(validator.New()), local)
	fh.RegisterRoutes(router)
	return router, local
}

func TestFileServe_StoredObject(t *testing.T) {
	router, local := newFileRouter(t)

	key := "gallery/photo.jpg"
	require.NoError(t, local.Save(context.Background(), key, bytes.NewReader([]byte("jpeg")), "image/jpeg"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/files/gallery/photo.jpg", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jpeg", rec.Body.String())
}

func TestFileServe_MissingIs404(t *testing.T) {
	router, _ := newFileRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/files/gallery/nope.jpg", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFileServe_TraversalRejected(t *testing.T) {
	router, _ := newFileRouter(t)

	for _, path := range []string{
		"/files/../config/config.yaml",
		"/files/gallery/../../etc/passwd",
	} {
		req := httptest.NewRequest("GET", path, nil)
		req.URL.Path = path // keep the dots; NewRequest would normally be given a clean path
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.NotEqual(t, http.StatusOK, rec.Code, "path %s must not be served", path)
	}
}
