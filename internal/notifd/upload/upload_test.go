package upload

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/config"
)

func newTestHandler(t *testing.T, maxBytes int64) (*Handler, string) {
	t.Helper()
	dir := t.TempDir()
	h := NewHandler(config.ContentConfig{
		StoragePath:    dir,
		BaseURL:        "/files",
		MaxUploadBytes: maxBytes,
	}, zerolog.Nop())
	require.NoError(t, h.EnsureStorageDir())
	return h, dir
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUpload(t *testing.T) {
	h, dir := newTestHandler(t, 1<<20)

	body, contentType := multipartBody(t, "file", "poster.PNG", "fake image bytes")
	req := httptest.NewRequest(http.MethodPost, "/upload-file", body)
	req.Header.Set("Content-Type", contentType)

	rec := serve(h, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.UploadResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, strings.HasPrefix(resp.FileURL, "/files/"))
	assert.True(t, strings.HasSuffix(resp.FileURL, ".png"))

	stored, err := os.ReadFile(filepath.Join(dir, filepath.Base(resp.FileURL)))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(stored))
}

func TestUpload_MissingFileField(t *testing.T) {
	h, _ := newTestHandler(t, 1<<20)

	body, contentType := multipartBody(t, "wrong", "poster.png", "bytes")
	req := httptest.NewRequest(http.MethodPost, "/upload-file", body)
	req.Header.Set("Content-Type", contentType)

	rec := serve(h, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_TooLarge(t *testing.T) {
	h, _ := newTestHandler(t, 64)

	body, contentType := multipartBody(t, "file", "big.png", strings.Repeat("x", 4096))
	req := httptest.NewRequest(http.MethodPost, "/upload-file", body)
	req.Header.Set("Content-Type", contentType)

	rec := serve(h, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_HostileExtensionDropped(t *testing.T) {
	h, dir := newTestHandler(t, 1<<20)

	body, contentType := multipartBody(t, "file", "../../etc/passwd.sh;rm", "bytes")
	req := httptest.NewRequest(http.MethodPost, "/upload-file", body)
	req.Header.Set("Content-Type", contentType)

	rec := serve(h, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.UploadResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, strings.Contains(resp.FileURL, ".."))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), ";")
}

func TestSanitizeExt(t *testing.T) {
	assert.Equal(t, ".png", sanitizeExt(".PNG"))
	assert.Equal(t, ".mp4", sanitizeExt(".mp4"))
	assert.Equal(t, "", sanitizeExt(".p ng"))
	assert.Equal(t, "", sanitizeExt(".sh;rm"))
	assert.Equal(t, "", sanitizeExt(""))
}
