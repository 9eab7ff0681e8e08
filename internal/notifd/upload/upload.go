// Package upload stores admin-submitted media files and serves them back
// to displays.
package upload

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/HyperDarkmoon/notifmanager-sub000/api/types"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/config"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/errors"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/httpx"
)

type Handler struct {
	cfg    config.ContentConfig
	logger zerolog.Logger
}

func NewHandler(cfg config.ContentConfig, logger zerolog.Logger) *Handler {
	return &Handler{
		cfg:    cfg,
		logger: logger.With().Str("component", "upload").Logger(),
	}
}

// EnsureStorageDir creates the storage directory if it does not exist.
func (h *Handler) EnsureStorageDir() error {
	return os.MkdirAll(h.cfg.StoragePath, 0o755)
}

// RegisterRoutes mounts the upload endpoint on the provided router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/upload-file", h.handleUpload)
}

// FileServer returns a handler serving previously uploaded files.
func (h *Handler) FileServer() http.Handler {
	return http.StripPrefix(h.cfg.BaseURL, http.FileServer(http.Dir(h.cfg.StoragePath)))
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	const op = "upload.handleUpload"

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		httpx.RespondError(w, h.logger,
			errors.NewError("INVALID_INPUT", "file too large or malformed upload", op, errors.ErrInvalidInput))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.RespondError(w, h.logger,
			errors.NewError("INVALID_INPUT", "missing file field", op, errors.ErrInvalidInput))
		return
	}
	defer file.Close()

	// Stored under a fresh name so uploads can never collide or escape
	// the storage directory.
	ext := sanitizeExt(filepath.Ext(header.Filename))
	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(h.cfg.StoragePath, name))
	if err != nil {
		httpx.RespondError(w, h.logger, fmt.Errorf("create upload file: %w", err))
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		httpx.RespondError(w, h.logger, fmt.Errorf("write upload file: %w", err))
		return
	}

	h.logger.Info().
		Str("file", name).
		Str("original", header.Filename).
		Int64("size", header.Size).
		Msg("file uploaded")

	httpx.RespondJSON(w, h.logger, http.StatusCreated, &types.UploadResponse{
		FileURL: path.Join(h.cfg.BaseURL, name),
	})
}

func sanitizeExt(ext string) string {
	ext = strings.ToLower(ext)
	for _, r := range ext[min(1, len(ext)):] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
