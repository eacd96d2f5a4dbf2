// Package upload exposes the image upload endpoint. Files are validated
// against a size cap and an image MIME allowlist, then stored under a
// configured directory with a collision-proof filename.
package upload

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"pandamarket/internal/apperr"
	httpx "pandamarket/internal/handler/http"
	"pandamarket/internal/handler/http/respond"
	"pandamarket/internal/observability/logging"
)

// Allowed image content types and their stored extensions.
var allowedTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// Handler accepts a single multipart image file on POST /upload.
type Handler struct {
	Dir      string
	MaxBytes int64
	Logger   *slog.Logger
}

type fileInfo struct {
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mime_type"`
}

type uploadResponse struct {
	Message   string   `json:"message"`
	ImagePath string   `json:"image_path"`
	FileInfo  fileInfo `json:"file_info"`
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	// The multipart envelope adds framing overhead on top of the file
	// itself, so the reader cap sits slightly above the file cap.
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxBytes+512*1024)

	if err := r.ParseMultipartForm(h.MaxBytes); err != nil {
		httpx.RecordUpload(false)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Problem(w, r, apperr.Wrap(apperr.UploadRejected, "파일 크기가 너무 큽니다. (최대 5MB)", err))
			return
		}
		respond.Problem(w, r, apperr.Wrap(apperr.Invalid, "잘못된 요청 본문입니다.", err))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	files := r.MultipartForm.File["image"]
	switch {
	case len(files) == 0:
		httpx.RecordUpload(false)
		respond.Problem(w, r, apperr.New(apperr.UploadRejected, "업로드할 파일이 없습니다."))
		return
	case len(files) > 1:
		httpx.RecordUpload(false)
		respond.Problem(w, r, apperr.New(apperr.UploadRejected, "업로드 가능한 파일 개수를 초과했습니다. (최대 1개)"))
		return
	}
	header := files[0]

	if header.Size > h.MaxBytes {
		httpx.RecordUpload(false)
		respond.Problem(w, r, apperr.New(apperr.UploadRejected, "파일 크기가 너무 큽니다. (최대 5MB)"))
		return
	}

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedTypes[contentType]
	if !ok {
		httpx.RecordUpload(false)
		respond.Problem(w, r, apperr.New(apperr.UploadRejected,
			"허용되지 않는 파일 형식입니다. (jpeg, png, gif, webp, svg만 가능)"))
		return
	}

	storedName := buildFilename(header.Filename, ext)
	if err := h.save(header, storedName); err != nil {
		httpx.RecordUpload(false)
		logger.Error("failed to store uploaded file",
			"error", err.Error(),
			"filename", header.Filename)
		respond.Problem(w, r, fmt.Errorf("store upload: %w", err))
		return
	}

	httpx.RecordUpload(true)
	logger.Info("file uploaded",
		"stored_name", storedName,
		"size", header.Size,
		"mime_type", contentType)

	respond.JSON(w, http.StatusCreated, uploadResponse{
		Message:   "파일 업로드 완료",
		ImagePath: "/uploads/" + storedName,
		FileInfo: fileInfo{
			OriginalName: header.Filename,
			Size:         header.Size,
			MimeType:     contentType,
		},
	})
}

func (h Handler) save(header *multipart.FileHeader, storedName string) error {
	src, err := header.Open()
	if err != nil {
		return fmt.Errorf("open multipart file: %w", err)
	}
	defer func() { _ = src.Close() }()

	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(h.Dir, storedName))
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// buildFilename derives the stored name from the client filename: the
// base name is sanitized, a random suffix prevents collisions, and the
// extension comes from the detected content type, never from the client.
func buildFilename(original, ext string) string {
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" || strings.Trim(base, "_") == "" {
		base = "image"
	}
	return fmt.Sprintf("%s_%s%s", base, uuid.New().String(), ext)
}

// Register wires the upload route onto the mux.
func Register(mux *http.ServeMux, h Handler) {
	mux.Handle("POST   /upload", h)
}
