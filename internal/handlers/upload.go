package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/esophai/internal/logger"
	"github.com/sbilibin2017/esophai/internal/models"
	"github.com/sbilibin2017/esophai/internal/services"
	"github.com/sbilibin2017/esophai/internal/session"
	"github.com/sbilibin2017/esophai/internal/storage"
	"github.com/sbilibin2017/esophai/internal/views"
)

//go:generate mockgen -source=upload.go -destination=upload_mock.go -package=handlers

// multipartMemory is how much of a multipart body is kept in memory before spilling to disk.
const multipartMemory = 8 << 20

// Analyzer classifies one uploaded image.
type Analyzer interface {
	Analyze(ctx context.Context, userID int64, filename string, src io.Reader) (*models.AnalysisResult, error)
}

// FileOpener opens stored uploads.
type FileOpener interface {
	Open(name string) (*os.File, error)
}

// NewUploadHandler returns an HTTP handler that classifies the uploaded file.
// Validation problems are reported as a flash message and a redirect back to the form.
// @Summary Classify an image
// @Description Stores the uploaded image, runs the classifier and renders the label and confidence
// @Tags analysis
// @Accept multipart/form-data
// @Produce html
// @Param file formData file true "Image (png, jpg, jpeg or gif)"
// @Success 200 {string} string "Result page"
// @Success 302 "Redirect back to the form with a flash message"
// @Failure 500 {string} string "Internal server error"
// @Router /upload_file [post]
func NewUploadHandler(svc Analyzer, sess Sessioner, renderer PageRenderer, multiUser bool, maxBytes int64) http.HandlerFunc {
	formURL := "/"
	if multiUser {
		formURL = "/analyze"
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if maxBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				redirectWithFlash(w, r, sess, formURL, models.FlashError, "File is too large")
				return
			}
			redirectWithFlash(w, r, sess, formURL, models.FlashError, "No file part")
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if errors.Is(err, http.ErrMissingFile) {
			// a file input submitted without a selection arrives as a plain value
			if _, ok := r.MultipartForm.Value["file"]; ok {
				redirectWithFlash(w, r, sess, formURL, models.FlashError, "No selected file")
				return
			}
			redirectWithFlash(w, r, sess, formURL, models.FlashError, "No file part")
			return
		}
		if err != nil {
			logger.Log.Errorw("failed to read upload", "err", err)
			internalError(w)
			return
		}
		defer file.Close()

		if header.Filename == "" {
			redirectWithFlash(w, r, sess, formURL, models.FlashError, "No selected file")
			return
		}

		var userID int64
		if id, ok := session.IdentityFromContext(r.Context()); ok {
			userID = id.UserID
		}

		result, err := svc.Analyze(r.Context(), userID, header.Filename, file)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidFileType):
				redirectWithFlash(w, r, sess, formURL, models.FlashError, "Invalid file type")
			case errors.Is(err, services.ErrInvalidImage):
				redirectWithFlash(w, r, sess, formURL, models.FlashError, "Invalid image file")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				internalError(w)
			}
			return
		}

		renderer.Render(w, http.StatusOK, views.PageResults, newPage(w, r, sess, multiUser, "Result", result))
	}
}

// NewUploadedFileHandler serves a stored upload by name.
// @Summary Uploaded image
// @Tags analysis
// @Produce image/png
// @Produce image/jpeg
// @Produce image/gif
// @Param filename path string true "Stored file name"
// @Success 200 {file} file "Image"
// @Failure 404 {string} string "Not found"
// @Router /upload/{filename} [get]
func NewUploadedFileHandler(store FileOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "filename")

		f, err := store.Open(name)
		if errors.Is(err, storage.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			logger.Log.Errorw("failed to open upload", "file", name, "err", err)
			internalError(w)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			logger.Log.Errorw("failed to stat upload", "file", name, "err", err)
			internalError(w)
			return
		}

		http.ServeContent(w, r, name, info.ModTime(), f)
	}
}
