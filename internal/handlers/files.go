package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"

	"github.com/a2sh3r/mindflex/internal/apperrors"
	"github.com/a2sh3r/mindflex/internal/logger"
	"github.com/a2sh3r/mindflex/internal/models"
	"github.com/a2sh3r/mindflex/internal/storage"
)

const maxMultipartMemory = 32 << 20

// openFiles parses the multipart form and opens every part sent as "files".
// The returned func closes them.
func openFiles(r *http.Request) ([]storage.File, func(), error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, func() {}, apperrors.ErrInvalidRequest
	}
	if r.MultipartForm == nil {
		return nil, func() {}, nil
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) > models.MaxAttachments {
		return nil, func() {}, apperrors.ErrTooManyFiles
	}

	opened := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range opened {
			if err := f.Close(); err != nil {
				logger.Log.Error("failed to close uploaded file", zap.Error(err))
			}
		}
	}

	files := make([]storage.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, apperrors.ErrInvalidRequest
		}
		opened = append(opened, f)
		files = append(files, storage.File{Name: fh.Filename, Content: f})
	}
	return files, closeAll, nil
}
