package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/a2sh3r/mindflex/internal/apperrors"
	"github.com/a2sh3r/mindflex/internal/logger"
)

type uploadErrorResponse struct {
	Error    string   `json:"error"`
	Failed   string   `json:"failed"`
	Uploaded []string `json:"uploaded"`
}

// writeError maps an error kind to its status code and writes the
// user-visible message.
func writeError(w http.ResponseWriter, op string, err error) {
	var uploadErr *apperrors.UploadError
	switch {
	case errors.As(err, &uploadErr):
		logger.Log.Error(op, zap.Error(err))
		writeJSON(w, http.StatusBadGateway, uploadErrorResponse{
			Error:    uploadErr.Error(),
			Failed:   uploadErr.Failed,
			Uploaded: uploadErr.Uploaded,
		})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidFormat):
		http.Error(w, userMessage(err), http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrNotAuthorized):
		http.Error(w, userMessage(err), http.StatusForbidden)
	case errors.Is(err, apperrors.ErrNotFound):
		http.Error(w, userMessage(err), http.StatusNotFound)
	case errors.Is(err, apperrors.ErrConflict):
		http.Error(w, userMessage(err), http.StatusConflict)
	case errors.Is(err, apperrors.ErrUpstream):
		logger.Log.Error(op, zap.Error(err))
		http.Error(w, "upstream service unavailable", http.StatusBadGateway)
	default:
		logger.Log.Error(op, zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// userMessage drops the kind prefix, leaving e.g. "question is already assigned".
func userMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response json", zap.Error(err))
	}
}

// writeList answers 204 for an empty list.
func writeList[T any](w http.ResponseWriter, items []T) {
	if len(items) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
