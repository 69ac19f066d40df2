package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"title too long", ErrTitleTooLong, ErrValidation},
		{"zero balance", ErrZeroBalance, ErrValidation},
		{"question not found", ErrQuestionNotFound, ErrNotFound},
		{"already assigned", ErrQuestionAlreadyAssigned, ErrConflict},
		{"other tutor", ErrNotAssignedTutor, ErrNotAuthorized},
		{"storage", ErrStorageUnavailable, ErrUpstream},
		{"delivery time", ErrInvalidDeliveryTimeFormat, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
		})
	}
}

func TestUpstream(t *testing.T) {
	cause := errors.New("connection refused")
	err := Upstream("insert question", cause)

	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "insert question")
}

func TestUploadError(t *testing.T) {
	cause := errors.New("bucket full")
	err := error(&UploadError{Failed: "b.pdf", Uploaded: []string{"https://x/a.pdf"}, Err: cause})

	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "file upload failed: b.pdf: bucket full (1 uploaded before failure)", err.Error())

	var ue *UploadError
	assert.True(t, errors.As(err, &ue))
	assert.Equal(t, "b.pdf", ue.Failed)
}
